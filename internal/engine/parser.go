package engine

import (
	"strconv"
	"time"
)

// Parse compiles an expression into a TimeDomain. It is a pure function:
// the same expression always yields an equivalent domain. Failures are
// reported as *ParseError.
func Parse(expr string) (*TimeDomain, error) {
	toks, lerr := lex(expr)
	if lerr != nil {
		return nil, lerr
	}

	p := &parser{expr: expr, toks: toks}
	if p.peek().kind == tokEOF {
		return nil, errAt(expr, 0, "empty expression")
	}

	var rules []Rule
	for {
		rule, err := p.parseRule()
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)

		switch t := p.peek(); t.kind {
		case tokSemi:
			p.next()
		case tokEOF:
			return &TimeDomain{rules: rules}, nil
		default:
			return nil, errAt(expr, t.offset, `expected ";" or end of expression, found %s`, t.kind)
		}
	}
}

type parser struct {
	expr string
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) peekAt(n int) token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) fail(t token, format string, args ...any) error {
	return errAt(p.expr, t.offset, format, args...)
}

// parseRule parses one ";"-separated rule. A rule needs at least a
// selector or a modifier; defaults are the whole week, the whole day and
// kind open.
func (p *parser) parseRule() (Rule, error) {
	rule := Rule{Days: allWeek, Kind: KindOpen}
	start := p.peek()
	hasSelector := false
	hasModifier := false

	if start.kind == tokNumber && start.text == "24" && p.peekAt(1).kind == tokSlash {
		p.next()
		p.next()
		if t := p.peek(); t.kind != tokNumber || t.text != "7" {
			return Rule{}, p.fail(t, `expected "7" after "24/"`)
		}
		p.next()
		hasSelector = true
	} else {
		days, ok, err := p.parseWeekdays()
		if err != nil {
			return Rule{}, err
		}
		if ok {
			rule.Days = days
			hasSelector = true
		}

		spans, err := p.parseTimeSpans()
		if err != nil {
			return Rule{}, err
		}
		if spans != nil {
			rule.Spans = spans
			hasSelector = true
		}
	}

	if t := p.peek(); t.kind == tokIdent {
		kind, ok := modifierKind(t.text)
		if !ok {
			return Rule{}, p.fail(t, "unknown keyword %q (expected a weekday or a modifier)", t.text)
		}
		rule.Kind = kind
		hasModifier = true
		p.next()
	}

	if t := p.peek(); t.kind == tokString {
		rule.Comments = []string{t.text}
		p.next()
	}

	if !hasSelector && !hasModifier {
		return Rule{}, p.fail(start, "empty rule")
	}
	if rule.Spans == nil {
		rule.Spans = []TimeSpan{{0, minutesPerDay}}
	}
	return rule, nil
}

// parseWeekdays parses a comma-separated list of weekdays and weekday
// ranges. ok is false when the next token does not start one.
func (p *parser) parseWeekdays() (days WeekdaySet, ok bool, err error) {
	for {
		if p.peek().kind != tokIdent {
			return days, ok, nil
		}
		from, isDay := weekdayName(p.peek().text)
		if !isDay {
			return days, ok, nil
		}
		p.next()
		ok = true

		if p.peek().kind == tokDash {
			p.next()
			t := p.peek()
			to, isDay := weekdayName(t.text)
			if t.kind != tokIdent || !isDay {
				return 0, false, p.fail(t, `expected a weekday after "-"`)
			}
			p.next()
			days = days.addRange(from, to)
		} else {
			days = days.add(from)
		}

		if p.peek().kind == tokComma && p.peekAt(1).kind == tokIdent {
			if _, isDay := weekdayName(p.peekAt(1).text); isDay {
				p.next()
				continue
			}
		}
		return days, ok, nil
	}
}

// parseTimeSpans parses a comma-separated list of time spans. A nil slice
// means the next token does not start one.
func (p *parser) parseTimeSpans() ([]TimeSpan, error) {
	if p.peek().kind != tokNumber {
		return nil, nil
	}

	var spans []TimeSpan
	for {
		start, err := p.parseTimeOfDay(false)
		if err != nil {
			return nil, err
		}
		if t := p.peek(); t.kind != tokDash {
			return nil, p.fail(t, `expected "-" after time of day`)
		}
		p.next()
		endTok := p.peek()
		end, err := p.parseTimeOfDay(true)
		if err != nil {
			return nil, err
		}

		if end == start {
			return nil, p.fail(endTok, "empty time span")
		}
		if end < start {
			// Wraps past midnight; the span belongs to the day it starts on.
			end += minutesPerDay
		}
		spans = append(spans, TimeSpan{Start: start, End: end})

		if p.peek().kind == tokComma && p.peekAt(1).kind == tokNumber {
			p.next()
			continue
		}
		return spans, nil
	}
}

// parseTimeOfDay parses "HH:MM" into minutes since midnight. "24:00" is
// accepted only when isEnd is set.
func (p *parser) parseTimeOfDay(isEnd bool) (int, error) {
	hourTok := p.peek()
	if hourTok.kind != tokNumber {
		return 0, p.fail(hourTok, "expected time of day")
	}
	p.next()
	if t := p.peek(); t.kind != tokColon {
		return 0, p.fail(t, `expected ":" in time of day`)
	}
	p.next()
	minuteTok := p.peek()
	if minuteTok.kind != tokNumber {
		return 0, p.fail(minuteTok, "expected minutes after %q", hourTok.text+":")
	}
	p.next()

	hour, _ := strconv.Atoi(hourTok.text)
	minute, _ := strconv.Atoi(minuteTok.text)
	if hour > 24 || (hour == 24 && minute != 0) {
		return 0, p.fail(hourTok, "hour out of range")
	}
	if hour == 24 && !isEnd {
		return 0, p.fail(hourTok, `"24:00" is only valid as an end bound`)
	}
	if minute > 59 {
		return 0, p.fail(minuteTok, "minute out of range")
	}
	return hour*60 + minute, nil
}

var weekdays = map[string]time.Weekday{
	"Su": time.Sunday,
	"Mo": time.Monday,
	"Tu": time.Tuesday,
	"We": time.Wednesday,
	"Th": time.Thursday,
	"Fr": time.Friday,
	"Sa": time.Saturday,
}

func weekdayName(s string) (time.Weekday, bool) {
	d, ok := weekdays[s]
	return d, ok
}

func modifierKind(s string) (RuleKind, bool) {
	switch s {
	case "open":
		return KindOpen, true
	case "closed", "off":
		return KindClosed, true
	case "unknown":
		return KindUnknown, true
	}
	return 0, false
}
