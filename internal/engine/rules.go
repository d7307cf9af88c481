package engine

import "time"

// RuleKind is the engine's tri-state evaluation result.
type RuleKind uint8

const (
	KindOpen RuleKind = iota
	KindClosed
	KindUnknown
)

func (k RuleKind) String() string {
	switch k {
	case KindOpen:
		return "open"
	case KindClosed:
		return "closed"
	case KindUnknown:
		return "unknown"
	}
	return "invalid"
}

// WeekdaySet is a bitmask over time.Weekday.
type WeekdaySet uint8

const allWeek WeekdaySet = 1<<7 - 1

// Has reports whether the set contains d.
func (s WeekdaySet) Has(d time.Weekday) bool { return s&(1<<uint(d)) != 0 }

func (s WeekdaySet) add(d time.Weekday) WeekdaySet { return s | 1<<uint(d) }

// addRange adds the inclusive range from..to, wrapping past Saturday when
// to precedes from (Fr-Mo is Fr,Sa,Su,Mo).
func (s WeekdaySet) addRange(from, to time.Weekday) WeekdaySet {
	d := from
	for {
		s = s.add(d)
		if d == to {
			return s
		}
		d = (d + 1) % 7
	}
}

// TimeSpan is a half-open range of minutes within a day. End may exceed a
// full day to express a span wrapping midnight: 20:00-02:00 is
// {Start: 1200, End: 1560}. Start is always below minutesPerDay.
type TimeSpan struct {
	Start, End int
}

// Rule is one ";"-separated unit of an expression: a weekday selector, a
// set of time spans, the resulting kind and an optional comment.
type Rule struct {
	Days     WeekdaySet
	Spans    []TimeSpan // never empty after parsing; whole day is {0, 1440}
	Kind     RuleKind
	Comments []string // zero or one entry
}

// TimeDomain is the parsed, queryable form of an expression. It is
// immutable after Parse and safe for concurrent readers.
type TimeDomain struct {
	rules []Rule
}

// Rules returns the parsed rules in declaration order. The returned slice
// must not be modified.
func (td *TimeDomain) Rules() []Rule { return td.rules }
