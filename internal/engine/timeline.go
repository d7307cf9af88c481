package engine

import "slices"

// segment is a run of minutes within one day over which the evaluated
// value is constant. start and end are minutes of day, half-open.
type segment struct {
	start, end int
	kind       RuleKind
	comments   []string
}

// sameValue reports whether two segments carry the same evaluated value.
func (s segment) sameValue(o segment) bool {
	return s.kind == o.kind && slices.Equal(s.comments, o.comments)
}

// dayTimeline computes the evaluation for every minute of day's date as
// merged segments covering [0, 1440). Rules are overlaid in declaration
// order, so a later matching rule wins; minutes no rule covers evaluate to
// closed with no comments. Spans wrapping midnight from the previous day
// contribute their post-midnight part.
func (td *TimeDomain) dayTimeline(day DateTime) []segment {
	today := day.Weekday()
	yesterday := day.AddDays(-1).Weekday()

	// owner[m] is the index of the rule that decides minute m, -1 for the
	// closed default.
	var owner [minutesPerDay]int
	for m := range owner {
		owner[m] = -1
	}

	for i, rule := range td.rules {
		if rule.Days.Has(yesterday) {
			for _, span := range rule.Spans {
				if span.End > minutesPerDay {
					claim(&owner, 0, span.End-minutesPerDay, i)
				}
			}
		}
		if rule.Days.Has(today) {
			for _, span := range rule.Spans {
				claim(&owner, span.Start, min(span.End, minutesPerDay), i)
			}
		}
	}

	var segs []segment
	for m := 0; m < minutesPerDay; m++ {
		seg := segment{start: m, end: m + 1, kind: KindClosed}
		if idx := owner[m]; idx >= 0 {
			seg.kind = td.rules[idx].Kind
			seg.comments = td.rules[idx].Comments
		}
		if n := len(segs); n > 0 && segs[n-1].sameValue(seg) {
			segs[n-1].end = seg.end
		} else {
			segs = append(segs, seg)
		}
	}
	return segs
}

func claim(owner *[minutesPerDay]int, start, end, rule int) {
	for m := start; m < end; m++ {
		owner[m] = rule
	}
}

// valueAt returns the evaluated (kind, comments) pair at t.
func (td *TimeDomain) valueAt(t DateTime) (RuleKind, []string) {
	m := t.MinuteOfDay()
	for _, seg := range td.dayTimeline(t) {
		if m >= seg.start && m < seg.end {
			return seg.kind, seg.comments
		}
	}
	// Unreachable: segments tile the whole day.
	return KindClosed, nil
}
