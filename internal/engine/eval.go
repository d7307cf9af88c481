package engine

// scanPeriodDays bounds the forward scans in NextChange and the range
// iterators. The supported selectors repeat weekly, so a value constant
// for eight consecutive days from an instant is constant forever.
const scanPeriodDays = 8

// State returns the evaluated kind at t.
func (td *TimeDomain) State(t DateTime) RuleKind {
	kind, _ := td.valueAt(t)
	return kind
}

// NextChange returns the first instant after t at which the evaluated
// kind differs from the kind at t, or DateLimit when it never does.
func (td *TimeDomain) NextChange(t DateTime) DateTime {
	if !t.Before(DateLimit) {
		return DateLimit
	}
	cur := td.State(t)

	day := t.StartOfDay()
	for i := 0; i < scanPeriodDays; i++ {
		d := day.AddDays(i)
		for _, seg := range td.dayTimeline(d) {
			segStart := d.AtMinute(seg.start)
			segEnd := d.AtMinute(seg.end)
			if !segEnd.After(t) || seg.kind == cur {
				continue
			}
			if !segStart.Before(DateLimit) {
				return DateLimit
			}
			return segStart
		}
	}
	return DateLimit
}

// nextValueChange is NextChange over the full evaluated value: it also
// stops where only the comments change, which is where interval records
// split.
func (td *TimeDomain) nextValueChange(t DateTime) DateTime {
	if !t.Before(DateLimit) {
		return DateLimit
	}
	cur := segment{}
	cur.kind, cur.comments = td.valueAt(t)

	day := t.StartOfDay()
	for i := 0; i < scanPeriodDays; i++ {
		d := day.AddDays(i)
		for _, seg := range td.dayTimeline(d) {
			segStart := d.AtMinute(seg.start)
			segEnd := d.AtMinute(seg.end)
			if !segEnd.After(t) || seg.sameValue(cur) {
				continue
			}
			if segStart.Before(t) {
				// The segment containing t carries cur by construction, so
				// this cannot happen; guard against drift anyway.
				continue
			}
			if !segStart.Before(DateLimit) {
				return DateLimit
			}
			return segStart
		}
	}
	return DateLimit
}
