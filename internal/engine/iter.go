package engine

// DateTimeRange is one element of a range query: a maximal span over which
// the evaluated value is constant.
type DateTimeRange struct {
	Start, End DateTime
	Kind       RuleKind
	Comments   []string
}

// RangeIterator walks consecutive DateTimeRanges forward from a starting
// instant. Ranges of every kind are produced: together they tile the
// queried span with no gaps or overlaps, in order.
//
// The iterator holds only a cursor besides its reference to the domain; it
// is single-consumer and must not be shared between goroutines.
type RangeIterator struct {
	td     *TimeDomain
	cursor DateTime
	end    DateTime
	done   bool
}

// IterFrom returns an unbounded iterator starting at start. A domain whose
// rules alternate forever yields ranges forever; a domain that settles
// yields a final range ending at DateLimit and then stops.
func (td *TimeDomain) IterFrom(start DateTime) *RangeIterator {
	it := &RangeIterator{td: td, cursor: start, end: DateLimit}
	if !start.Before(DateLimit) {
		it.done = true
	}
	return it
}

// IterRange returns an iterator over [start, end). The final range is
// clamped so that it never extends past end.
func (td *TimeDomain) IterRange(start, end DateTime) *RangeIterator {
	if end.After(DateLimit) {
		end = DateLimit
	}
	it := &RangeIterator{td: td, cursor: start, end: end}
	if !start.Before(end) {
		it.done = true
	}
	return it
}

// Next returns the next range, advancing the cursor past it. ok is false
// once the iterator is exhausted.
func (it *RangeIterator) Next() (rng DateTimeRange, ok bool) {
	if it.done {
		return DateTimeRange{}, false
	}

	kind, comments := it.td.valueAt(it.cursor)
	end := it.td.nextValueChange(it.cursor)
	if end.After(it.end) {
		end = it.end
	}

	rng = DateTimeRange{Start: it.cursor, End: end, Kind: kind, Comments: comments}
	it.cursor = end
	if !end.Before(it.end) {
		it.done = true
	}
	return rng, true
}
