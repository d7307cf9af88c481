package openhours

import (
	"time"

	"github.com/roach88/openhours/internal/engine"
)

// Interval is one record of a range query: a maximal contiguous span over
// which the evaluated state and its annotations are constant.
//
// A zero End means the interval extends beyond the representable range
// ("open forever from Start"); Start is zero only in the degenerate case
// of a query beginning past year 9999. Annotations are the free-text
// comments of the rule that produced the span, in declaration order,
// possibly empty.
type Interval struct {
	Start       time.Time
	End         time.Time
	State       State
	Annotations []string
}

// Iterator is a single-pass, forward-only stream of Intervals.
//
// It performs no buffering: each Next call advances the underlying engine
// iterator by exactly one record. An Iterator owns its cursor exclusively
// and must not be shared between concurrent consumers; concurrent range
// queries over one Schedule should each construct their own Iterator.
type Iterator struct {
	// domain pins the parsed value for the iterator's lifetime, so records
	// stay valid even after the Schedule itself is released.
	domain *engine.TimeDomain
	ranges *engine.RangeIterator
}

// Next returns the next interval record. ok is false once the stream is
// exhausted; an unbounded stream over rules that alternate forever is
// never exhausted.
func (it *Iterator) Next() (rec Interval, ok bool) {
	rng, ok := it.ranges.Next()
	if !ok {
		return Interval{}, false
	}
	start, _ := toHost(rng.Start)
	end, _ := toHost(rng.End)
	return Interval{
		Start:       start,
		End:         end,
		State:       stateOf(rng.Kind),
		Annotations: rng.Comments,
	}, true
}
