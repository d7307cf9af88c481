// Package openhours evaluates OSM-style opening-hours expressions.
//
// An expression such as "Mo-Fr 09:00-17:00" is parsed once into an
// immutable Schedule, which answers point-in-time queries (is the place
// open at this instant?) and range queries (which intervals of which state
// cover this window?).
//
// Every query method takes an instant; the zero time.Time selects the
// local wall clock at call time. Callers needing determinism must pass an
// explicit instant. Datetimes are treated as naive local time: the zone of
// a time.Time argument is ignored beyond reading its wall-clock fields,
// and results are produced in time.Local at minute precision (seconds are
// always zero).
package openhours

import (
	"errors"
	"time"

	"github.com/roach88/openhours/internal/engine"
)

// Validate reports whether expr is a well-formed opening-hours
// expression. It performs no work beyond parsing: Validate(e) is true
// exactly when Parse(e) succeeds.
func Validate(expr string) bool {
	_, err := engine.Parse(expr)
	return err == nil
}

// Schedule is the parsed, immutable form of an opening-hours expression.
// It is safe for concurrent use; all query methods are read-only.
type Schedule struct {
	expr   string
	domain *engine.TimeDomain
}

// Parse compiles an expression into a Schedule. Invalid input fails with
// an *InvalidExpressionError; no partial Schedule is ever returned.
func Parse(expr string) (*Schedule, error) {
	domain, err := engine.Parse(expr)
	if err != nil {
		var detail *engine.ParseError
		if !errors.As(err, &detail) {
			detail = &engine.ParseError{Expression: expr, Message: err.Error()}
		}
		return nil, &InvalidExpressionError{Expression: expr, Detail: detail}
	}
	return &Schedule{expr: expr, domain: domain}, nil
}

// Expression returns the text the Schedule was parsed from.
func (s *Schedule) Expression() string { return s.expr }

// State returns the evaluated state at the given instant.
func (s *Schedule) State(at time.Time) State {
	return stateOf(s.domain.State(toEngine(at)))
}

// IsOpen reports whether the state at the given instant is Open.
func (s *Schedule) IsOpen(at time.Time) bool { return s.State(at) == Open }

// IsClosed reports whether the state at the given instant is Closed.
func (s *Schedule) IsClosed(at time.Time) bool { return s.State(at) == Closed }

// IsUnknown reports whether the state at the given instant is Unknown.
func (s *Schedule) IsUnknown(at time.Time) bool { return s.State(at) == Unknown }

// NextChange returns the first instant after from at which the evaluated
// state changes. ok is false when the state never changes again (or the
// change lies beyond the representable range); no concrete datetime is
// fabricated for "never".
func (s *Schedule) NextChange(from time.Time) (next time.Time, ok bool) {
	return toHost(s.domain.NextChange(toEngine(from)))
}

// Intervals returns an Iterator over the interval records covering
// [start, end). The zero start means "now"; the zero end means the stream
// is unbounded, in which case it may never terminate on its own and
// bounding consumption is the caller's responsibility.
//
// Each returned Iterator holds its own reference to the parsed value, so
// it remains valid even if the Schedule is released first, and any number
// of iterators over the same Schedule may be consumed independently.
func (s *Schedule) Intervals(start, end time.Time) *Iterator {
	from := toEngine(start)
	var ranges *engine.RangeIterator
	if end.IsZero() {
		ranges = s.domain.IterFrom(from)
	} else {
		ranges = s.domain.IterRange(from, engine.FromTime(end))
	}
	return &Iterator{domain: s.domain, ranges: ranges}
}
