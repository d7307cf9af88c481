package openhours

import (
	"time"

	"github.com/roach88/openhours/internal/engine"
)

// maxRepresentable is the latest instant the host-facing API will
// materialize as a concrete time.Time: 9999-12-31 23:59:59. Engine
// datetimes at or beyond it stand for "unbounded future" and convert to
// absence instead.
var maxRepresentable = engine.MustDateTime(9999, time.December, 31, 23, 59, 59)

// toEngine converts a host time to the engine's naive datetime by copying
// its wall-clock fields. The zero time.Time selects the local wall clock
// at call time.
func toEngine(at time.Time) engine.DateTime {
	if at.IsZero() {
		at = time.Now()
	}
	return engine.FromTime(at)
}

// toHost converts an engine datetime back to a host time in time.Local.
// ok is false at or beyond maxRepresentable: the caller receives absence,
// never a wrapped or malformed date. Seconds are forced to zero on
// output; this precision loss is deliberate, the engine only ever
// produces minute-aligned boundaries.
func toHost(dt engine.DateTime) (t time.Time, ok bool) {
	if !dt.Before(maxRepresentable) {
		return time.Time{}, false
	}
	year, month, day := dt.Date()
	hour, minute, _ := dt.Clock()
	return time.Date(year, month, day, hour, minute, 0, 0, time.Local), true
}
