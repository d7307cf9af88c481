package engine

import (
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

// DateTime is the engine's native datetime: a naive civil date and time of
// day, second precision, no zone. Ordering and arithmetic are total.
//
// The zero DateTime is 0001-01-01 00:00:00.
type DateTime struct {
	t time.Time // always normalized to time.UTC
}

// DateLimit is the engine's end of time, 10000-01-01 00:00:00. NextChange
// returns it when the evaluated state never changes again, and unbounded
// iteration stops there.
var DateLimit = DateTime{time.Date(10000, time.January, 1, 0, 0, 0, 0, time.UTC)}

// NewDateTime builds a DateTime from civil fields. Fields that do not name
// a real calendar datetime (month 13, Feb 30, hour 25, ...) are rejected
// rather than normalized.
func NewDateTime(year int, month time.Month, day, hour, minute, second int) (DateTime, error) {
	t := time.Date(year, month, day, hour, minute, second, 0, time.UTC)
	y, m, d := t.Date()
	if y != year || m != month || d != day || t.Hour() != hour || t.Minute() != minute || t.Second() != second {
		return DateTime{}, fmt.Errorf("invalid datetime %04d-%02d-%02d %02d:%02d:%02d",
			year, month, day, hour, minute, second)
	}
	return DateTime{t}, nil
}

// MustDateTime is NewDateTime for statically known fields; it panics on
// invalid input.
func MustDateTime(year int, month time.Month, day, hour, minute, second int) DateTime {
	dt, err := NewDateTime(year, month, day, hour, minute, second)
	if err != nil {
		panic("engine: " + err.Error())
	}
	return dt
}

// FromTime copies the civil fields of t, dropping the zone and any
// sub-second precision. The fields read are t's wall-clock fields, so a
// local time converts to the naive datetime a wall clock would show.
func FromTime(t time.Time) DateTime {
	return DateTime{time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)}
}

// Date returns the year, month and day.
func (d DateTime) Date() (int, time.Month, int) { return d.t.Date() }

// Clock returns the hour, minute and second within the day.
func (d DateTime) Clock() (int, int, int) { return d.t.Clock() }

// Weekday returns the day of the week.
func (d DateTime) Weekday() time.Weekday { return d.t.Weekday() }

// Before reports whether d is strictly before other.
func (d DateTime) Before(other DateTime) bool { return d.t.Before(other.t) }

// After reports whether d is strictly after other.
func (d DateTime) After(other DateTime) bool { return d.t.After(other.t) }

// Equal reports whether d and other name the same instant.
func (d DateTime) Equal(other DateTime) bool { return d.t.Equal(other.t) }

// Compare returns -1, 0 or +1 ordering d against other.
func (d DateTime) Compare(other DateTime) int { return d.t.Compare(other.t) }

// AddDays returns d shifted by n calendar days.
func (d DateTime) AddDays(n int) DateTime { return DateTime{d.t.AddDate(0, 0, n)} }

// StartOfDay returns midnight of d's day.
func (d DateTime) StartOfDay() DateTime {
	y, m, day := d.t.Date()
	return DateTime{time.Date(y, m, day, 0, 0, 0, 0, time.UTC)}
}

// MinuteOfDay returns the number of whole minutes elapsed since midnight.
func (d DateTime) MinuteOfDay() int { return d.t.Hour()*60 + d.t.Minute() }

// AtMinute returns d's day at the given minute of day. A value of 1440
// names midnight of the following day.
func (d DateTime) AtMinute(m int) DateTime {
	return DateTime{d.StartOfDay().t.Add(time.Duration(m) * time.Minute)}
}

func (d DateTime) String() string {
	return d.t.Format("2006-01-02 15:04:05")
}
