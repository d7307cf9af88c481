package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateTime_Valid(t *testing.T) {
	dt, err := NewDateTime(2024, time.June, 10, 9, 30, 15)
	require.NoError(t, err)

	year, month, day := dt.Date()
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.June, month)
	assert.Equal(t, 10, day)

	hour, minute, second := dt.Clock()
	assert.Equal(t, 9, hour)
	assert.Equal(t, 30, minute)
	assert.Equal(t, 15, second)
}

func TestNewDateTime_RejectsInvalidFields(t *testing.T) {
	cases := []struct {
		name                      string
		year                      int
		month                     time.Month
		day, hour, minute, second int
	}{
		{"month 13", 2024, time.Month(13), 1, 0, 0, 0},
		{"feb 30", 2024, time.February, 30, 0, 0, 0},
		{"hour 25", 2024, time.June, 10, 25, 0, 0},
		{"minute 61", 2024, time.June, 10, 12, 61, 0},
		{"day 0", 2024, time.June, 0, 12, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDateTime(tc.year, tc.month, tc.day, tc.hour, tc.minute, tc.second)
			assert.Error(t, err, "fields should be rejected, not normalized")
		})
	}
}

func TestFromTime_CopiesWallClockFields(t *testing.T) {
	zone := time.FixedZone("UTC+5", 5*3600)
	src := time.Date(2024, time.June, 10, 9, 30, 45, 123456789, zone)

	dt := FromTime(src)
	year, month, day := dt.Date()
	hour, minute, second := dt.Clock()
	assert.Equal(t, []int{2024, 6, 10, 9, 30, 45}, []int{year, int(month), day, hour, minute, second},
		"zone and sub-second precision are dropped, fields kept")
}

func TestDateTime_Ordering(t *testing.T) {
	a := MustDateTime(2024, time.June, 10, 9, 0, 0)
	b := MustDateTime(2024, time.June, 10, 9, 0, 1)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.Equal(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.True(t, a.Before(DateLimit))
}

func TestDateTime_DayArithmetic(t *testing.T) {
	dt := MustDateTime(2024, time.June, 10, 9, 30, 0) // a Monday

	assert.Equal(t, time.Monday, dt.Weekday())
	assert.Equal(t, 9*60+30, dt.MinuteOfDay())
	assert.Equal(t, MustDateTime(2024, time.June, 10, 0, 0, 0), dt.StartOfDay())
	assert.Equal(t, time.Tuesday, dt.AddDays(1).Weekday())

	assert.Equal(t, MustDateTime(2024, time.June, 10, 17, 0, 0), dt.AtMinute(17*60))
	// Minute 1440 names midnight of the following day.
	assert.Equal(t, MustDateTime(2024, time.June, 11, 0, 0, 0), dt.AtMinute(minutesPerDay))
}

func TestDateTime_String(t *testing.T) {
	dt := MustDateTime(2024, time.June, 10, 9, 5, 0)
	assert.Equal(t, "2024-06-10 09:05:00", dt.String())
}
