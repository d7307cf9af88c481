package openhours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervals_UnboundedTwentyFourSeven(t *testing.T) {
	s := mustParse(t, "24/7")
	start := monday(10, 30)

	iter := s.Intervals(start, time.Time{})
	rec, ok := iter.Next()
	require.True(t, ok)

	assert.Equal(t, start, rec.Start)
	assert.True(t, rec.End.IsZero(), "an interval reaching the date limit has an absent end")
	assert.Equal(t, Open, rec.State)
	assert.Empty(t, rec.Annotations)

	_, ok = iter.Next()
	assert.False(t, ok)
}

func TestIntervals_BoundedWindow(t *testing.T) {
	s := mustParse(t, "Mo-Fr 09:00-17:00")
	start := monday(0, 0)
	end := monday(0, 0).AddDate(0, 0, 1)

	iter := s.Intervals(start, end)
	var records []Interval
	for {
		rec, ok := iter.Next()
		if !ok {
			break
		}
		records = append(records, rec)
	}

	require.Len(t, records, 3)
	assert.Equal(t, []Interval{
		{Start: start, End: monday(9, 0), State: Closed},
		{Start: monday(9, 0), End: monday(17, 0), State: Open},
		{Start: monday(17, 0), End: end, State: Closed},
	}, records)
}

func TestIntervals_BoundedInvariant(t *testing.T) {
	s := mustParse(t, `Mo-Fr 09:00-12:00,13:30-17:00; Sa 10:00-14:00 "short day"`)
	start := monday(6, 15)
	end := monday(0, 0).AddDate(0, 0, 8)

	iter := s.Intervals(start, end)
	cursor := start
	for {
		rec, ok := iter.Next()
		if !ok {
			break
		}
		require.False(t, rec.Start.Before(start))
		require.True(t, rec.Start.Before(rec.End))
		require.False(t, rec.End.After(end))
		require.Equal(t, cursor, rec.Start, "records must tile the window in order")
		cursor = rec.End
	}
	assert.Equal(t, end, cursor)
}

func TestIntervals_AlternatingRules(t *testing.T) {
	s := mustParse(t, "Mo-Su 08:00-14:00; Mo-Su 14:00-20:00 unknown")

	iter := s.Intervals(monday(8, 0), monday(20, 0))

	first, ok := iter.Next()
	require.True(t, ok)
	assert.Equal(t, monday(8, 0), first.Start)
	assert.Equal(t, monday(14, 0), first.End)
	assert.Equal(t, Open, first.State)

	second, ok := iter.Next()
	require.True(t, ok)
	assert.Equal(t, monday(14, 0), second.Start)
	assert.Equal(t, monday(20, 0), second.End)
	assert.Equal(t, Unknown, second.State)

	_, ok = iter.Next()
	assert.False(t, ok, "exactly two records span the window")
}

func TestIntervals_Annotations(t *testing.T) {
	s := mustParse(t, `Mo 09:00-17:00 "by appointment"`)

	iter := s.Intervals(monday(9, 0), monday(17, 0))
	rec, ok := iter.Next()
	require.True(t, ok)
	assert.Equal(t, []string{"by appointment"}, rec.Annotations)
}

func TestIntervals_OutlivesSchedule(t *testing.T) {
	// The iterator holds its own reference to the parsed value; dropping
	// the Schedule must not invalidate it.
	iter := mustParse(t, "Mo-Su 09:00-17:00").Intervals(monday(0, 0), time.Time{})

	rec, ok := iter.Next()
	require.True(t, ok)
	assert.Equal(t, Closed, rec.State)
	rec, ok = iter.Next()
	require.True(t, ok)
	assert.Equal(t, Open, rec.State)
}

func TestIntervals_IndependentConsumers(t *testing.T) {
	s := mustParse(t, "Mo-Su 09:00-17:00")

	a := s.Intervals(monday(0, 0), time.Time{})
	b := s.Intervals(monday(0, 0), time.Time{})

	firstA, _ := a.Next()
	a.Next()
	firstB, _ := b.Next()
	assert.Equal(t, firstA, firstB, "each stream has its own cursor")
}

func TestIntervals_MinutePrecision(t *testing.T) {
	s := mustParse(t, "Mo-Fr 09:00-17:00")
	start := time.Date(2024, time.June, 10, 8, 0, 42, 500, time.Local)

	rec, ok := s.Intervals(start, monday(12, 0)).Next()
	require.True(t, ok)
	assert.Equal(t, monday(8, 0), rec.Start, "sub-minute precision is dropped on output")
	assert.Zero(t, rec.Start.Second())
}
