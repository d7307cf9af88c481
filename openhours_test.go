package openhours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-06-10 is a Monday.
func monday(hour, minute int) time.Time {
	return time.Date(2024, time.June, 10, hour, minute, 0, 0, time.Local)
}

func mustParse(t *testing.T, expr string) *Schedule {
	t.Helper()
	s, err := Parse(expr)
	require.NoError(t, err)
	return s
}

func TestValidate_AgreesWithParse(t *testing.T) {
	valid := []string{
		"24/7",
		"24/7 off",
		"24/7 unknown",
		"Mo-Fr 09:00-17:00",
		`Mo,Sa 08:00-12:00,13:00-18:00 "ring the bell"`,
		"Fr 20:00-02:00",
	}
	invalid := []string{
		"24/77",
		"",
		"Mo-",
		"25:00-26:00",
		"every day somehow",
	}

	for _, expr := range valid {
		assert.True(t, Validate(expr), "expression %q should validate", expr)
		_, err := Parse(expr)
		assert.NoError(t, err, "Validate and Parse must agree on %q", expr)
	}
	for _, expr := range invalid {
		assert.False(t, Validate(expr), "expression %q should not validate", expr)
		_, err := Parse(expr)
		assert.Error(t, err, "Validate and Parse must agree on %q", expr)
	}
}

func TestSchedule_TwentyFourSeven(t *testing.T) {
	s := mustParse(t, "24/7")

	for _, at := range []time.Time{monday(0, 0), monday(12, 31), monday(23, 59).AddDate(1, 2, 3)} {
		assert.Equal(t, Open, s.State(at))
		assert.True(t, s.IsOpen(at))
		assert.False(t, s.IsClosed(at))
		assert.False(t, s.IsUnknown(at))
	}

	// The zero instant means "now"; 24/7 is open regardless of the clock.
	assert.Equal(t, Open, s.State(time.Time{}))
	assert.True(t, s.IsOpen(time.Time{}))
}

func TestSchedule_TwentyFourSevenOff(t *testing.T) {
	s := mustParse(t, "24/7 off")
	assert.Equal(t, Closed, s.State(monday(12, 0)))
	assert.Equal(t, Closed, s.State(time.Time{}))
}

func TestSchedule_TwentyFourSevenUnknown(t *testing.T) {
	s := mustParse(t, "24/7 unknown")
	assert.Equal(t, Unknown, s.State(monday(12, 0)))
	assert.Equal(t, Unknown, s.State(time.Time{}))
}

func TestSchedule_ExactlyOnePredicateHolds(t *testing.T) {
	s := mustParse(t, "Mo-Fr 09:00-17:00; Sa unknown")

	instants := []time.Time{
		monday(8, 59),
		monday(9, 0),
		monday(12, 30),
		monday(12, 30).AddDate(0, 0, 5), // Saturday
		monday(12, 30).AddDate(0, 0, 6), // Sunday
	}
	for _, at := range instants {
		state := s.State(at)
		trueCount := 0
		for _, pred := range []bool{s.IsOpen(at), s.IsClosed(at), s.IsUnknown(at)} {
			if pred {
				trueCount++
			}
		}
		require.Equal(t, 1, trueCount, "exactly one predicate at %v", at)
		switch state {
		case Open:
			assert.True(t, s.IsOpen(at))
		case Closed:
			assert.True(t, s.IsClosed(at))
		case Unknown:
			assert.True(t, s.IsUnknown(at))
		}
	}
}

func TestSchedule_StateIsIdempotent(t *testing.T) {
	s := mustParse(t, "Mo-Fr 09:00-17:00")
	at := monday(10, 15)
	assert.Equal(t, s.State(at), s.State(at))
}

func TestSchedule_NextChange(t *testing.T) {
	s := mustParse(t, "Mo-Fr 09:00-17:00")

	next, ok := s.NextChange(monday(10, 0))
	require.True(t, ok)
	assert.Equal(t, monday(17, 0), next)

	next, ok = s.NextChange(monday(7, 30))
	require.True(t, ok)
	assert.Equal(t, monday(9, 0), next)
}

func TestSchedule_NextChange_NeverIsAbsence(t *testing.T) {
	for _, expr := range []string{"24/7", "24/7 off", "24/7 unknown"} {
		t.Run(expr, func(t *testing.T) {
			s := mustParse(t, expr)
			next, ok := s.NextChange(monday(12, 0))
			assert.False(t, ok, "a domain that never changes reports absence")
			assert.True(t, next.IsZero(), "no concrete datetime is fabricated")
		})
	}
}

func TestSchedule_Expression(t *testing.T) {
	s := mustParse(t, "Mo-Fr 09:00-17:00")
	assert.Equal(t, "Mo-Fr 09:00-17:00", s.Expression())
}

func TestSchedule_ConcurrentReaders(t *testing.T) {
	s := mustParse(t, "Mo-Fr 09:00-17:00")

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				_ = s.State(monday(10, 0))
				_, _ = s.NextChange(monday(10, 0))
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
