package daytime

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// day is a fixed anchor date used throughout the tests. UTC avoids DST shifts.
var day = time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)

func at(h, m, s int) time.Time {
	return time.Date(2024, 6, 14, h, m, s, 0, time.UTC)
}

func TestNewWindow(t *testing.T) {
	w, err := NewWindowHours(at(9, 30, 0), MustTimeOfDay(6, 0, 0), 12)
	require.NoError(t, err)
	assert.Equal(t, at(6, 0, 0), w.Start)
	assert.Equal(t, at(18, 0, 0), w.End())
	assert.Equal(t, "06:00:00 - 18:00:00", w.String())

	_, err = NewWindowHours(day, Midnight, 0)
	assert.ErrorIs(t, err, ErrInvalidDuration)
	_, err = NewWindow(day, Midnight, -time.Hour)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestWindowMidnightWrap(t *testing.T) {
	w, err := NewWindowHours(day, MustTimeOfDay(22, 0, 0), 4)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 6, 15, 2, 0, 0, 0, time.UTC), w.End())
	assert.True(t, w.Contains(at(23, 0, 0)))
	assert.True(t, w.Contains(time.Date(2024, 6, 15, 1, 0, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2024, 6, 15, 2, 0, 0, 0, time.UTC)))
	assert.False(t, w.Contains(at(21, 59, 59)))
}

func TestActiveWindow(t *testing.T) {
	start := MustTimeOfDay(18, 0, 0)

	// 03:00 is inside yesterday's 18:00 + 12h window.
	w, err := ActiveWindow(at(3, 0, 0), start, 12*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 13, 18, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, at(6, 0, 0), w.End())

	// 20:00 is inside today's.
	w, err = ActiveWindow(at(20, 0, 0), start, 12*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, at(18, 0, 0), w.Start)

	// 12:00 is in neither; today's anchor wins.
	w, err = ActiveWindow(at(12, 0, 0), start, 12*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, at(18, 0, 0), w.Start)
}

func TestDivideZero(t *testing.T) {
	w, err := NewWindowHours(day, Midnight, 24)
	require.NoError(t, err)

	_, err = w.Divide(0)
	assert.ErrorIs(t, err, ErrEmptyDivision)
}

func TestDivideOne(t *testing.T) {
	w, err := NewWindowHours(day, MustTimeOfDay(6, 0, 0), 12)
	require.NoError(t, err)

	segments, err := w.Divide(1)
	require.NoError(t, err)
	assert.Equal(t, []Window{w}, segments)
}

func TestDivideFourQuarters(t *testing.T) {
	w, err := NewWindowHours(day, Midnight, 24)
	require.NoError(t, err)

	segments, err := w.Divide(4)
	require.NoError(t, err)
	require.Len(t, segments, 4)
	for i, s := range segments {
		assert.Equal(t, at(6*i, 0, 0), s.Start)
		assert.Equal(t, 6*time.Hour, s.Duration)
	}
}

func TestDivideResidualOnLast(t *testing.T) {
	w := Window{Start: day, Duration: 10 * time.Second}

	segments, err := w.Divide(3)
	require.NoError(t, err)
	require.Len(t, segments, 3)
	assert.Equal(t, 3*time.Second, segments[0].Duration)
	assert.Equal(t, 3*time.Second, segments[1].Duration)
	assert.Equal(t, 4*time.Second, segments[2].Duration)
	assert.Equal(t, w.End(), segments[2].End())
}

// TestDivideExactTiling sweeps several windows and segment counts and checks
// that every division tiles its parent with no gap or overlap.
func TestDivideExactTiling(t *testing.T) {
	windows := []Window{
		{Start: day, Duration: 24 * time.Hour},
		{Start: at(6, 0, 0), Duration: 12 * time.Hour},
		{Start: at(22, 0, 0), Duration: 4 * time.Hour},
		{Start: at(7, 13, 29), Duration: 7*time.Hour + 11*time.Second},
		{Start: at(0, 0, 0), Duration: 48 * time.Hour},
		{Start: at(12, 0, 0), Duration: time.Second},
	}
	counts := []int{1, 2, 3, 4, 5, 7, 9, 11, 13, 24, 60, 97}

	for _, w := range windows {
		for _, n := range counts {
			t.Run(fmt.Sprintf("%s/%d", w, n), func(t *testing.T) {
				segments, err := w.Divide(n)
				require.NoError(t, err)
				require.Len(t, segments, n)

				assert.Equal(t, w.Start, segments[0].Start)
				assert.Equal(t, w.End(), segments[n-1].End())
				for i := 0; i < n-1; i++ {
					assert.Equal(t, segments[i].End(), segments[i+1].Start, "gap or overlap after segment %d", i)
				}
				var total time.Duration
				for _, s := range segments {
					total += s.Duration
				}
				assert.Equal(t, w.Duration, total)
			})
		}
	}
}
