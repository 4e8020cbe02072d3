package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFreeWindows(t *testing.T) {
	tests := []struct {
		name         string
		dayStart     int
		dayEnd       int
		reservations []Reservation
		want         []TimeWindow
	}{
		{
			name:         "no reservations - whole day free",
			dayStart:     0,
			dayEnd:       1440,
			reservations: nil,
			want:         []TimeWindow{{Start: 0, End: 1440}},
		},
		{
			name:     "two reservations in the middle",
			dayStart: 0,
			dayEnd:   1440,
			reservations: []Reservation{
				{Start: 540, End: 600},
				{Start: 720, End: 780},
			},
			want: []TimeWindow{
				{Start: 0, End: 540},
				{Start: 600, End: 720},
				{Start: 780, End: 1440},
			},
		},
		{
			name:     "reservation touching day start produces no zero-length window",
			dayStart: 480,
			dayEnd:   1320,
			reservations: []Reservation{
				{Start: 480, End: 600},
			},
			want: []TimeWindow{{Start: 600, End: 1320}},
		},
		{
			name:     "reservation touching day end produces no zero-length window",
			dayStart: 480,
			dayEnd:   1320,
			reservations: []Reservation{
				{Start: 1200, End: 1320},
			},
			want: []TimeWindow{{Start: 480, End: 1200}},
		},
		{
			name:     "reservations covering the whole day - empty result",
			dayStart: 480,
			dayEnd:   1320,
			reservations: []Reservation{
				{Start: 480, End: 900},
				{Start: 900, End: 1320},
			},
			want: []TimeWindow{},
		},
		{
			name:     "back to back reservations leave no window between them",
			dayStart: 0,
			dayEnd:   1440,
			reservations: []Reservation{
				{Start: 600, End: 660},
				{Start: 660, End: 720},
			},
			want: []TimeWindow{
				{Start: 0, End: 600},
				{Start: 720, End: 1440},
			},
		},
		{
			name:     "reservation extending past day end",
			dayStart: 480,
			dayEnd:   1200,
			reservations: []Reservation{
				{Start: 1140, End: 1320},
			},
			want: []TimeWindow{{Start: 480, End: 1140}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeFreeWindows(tt.dayStart, tt.dayEnd, tt.reservations)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeFreeWindows_InvalidInput(t *testing.T) {
	t.Run("day start after day end", func(t *testing.T) {
		_, err := ComputeFreeWindows(600, 480, nil)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("day start equals day end", func(t *testing.T) {
		_, err := ComputeFreeWindows(600, 600, nil)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("day end past midnight", func(t *testing.T) {
		_, err := ComputeFreeWindows(0, 1441, nil)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("reservation with start after end", func(t *testing.T) {
		_, err := ComputeFreeWindows(0, 1440, []Reservation{{Start: 700, End: 600}})
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("unsorted reservations", func(t *testing.T) {
		_, err := ComputeFreeWindows(0, 1440, []Reservation{
			{Start: 720, End: 780},
			{Start: 540, End: 600},
		})
		assert.ErrorIs(t, err, ErrUnorderedReservations)
	})

	t.Run("overlapping reservations", func(t *testing.T) {
		_, err := ComputeFreeWindows(0, 1440, []Reservation{
			{Start: 540, End: 620},
			{Start: 600, End: 660},
		})
		assert.ErrorIs(t, err, ErrUnorderedReservations)
	})
}

// Свободные окна вместе с бронями должны в точности восстанавливать весь день:
// без дыр и без пересечений
func TestComputeFreeWindows_CoversWholeDay(t *testing.T) {
	dayStart, dayEnd := 480, 1320
	reservations := []Reservation{
		{Start: 540, End: 600},
		{Start: 600, End: 690},
		{Start: 840, End: 960},
		{Start: 1200, End: 1320},
	}

	windows, err := ComputeFreeWindows(dayStart, dayEnd, reservations)
	require.NoError(t, err)

	type interval struct{ start, end int }
	all := make([]interval, 0)
	for _, r := range reservations {
		all = append(all, interval{r.Start, r.End})
	}
	for _, w := range windows {
		all = append(all, interval{w.Start, w.End})
	}

	covered := make(map[int]int)
	for _, iv := range all {
		for m := iv.start; m < iv.end; m++ {
			covered[m]++
		}
	}

	for m := dayStart; m < dayEnd; m++ {
		assert.Equal(t, 1, covered[m], "minute %d must be covered exactly once", m)
	}
	assert.Len(t, covered, dayEnd-dayStart)
}

func TestComputeFreeWindows_Idempotent(t *testing.T) {
	reservations := []Reservation{
		{Start: 540, End: 600},
		{Start: 720, End: 780},
	}

	first, err := ComputeFreeWindows(0, 1440, reservations)
	require.NoError(t, err)

	second, err := ComputeFreeWindows(0, 1440, reservations)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFilterPastWindows(t *testing.T) {
	windows := []TimeWindow{
		{Start: 0, End: 540},
		{Start: 600, End: 720},
		{Start: 780, End: 1440},
	}

	t.Run("straddling window is dropped entirely, not truncated", func(t *testing.T) {
		// Текущий момент 650 попадает внутрь окна 600-720: окно отбрасывается
		got := FilterPastWindows(windows, 650)
		assert.Equal(t, []TimeWindow{{Start: 780, End: 1440}}, got)
	})

	t.Run("window starting exactly now is kept", func(t *testing.T) {
		got := FilterPastWindows(windows, 600)
		assert.Equal(t, []TimeWindow{
			{Start: 600, End: 720},
			{Start: 780, End: 1440},
		}, got)
	})

	t.Run("midnight keeps everything", func(t *testing.T) {
		got := FilterPastWindows(windows, 0)
		assert.Equal(t, windows, got)
	})

	t.Run("end of day drops everything", func(t *testing.T) {
		got := FilterPastWindows(windows, 1440)
		assert.Empty(t, got)
	})
}

func TestTimeWindow_Contains(t *testing.T) {
	w := TimeWindow{Start: 600, End: 720}

	assert.True(t, w.Contains(600, 720))
	assert.True(t, w.Contains(630, 690))
	assert.False(t, w.Contains(540, 660))
	assert.False(t, w.Contains(660, 780))
	assert.False(t, w.Contains(500, 560))
}
