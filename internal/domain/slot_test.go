package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidSlotRange(t *testing.T) {
	tests := []struct {
		name  string
		start int
		count int
		want  bool
	}{
		{"single slot at grid start", 0, 1, true},
		{"single slot at grid end", 2, 1, true},
		{"two slots from start", 0, 2, true},
		{"full day", 0, 3, true},
		{"two slots from middle", 1, 2, true},
		{"three slots from middle exceed grid", 1, 3, false},
		{"two slots from end exceed grid", 2, 2, false},
		{"negative start", -1, 1, false},
		{"zero count", 0, 0, false},
		{"count above grid size", 0, 4, false},
		{"start beyond grid", 3, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidSlotRange(tt.start, tt.count))
		})
	}
}

func TestSlotIndices(t *testing.T) {
	indices, ok := SlotIndices(1, 2)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, indices)

	indices, ok = SlotIndices(0, 3)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2}, indices)

	_, ok = SlotIndices(2, 2)
	assert.False(t, ok)
}

func TestRangeLabel(t *testing.T) {
	assert.Equal(t, "08:00-11:00", RangeLabel(0, 1))
	assert.Equal(t, "08:00-13:30", RangeLabel(0, 2))
	assert.Equal(t, "08:00-16:00", RangeLabel(0, 3))
	assert.Equal(t, "11:00-13:30", RangeLabel(1, 1))
	assert.Equal(t, "13:30-16:00", RangeLabel(2, 1))

	// Невалидный диапазон - пустая метка
	assert.Equal(t, "", RangeLabel(2, 2))
	assert.Equal(t, "", RangeLabel(-1, 1))
}

func TestRangeTimes(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	from, to, ok := RangeTimes(date, 1, 2)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 9, 15, 11, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 9, 15, 16, 0, 0, 0, time.UTC), to)

	_, _, ok = RangeTimes(date, 1, 3)
	assert.False(t, ok)
}

func TestSlotWindowTimes(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	start, end := SlotWindowTimes(date, 0)
	assert.Equal(t, time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 9, 15, 11, 0, 0, 0, time.UTC), end)

	start, end = SlotWindowTimes(date, 2)
	assert.Equal(t, time.Date(2026, 9, 15, 13, 30, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 9, 15, 16, 0, 0, 0, time.UTC), end)
}
