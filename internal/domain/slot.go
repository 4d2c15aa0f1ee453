package domain

import (
	"fmt"
	"time"

	"github.com/st-neumann/SNR-BookingService/pkg/types"
)

// SlotWindow represents one of the fixed daily time slots
type SlotWindow struct {
	Index     int
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Slots фиксированная сетка слотов на день
// Границы слотов не настраиваются; настраивается только количество открытых слотов
var Slots = [SlotsPerDay]SlotWindow{
	{Index: 0, StartTime: "08:00", EndTime: "11:00"},
	{Index: 1, StartTime: "11:00", EndTime: "13:30"},
	{Index: 2, StartTime: "13:30", EndTime: "16:00"},
}

// ValidSlotRange returns true if a run of count slots starting at start
// fits entirely within the daily grid
func ValidSlotRange(start, count int) bool {
	if count < MinSlotCount || count > MaxSlotCount {
		return false
	}
	return start >= 0 && start+count <= SlotsPerDay
}

// SlotIndices returns the closed index range [start, start+count-1]
// The second return value is false if the range does not fit the grid
func SlotIndices(start, count int) ([]int, bool) {
	if !ValidSlotRange(start, count) {
		return nil, false
	}

	indices := make([]int, count)
	for i := range indices {
		indices[i] = start + i
	}
	return indices, true
}

// RangeLabel returns a human-readable label spanning the start of slot start
// to the end of slot start+count-1, e.g. "08:00-13:30"
// For an invalid range returns an empty string
func RangeLabel(start, count int) string {
	if !ValidSlotRange(start, count) {
		return ""
	}
	return fmt.Sprintf("%s-%s", Slots[start].StartTime, Slots[start+count-1].EndTime)
}

// RangeTimes materializes the slot range into concrete start/end timestamps
// on the given date
func RangeTimes(date time.Time, start, count int) (time.Time, time.Time, bool) {
	if !ValidSlotRange(start, count) {
		return time.Time{}, time.Time{}, false
	}

	from := Slots[start].StartTime.OnDate(date)
	to := Slots[start+count-1].EndTime.OnDate(date)
	return from, to, true
}

// SlotWindowTimes возвращает границы одного слота на указанную дату
func SlotWindowTimes(date time.Time, index int) (time.Time, time.Time) {
	return Slots[index].StartTime.OnDate(date), Slots[index].EndTime.OnDate(date)
}
