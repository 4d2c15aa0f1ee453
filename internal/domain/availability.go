package domain

import (
	"time"

	"github.com/st-neumann/SNR-BookingService/pkg/types"
)

// StartOption represents one valid start slot for a reservation of a given length
type StartOption struct {
	StartSlot int
	StartTime types.TimeString
	Label     string // e.g. "08:00-13:30" for a two-slot run from slot 0
}

// DayAvailability derived availability view for one calendar day
// Recomputed on every query; advisory only and never cached across admission decisions
type DayAvailability struct {
	Date        time.Time
	ValidStarts []StartOption

	OpenSlotCount      int // слотов открыто по вместимости
	BlockedSlotCount   int // из открытых занято бронированиями
	RemainingSlotCount int // открыто и свободно
}

// HasValidStarts returns true if at least one start slot is available
func (d *DayAvailability) HasValidStarts() bool {
	return len(d.ValidStarts) > 0
}
