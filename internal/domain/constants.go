package domain

// Slot grid constants
const (
	SlotsPerDay  = 3
	MinSlotCount = 1
	MaxSlotCount = 3
)

// Default day capacities by weekday type
const (
	DefaultWeekdayOpenSlots  = 3
	DefaultSaturdayOpenSlots = 2
	DefaultSundayOpenSlots   = 1
)

// Range query limits
const (
	DefaultMaxRangeDays     = 60
	DefaultUrgentWindowDays = 14
)

// Business validation constants
const (
	MaxNoteLength               = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ReleasedStatuses список статусов, освобождающих занятые слоты
// Используется при вычислении занятости
var ReleasedStatuses = []ReservationStatus{
	StatusCancelledByCustomer,
	StatusCancelledByStaff,
	StatusNoShow,
}

// OccupyingStatuses список статусов, удерживающих слоты занятыми
var OccupyingStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
