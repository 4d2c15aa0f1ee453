package domain

import "time"

// DayOverride represents a per-date exception to the default day capacity
// Absence of an override for a date means "use the weekday default"
type DayOverride struct {
	ID   int64
	Date time.Time

	// OpenSlotCount количество открытых слотов (0..SlotsPerDay)
	// nil или значение вне диапазона трактуется как "использовать дефолт"
	OpenSlotCount *int

	// VisibleOnUrgentChannel видимость дня в срочном канале записи
	// nil трактуется как true
	VisibleOnUrgentChannel *bool

	Note *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasValidOpenSlotCount returns true if the override carries a usable open-slot count.
// Out-of-range values are deliberately treated as absent rather than rejected:
// the capacity data is advisory and the system favors availability over hard failure.
func (o *DayOverride) HasValidOpenSlotCount() bool {
	return o.OpenSlotCount != nil && *o.OpenSlotCount >= 0 && *o.OpenSlotCount <= SlotsPerDay
}

// HiddenFromUrgentChannel returns true if the day is explicitly hidden
// from the urgent booking channel
func (o *DayOverride) HiddenFromUrgentChannel() bool {
	return o.VisibleOnUrgentChannel != nil && !*o.VisibleOnUrgentChannel
}

// DayDefaults политика дефолтной вместимости по дням недели
// Инжектируется из конфигурации, чтобы не зашивать правило в алгоритм
type DayDefaults struct {
	Weekday  int
	Saturday int
	Sunday   int
}

// DefaultDayDefaults returns the built-in weekday capacity policy
func DefaultDayDefaults() DayDefaults {
	return DayDefaults{
		Weekday:  DefaultWeekdayOpenSlots,
		Saturday: DefaultSaturdayOpenSlots,
		Sunday:   DefaultSundayOpenSlots,
	}
}

// OpenSlotsFor returns the default number of open slots for the date's weekday
func (d DayDefaults) OpenSlotsFor(date time.Time) int {
	switch date.Weekday() {
	case time.Saturday:
		return d.Saturday
	case time.Sunday:
		return d.Sunday
	default:
		return d.Weekday
	}
}
