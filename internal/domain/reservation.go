package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending             ReservationStatus = "pending"
	StatusConfirmed           ReservationStatus = "confirmed"
	StatusInProgress          ReservationStatus = "in_progress"
	StatusCompleted           ReservationStatus = "completed"
	StatusCancelledByCustomer ReservationStatus = "cancelled_by_customer"
	StatusCancelledByStaff    ReservationStatus = "cancelled_by_staff"
	StatusNoShow              ReservationStatus = "no_show"
)

// Reservation represents a committed booking occupying a contiguous run of slots
type Reservation struct {
	ID         int64
	CustomerID int64

	// Границы занимаемого диапазона как полные timestamp'ы
	// Индексы слотов выводятся из них через пересечение с сеткой
	SlotStart time.Time
	SlotEnd   time.Time

	Status ReservationStatus
	Note   *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOccupying returns true if the reservation blocks its slots.
// The classification is decided once here: a reservation occupies unless its
// status is one of the released statuses. An unknown status occupies
// (fail-safe toward over-blocking rather than double-booking).
func (r *Reservation) IsOccupying() bool {
	for _, s := range ReleasedStatuses {
		if r.Status == s {
			return false
		}
	}
	return true
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelledByCustomer || r.Status == StatusCancelledByStaff
}

// CanBeCancelled returns true if the reservation can still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// Date returns the calendar day the reservation starts on
func (r *Reservation) Date() time.Time {
	return time.Date(r.SlotStart.Year(), r.SlotStart.Month(), r.SlotStart.Day(), 0, 0, 0, 0, r.SlotStart.Location())
}

// OverlapsSlot проверяет пересечение диапазона бронирования со слотом index
// на указанную дату. Используются строгие неравенства: граничащие интервалы
// пересечением не считаются. Проверка по интервалам, а не по индексам,
// чтобы корректно блокировать записи со сдвинутыми вручную границами.
func (r *Reservation) OverlapsSlot(date time.Time, index int) bool {
	slotStart, slotEnd := SlotWindowTimes(date, index)
	return r.SlotStart.Before(slotEnd) && r.SlotEnd.After(slotStart)
}

// StartSlotIndex returns the first grid slot the reservation overlaps on its
// own date, or -1 if it overlaps none
func (r *Reservation) StartSlotIndex() int {
	date := r.Date()
	for i := 0; i < SlotsPerDay; i++ {
		if r.OverlapsSlot(date, i) {
			return i
		}
	}
	return -1
}

// SlotCount returns the number of grid slots the reservation overlaps on its date
func (r *Reservation) SlotCount() int {
	date := r.Date()
	count := 0
	for i := 0; i < SlotsPerDay; i++ {
		if r.OverlapsSlot(date, i) {
			count++
		}
	}
	return count
}

// ReservationsFilter фильтр для выборки бронирований
type ReservationsFilter struct {
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	CustomerID      *int64             // Фильтр по клиенту (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeReleased bool               // Включать ли отменённые и no-show
}
