package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func makeReservation(start, end time.Time, status ReservationStatus) *Reservation {
	return &Reservation{
		ID:         1,
		CustomerID: 10,
		SlotStart:  start,
		SlotEnd:    end,
		Status:     status,
	}
}

func TestReservation_IsOccupying(t *testing.T) {
	start := time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 15, 11, 0, 0, 0, time.UTC)

	tests := []struct {
		status ReservationStatus
		want   bool
	}{
		{StatusPending, true},
		{StatusConfirmed, true},
		{StatusInProgress, true},
		{StatusCompleted, true},
		{StatusCancelledByCustomer, false},
		{StatusCancelledByStaff, false},
		{StatusNoShow, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			res := makeReservation(start, end, tt.status)
			assert.Equal(t, tt.want, res.IsOccupying())
		})
	}
}

func TestReservation_IsOccupying_UnknownStatus(t *testing.T) {
	// Неизвестный статус занимает слоты: лучше лишняя блокировка,
	// чем двойное бронирование
	res := makeReservation(
		time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 15, 11, 0, 0, 0, time.UTC),
		ReservationStatus("some_future_status"),
	)
	assert.True(t, res.IsOccupying())
}

func TestReservation_CanBeCancelled(t *testing.T) {
	start := time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 15, 11, 0, 0, 0, time.UTC)

	assert.True(t, makeReservation(start, end, StatusPending).CanBeCancelled())
	assert.True(t, makeReservation(start, end, StatusConfirmed).CanBeCancelled())
	assert.False(t, makeReservation(start, end, StatusInProgress).CanBeCancelled())
	assert.False(t, makeReservation(start, end, StatusCompleted).CanBeCancelled())
	assert.False(t, makeReservation(start, end, StatusCancelledByCustomer).CanBeCancelled())
	assert.False(t, makeReservation(start, end, StatusNoShow).CanBeCancelled())
}

func TestReservation_OverlapsSlot(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	// Бронирование ровно на слот 1 (11:00-13:30)
	res := makeReservation(
		time.Date(2026, 9, 15, 11, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 15, 13, 30, 0, 0, time.UTC),
		StatusConfirmed,
	)
	assert.False(t, res.OverlapsSlot(date, 0))
	assert.True(t, res.OverlapsSlot(date, 1))
	assert.False(t, res.OverlapsSlot(date, 2))
}

func TestReservation_OverlapsSlot_BoundaryTouchIsNotOverlap(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	// Конец бронирования совпадает с началом слота 1: строгие неравенства,
	// граница не считается пересечением
	res := makeReservation(
		time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 15, 11, 0, 0, 0, time.UTC),
		StatusConfirmed,
	)
	assert.True(t, res.OverlapsSlot(date, 0))
	assert.False(t, res.OverlapsSlot(date, 1))
}

func TestReservation_OverlapsSlot_MisalignedBoundaries(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	// Сдвинутые вручную границы 10:00-12:00 пересекают оба слота 0 и 1
	res := makeReservation(
		time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC),
		StatusConfirmed,
	)
	assert.True(t, res.OverlapsSlot(date, 0))
	assert.True(t, res.OverlapsSlot(date, 1))
	assert.False(t, res.OverlapsSlot(date, 2))
}

func TestReservation_StartSlotIndexAndSlotCount(t *testing.T) {
	// Диапазон 08:00-13:30 покрывает слоты 0 и 1
	res := makeReservation(
		time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 15, 13, 30, 0, 0, time.UTC),
		StatusConfirmed,
	)
	assert.Equal(t, 0, res.StartSlotIndex())
	assert.Equal(t, 2, res.SlotCount())

	// Диапазон целиком вне сетки
	outside := makeReservation(
		time.Date(2026, 9, 15, 17, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 15, 18, 0, 0, 0, time.UTC),
		StatusConfirmed,
	)
	assert.Equal(t, -1, outside.StartSlotIndex())
	assert.Equal(t, 0, outside.SlotCount())
}

func TestReservation_Date(t *testing.T) {
	res := makeReservation(
		time.Date(2026, 9, 15, 13, 30, 0, 0, time.UTC),
		time.Date(2026, 9, 15, 16, 0, 0, 0, time.UTC),
		StatusConfirmed,
	)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), res.Date())
}
