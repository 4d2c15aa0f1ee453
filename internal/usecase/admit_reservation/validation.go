package admit_reservation

import (
	"fmt"
	"time"

	"github.com/st-neumann/SNR-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// В отличие от вычисления доступности здесь ничего не обрезается:
// выход за диапазон сетки - ошибка вызывающей стороны
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartSlot < 0 || req.StartSlot >= domain.SlotsPerDay {
		return fmt.Errorf("%w: startSlot must be within 0..%d", ErrInvalidInput, domain.SlotsPerDay-1)
	}

	if req.SlotCount < domain.MinSlotCount || req.SlotCount > domain.MaxSlotCount {
		return fmt.Errorf("%w: slotCount must be within %d..%d", ErrInvalidInput, domain.MinSlotCount, domain.MaxSlotCount)
	}

	// Диапазон [startSlot, startSlot+slotCount-1] должен целиком лежать в сетке
	if !domain.ValidSlotRange(req.StartSlot, req.SlotCount) {
		return fmt.Errorf("%w: slot range [%d, %d] exceeds the daily grid", ErrInvalidInput,
			req.StartSlot, req.StartSlot+req.SlotCount-1)
	}

	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note exceeds %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(date, now time.Time) error {
	dateOnly := dayFloor(date)
	nowOnly := dayFloor(now)
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}

// dayFloor обнуляет время, оставляя только дату
func dayFloor(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
