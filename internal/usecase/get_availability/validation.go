package get_availability

import (
	"fmt"

	"github.com/st-neumann/SNR-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Некорректная дата - жесткое условие, остальные числовые параметры обрезаются
func validateRequest(req *Request) error {
	if req.FromDate.IsZero() {
		return fmt.Errorf("%w: fromDate is required", ErrInvalidInput)
	}
	return nil
}

// clampSlotCount обрезает требуемое количество слотов до допустимого диапазона
func clampSlotCount(count int) int {
	if count < domain.MinSlotCount {
		return domain.MinSlotCount
	}
	if count > domain.MaxSlotCount {
		return domain.MaxSlotCount
	}
	return count
}

// clampDays обрезает длину диапазона до разумной верхней границы,
// чтобы ограничить объем вычислений
func clampDays(days, maxDays int) int {
	if days < 1 {
		return 1
	}
	if days > maxDays {
		return maxDays
	}
	return days
}
