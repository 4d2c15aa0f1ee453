package admit_reservation

import (
	"time"

	"github.com/st-neumann/SNR-BookingService/internal/domain"
)

// resolveOpenSlots вычисляет множество открытых слотов на дату
// Override с валидным open_slot_count заменяет дефолт; невалидные значения
// трактуются как отсутствующие (fall back к дефолту по дню недели)
func resolveOpenSlots(date time.Time, override *domain.DayOverride, defaults domain.DayDefaults) map[int]bool {
	count := defaults.OpenSlotsFor(date)
	if override != nil && override.HasValidOpenSlotCount() {
		count = *override.OpenSlotCount
	}

	open := make(map[int]bool, count)
	for i := 0; i < count && i < domain.SlotsPerDay; i++ {
		open[i] = true
	}
	return open
}

// blockedSlots вычисляет множество занятых слотов на дату
// excludeID исключает одно бронирование из расчета (сценарий переноса:
// переносимое бронирование не должно блокировать собственный новый диапазон)
func blockedSlots(date time.Time, reservations []*domain.Reservation, excludeID *int64) map[int]bool {
	blocked := make(map[int]bool)

	for _, res := range reservations {
		if excludeID != nil && res.ID == *excludeID {
			continue
		}
		if !res.IsOccupying() {
			continue
		}

		// Пересечение интервалов со строгими неравенствами:
		// граничащие диапазоны пересечением не считаются
		for i := 0; i < domain.SlotsPerDay; i++ {
			if res.OverlapsSlot(date, i) {
				blocked[i] = true
			}
		}
	}

	return blocked
}

// rangeIsFree проверяет, что все слоты диапазона открыты и не заняты
func rangeIsFree(start, count int, open, blocked map[int]bool) bool {
	indices, ok := domain.SlotIndices(start, count)
	if !ok {
		return false
	}

	for _, idx := range indices {
		if !open[idx] || blocked[idx] {
			return false
		}
	}
	return true
}

// validStartsFor перечисляет валидные стартовые слоты для диапазона длины count
// в порядке возрастания индекса
func validStartsFor(count int, open, blocked map[int]bool) []domain.StartOption {
	starts := make([]domain.StartOption, 0, domain.SlotsPerDay)

	for s := 0; s < domain.SlotsPerDay; s++ {
		if rangeIsFree(s, count, open, blocked) {
			starts = append(starts, domain.StartOption{
				StartSlot: s,
				StartTime: domain.Slots[s].StartTime,
				Label:     domain.RangeLabel(s, count),
			})
		}
	}

	return starts
}
