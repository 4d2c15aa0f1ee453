package get_availability

import (
	"time"

	"github.com/st-neumann/SNR-BookingService/internal/domain"
)

// blockedSlots вычисляет множество слотов, занятых активными бронированиями на дату
//
// Для каждого бронирования, чей диапазон пересекает дату, проверяется
// пересечение интервалов с каждым окном сетки (строгие неравенства:
// resStart < slotEnd И resEnd > slotStart). Проверка по интервалам, а не по
// точному совпадению индексов, сделана намеренно: она корректно блокирует
// записи, чьи границы не выровнены по сетке (например, отредактированные вручную).
//
// Бронирование считается занимающим, если его статус не классифицируется
// как освобождающий; неизвестный статус занимает (перестраховка в сторону
// лишней блокировки, а не двойного бронирования).
func blockedSlots(date time.Time, reservations []*domain.Reservation) map[int]bool {
	blocked := make(map[int]bool)

	for _, res := range reservations {
		if !res.IsOccupying() {
			continue
		}

		for i := 0; i < domain.SlotsPerDay; i++ {
			if res.OverlapsSlot(date, i) {
				blocked[i] = true
			}
		}
	}

	return blocked
}

// computeDayAvailability вычисляет доступность одного дня
//
// Кандидат s валиден, когда все слоты [s, s+slotCount-1] лежат в сетке,
// все открыты по вместимости и ни один не занят. Старты перечисляются
// в порядке возрастания индекса; иного ранжирования нет - "ближайший"
// выбирает слой представления.
func computeDayAvailability(
	date time.Time,
	open map[int]bool,
	blocked map[int]bool,
	slotCount int,
) domain.DayAvailability {
	validStarts := make([]domain.StartOption, 0, domain.SlotsPerDay)

	for s := 0; s < domain.SlotsPerDay; s++ {
		indices, ok := domain.SlotIndices(s, slotCount)
		if !ok {
			continue
		}

		valid := true
		for _, idx := range indices {
			if !open[idx] || blocked[idx] {
				valid = false
				break
			}
		}

		if valid {
			validStarts = append(validStarts, domain.StartOption{
				StartSlot: s,
				StartTime: domain.Slots[s].StartTime,
				Label:     domain.RangeLabel(s, slotCount),
			})
		}
	}

	blockedWithinOpen := 0
	for idx := range open {
		if blocked[idx] {
			blockedWithinOpen++
		}
	}

	return domain.DayAvailability{
		Date:               date,
		ValidStarts:        validStarts,
		OpenSlotCount:      len(open),
		BlockedSlotCount:   blockedWithinOpen,
		RemainingSlotCount: len(open) - blockedWithinOpen,
	}
}
