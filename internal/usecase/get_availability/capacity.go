package get_availability

import (
	"time"

	"github.com/st-neumann/SNR-BookingService/internal/domain"
)

// resolveOpenSlots вычисляет множество открытых слотов на дату
//
// Если для даты есть override с валидным open_slot_count (0..3), он заменяет
// дефолт и рендерится как префикс сетки {0 .. count-1}. Невалидные значения
// (вне диапазона) трактуются как отсутствующие: система предпочитает
// доступность жесткому отказу, данные вместимости носят рекомендательный характер.
//
// Для срочного канала день с явным visible_on_urgent_channel=false
// возвращает пустое множество: день может быть открыт по вместимости,
// но скрыт от срочной записи.
func resolveOpenSlots(
	date time.Time,
	override *domain.DayOverride,
	defaults domain.DayDefaults,
	urgentChannel bool,
) map[int]bool {
	if urgentChannel && override != nil && override.HiddenFromUrgentChannel() {
		return map[int]bool{}
	}

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
