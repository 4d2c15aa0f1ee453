package models

import (
	"time"

	"github.com/st-neumann/SNR-BookingService/internal/domain"
)

// UpsertOverrideRequest запрос на создание или замену override'а
type UpsertOverrideRequest struct {
	Date                   time.Time
	OpenSlotCount          *int    // nil - использовать дефолт по дню недели
	VisibleOnUrgentChannel *bool   // nil - видим в срочном канале
	Note                   *string // Свободный текст администратора
}

// ToDomainOverride конвертирует запрос в доменную модель
func (r *UpsertOverrideRequest) ToDomainOverride() *domain.DayOverride {
	return &domain.DayOverride{
		Date:                   r.Date,
		OpenSlotCount:          r.OpenSlotCount,
		VisibleOnUrgentChannel: r.VisibleOnUrgentChannel,
		Note:                   r.Note,
	}
}

// OverrideResponse модель override'а для вызывающего слоя
type OverrideResponse struct {
	ID                     int64
	Date                   time.Time
	OpenSlotCount          *int
	VisibleOnUrgentChannel *bool
	EffectiveOpenSlots     int  // Количество открытых слотов с учетом fallback'а
	UsesDefault            bool // true, если open_slot_count невалиден или отсутствует
	Note                   *string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// OverrideListResponse список override'ов
type OverrideListResponse struct {
	Overrides []*OverrideResponse
	Total     int
}

// FromDomainOverride конвертирует доменный override в response модель
// Поле EffectiveOpenSlots показывает администратору, что фактически применится:
// невалидные значения падают обратно на дефолт по дню недели
func FromDomainOverride(o *domain.DayOverride, defaults domain.DayDefaults) *OverrideResponse {
	effective := defaults.OpenSlotsFor(o.Date)
	usesDefault := true
	if o.HasValidOpenSlotCount() {
		effective = *o.OpenSlotCount
		usesDefault = false
	}

	return &OverrideResponse{
		ID:                     o.ID,
		Date:                   o.Date,
		OpenSlotCount:          o.OpenSlotCount,
		VisibleOnUrgentChannel: o.VisibleOnUrgentChannel,
		EffectiveOpenSlots:     effective,
		UsesDefault:            usesDefault,
		Note:                   o.Note,
		CreatedAt:              o.CreatedAt,
		UpdatedAt:              o.UpdatedAt,
	}
}

// FromDomainOverrideList конвертирует список доменных override'ов
func FromDomainOverrideList(overrides []*domain.DayOverride, defaults domain.DayDefaults) *OverrideListResponse {
	result := make([]*OverrideResponse, len(overrides))
	for i, o := range overrides {
		result[i] = FromDomainOverride(o, defaults)
	}

	return &OverrideListResponse{
		Overrides: result,
		Total:     len(result),
	}
}
