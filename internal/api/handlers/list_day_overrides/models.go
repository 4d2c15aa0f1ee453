package list_day_overrides

import (
	"github.com/st-neumann/SNR-BookingService/internal/domain"
	"github.com/st-neumann/SNR-BookingService/internal/service/overrides/models"
)

// OverrideItem элемент списка настроек дней
type OverrideItem struct {
	ID                     int64   `json:"id"`
	Date                   string  `json:"date"`
	OpenSlotCount          *int    `json:"openSlotCount"`
	VisibleOnUrgentChannel *bool   `json:"visibleOnUrgentChannel"`
	EffectiveOpenSlots     int     `json:"effectiveOpenSlots"`
	UsesDefault            bool    `json:"usesDefault"`
	Note                   *string `json:"note,omitempty"`
}

// ListResponse HTTP response со списком настроек дней
type ListResponse struct {
	Overrides []*OverrideItem `json:"overrides"`
	Total     int             `json:"total"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.OverrideListResponse) *ListResponse {
	items := make([]*OverrideItem, len(resp.Overrides))
	for i, o := range resp.Overrides {
		items[i] = &OverrideItem{
			ID:                     o.ID,
			Date:                   o.Date.Format(domain.DateFormat),
			OpenSlotCount:          o.OpenSlotCount,
			VisibleOnUrgentChannel: o.VisibleOnUrgentChannel,
			EffectiveOpenSlots:     o.EffectiveOpenSlots,
			UsesDefault:            o.UsesDefault,
			Note:                   o.Note,
		}
	}

	return &ListResponse{
		Overrides: items,
		Total:     resp.Total,
	}
}
