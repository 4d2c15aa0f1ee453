package upsert_day_override

import (
	"time"

	"github.com/st-neumann/SNR-BookingService/internal/domain"
	"github.com/st-neumann/SNR-BookingService/internal/service/overrides/models"
)

// UpsertRequest HTTP request body
type UpsertRequest struct {
	OpenSlotCount          *int    `json:"openSlotCount"`
	VisibleOnUrgentChannel *bool   `json:"visibleOnUrgentChannel"`
	Note                   *string `json:"note"`
}

// OverrideResponse HTTP response model
type OverrideResponse struct {
	ID                     int64   `json:"id"`
	Date                   string  `json:"date"`
	OpenSlotCount          *int    `json:"openSlotCount"`
	VisibleOnUrgentChannel *bool   `json:"visibleOnUrgentChannel"`
	EffectiveOpenSlots     int     `json:"effectiveOpenSlots"`
	UsesDefault            bool    `json:"usesDefault"`
	Note                   *string `json:"note,omitempty"`
	CreatedAt              string  `json:"createdAt"`
	UpdatedAt              string  `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.OverrideResponse) *OverrideResponse {
	return &OverrideResponse{
		ID:                     resp.ID,
		Date:                   resp.Date.Format(domain.DateFormat),
		OpenSlotCount:          resp.OpenSlotCount,
		VisibleOnUrgentChannel: resp.VisibleOnUrgentChannel,
		EffectiveOpenSlots:     resp.EffectiveOpenSlots,
		UsesDefault:            resp.UsesDefault,
		Note:                   resp.Note,
		CreatedAt:              resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:              resp.UpdatedAt.Format(time.RFC3339),
	}
}
