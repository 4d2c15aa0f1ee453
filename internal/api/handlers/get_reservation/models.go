package get_reservation

import (
	"time"

	"github.com/st-neumann/SNR-BookingService/internal/domain"
	"github.com/st-neumann/SNR-BookingService/internal/service/reservations/models"
)

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID                 int64   `json:"id"`
	CustomerID         int64   `json:"customerId"`
	Date               string  `json:"date"`
	StartSlot          int     `json:"startSlot"`
	SlotCount          int     `json:"slotCount"`
	SlotStart          string  `json:"slotStart"`
	SlotEnd            string  `json:"slotEnd"`
	Label              string  `json:"label"`
	Status             string  `json:"status"`
	Note               *string `json:"note,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ReservationResponse) *ReservationResponse {
	var cancelledAt *string
	if resp.CancelledAt != nil {
		formatted := resp.CancelledAt.Format(time.RFC3339)
		cancelledAt = &formatted
	}

	return &ReservationResponse{
		ID:                 resp.ID,
		CustomerID:         resp.CustomerID,
		Date:               resp.Date.Format(domain.DateFormat),
		StartSlot:          resp.StartSlot,
		SlotCount:          resp.SlotCount,
		SlotStart:          resp.SlotStart.Format(time.RFC3339),
		SlotEnd:            resp.SlotEnd.Format(time.RFC3339),
		Label:              resp.Label,
		Status:             resp.Status,
		Note:               resp.Note,
		CancellationReason: resp.CancellationReason,
		CancelledAt:        cancelledAt,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
}
