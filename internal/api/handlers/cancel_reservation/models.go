package cancel_reservation

import (
	"time"

	"github.com/st-neumann/SNR-BookingService/internal/domain"
	"github.com/st-neumann/SNR-BookingService/internal/service/reservations/models"
)

// CancelRequest HTTP request body
type CancelRequest struct {
	Reason string `json:"reason"`
}

// CancelResponse HTTP response model
type CancelResponse struct {
	ID                 int64   `json:"id"`
	CustomerID         int64   `json:"customerId"`
	Date               string  `json:"date"`
	StartSlot          int     `json:"startSlot"`
	SlotCount          int     `json:"slotCount"`
	Label              string  `json:"label"`
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ReservationResponse) *CancelResponse {
	var cancelledAt *string
	if resp.CancelledAt != nil {
		formatted := resp.CancelledAt.Format(time.RFC3339)
		cancelledAt = &formatted
	}

	return &CancelResponse{
		ID:                 resp.ID,
		CustomerID:         resp.CustomerID,
		Date:               resp.Date.Format(domain.DateFormat),
		StartSlot:          resp.StartSlot,
		SlotCount:          resp.SlotCount,
		Label:              resp.Label,
		Status:             resp.Status,
		CancellationReason: resp.CancellationReason,
		CancelledAt:        cancelledAt,
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
}
