package list_reservations

import (
	"time"

	"github.com/st-neumann/SNR-BookingService/internal/domain"
	"github.com/st-neumann/SNR-BookingService/internal/service/reservations/models"
)

// ReservationItem элемент списка бронирований
type ReservationItem struct {
	ID                 int64   `json:"id"`
	CustomerID         int64   `json:"customerId"`
	Date               string  `json:"date"`
	StartSlot          int     `json:"startSlot"`
	SlotCount          int     `json:"slotCount"`
	Label              string  `json:"label"`
	Status             string  `json:"status"`
	Note               *string `json:"note,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CreatedAt          string  `json:"createdAt"`
}

// ListResponse HTTP response со списком бронирований за период
type ListResponse struct {
	Reservations []*ReservationItem `json:"reservations"`
	Total        int                `json:"total"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ReservationListResponse) *ListResponse {
	items := make([]*ReservationItem, len(resp.Reservations))
	for i, res := range resp.Reservations {
		items[i] = &ReservationItem{
			ID:                 res.ID,
			CustomerID:         res.CustomerID,
			Date:               res.Date.Format(domain.DateFormat),
			StartSlot:          res.StartSlot,
			SlotCount:          res.SlotCount,
			Label:              res.Label,
			Status:             res.Status,
			Note:               res.Note,
			CancellationReason: res.CancellationReason,
			CreatedAt:          res.CreatedAt.Format(time.RFC3339),
		}
	}

	return &ListResponse{
		Reservations: items,
		Total:        resp.Total,
	}
}
