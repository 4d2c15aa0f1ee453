package get_customer_reservations

import (
	"time"

	"github.com/st-neumann/SNR-BookingService/internal/domain"
	"github.com/st-neumann/SNR-BookingService/internal/service/reservations/models"
)

// ReservationItem элемент списка бронирований клиента
type ReservationItem struct {
	ID          int64   `json:"id"`
	Date        string  `json:"date"`
	StartSlot   int     `json:"startSlot"`
	SlotCount   int     `json:"slotCount"`
	Label       string  `json:"label"`
	Status      string  `json:"status"`
	Note        *string `json:"note,omitempty"`
	CancelledAt *string `json:"cancelledAt,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// ListResponse HTTP response со списком бронирований клиента
type ListResponse struct {
	CustomerID   int64              `json:"customerId"`
	Reservations []*ReservationItem `json:"reservations"`
	Total        int                `json:"total"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(customerID int64, resp *models.ReservationListResponse) *ListResponse {
	items := make([]*ReservationItem, len(resp.Reservations))
	for i, res := range resp.Reservations {
		var cancelledAt *string
		if res.CancelledAt != nil {
			formatted := res.CancelledAt.Format(time.RFC3339)
			cancelledAt = &formatted
		}

		items[i] = &ReservationItem{
			ID:          res.ID,
			Date:        res.Date.Format(domain.DateFormat),
			StartSlot:   res.StartSlot,
			SlotCount:   res.SlotCount,
			Label:       res.Label,
			Status:      res.Status,
			Note:        res.Note,
			CancelledAt: cancelledAt,
			CreatedAt:   res.CreatedAt.Format(time.RFC3339),
		}
	}

	return &ListResponse{
		CustomerID:   customerID,
		Reservations: items,
		Total:        resp.Total,
	}
}
