package create_reservation

import (
	"time"

	"github.com/st-neumann/SNR-BookingService/internal/domain"
	admitReservation "github.com/st-neumann/SNR-BookingService/internal/usecase/admit_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	CustomerID int64   `json:"customerId"`
	Date       string  `json:"date"` // "2026-09-15"
	StartSlot  int     `json:"startSlot"`
	SlotCount  int     `json:"slotCount"`
	Note       *string `json:"note,omitempty"`

	// ExcludeReservationID для переноса существующего бронирования
	ExcludeReservationID *int64 `json:"excludeReservationId,omitempty"`
}

// ReservationResponse HTTP response model успешного допуска
type ReservationResponse struct {
	OK         bool    `json:"ok"`
	ID         int64   `json:"id"`
	CustomerID int64   `json:"customerId"`
	Date       string  `json:"date"`
	StartSlot  int     `json:"startSlot"`
	SlotCount  int     `json:"slotCount"`
	SlotStart  string  `json:"slotStart"`
	SlotEnd    string  `json:"slotEnd"`
	Label      string  `json:"label"`
	Status     string  `json:"status"`
	Note       *string `json:"note,omitempty"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// ConflictResponse HTTP response model конфликта допуска
// Несет альтернативные старты, чтобы клиент мог предложить замену
// без повторного запроса доступности
type ConflictResponse struct {
	OK           bool          `json:"ok"`
	ReasonCode   string        `json:"reasonCode"`
	Error        string        `json:"error"`
	Alternatives []StartOption `json:"suggestedAlternatives"`
}

// StartOption валидный альтернативный старт
type StartOption struct {
	StartSlot int    `json:"startSlot"`
	StartTime string `json:"startTime"`
	Label     string `json:"label"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*admitReservation.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &admitReservation.Request{
		CustomerID:           r.CustomerID,
		Date:                 date,
		StartSlot:            r.StartSlot,
		SlotCount:            r.SlotCount,
		Note:                 r.Note,
		ExcludeReservationID: r.ExcludeReservationID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *admitReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		OK:         true,
		ID:         resp.ID,
		CustomerID: resp.CustomerID,
		Date:       resp.Date.Format(domain.DateFormat),
		StartSlot:  resp.StartSlot,
		SlotCount:  resp.SlotCount,
		SlotStart:  resp.SlotStart.Format(time.RFC3339),
		SlotEnd:    resp.SlotEnd.Format(time.RFC3339),
		Label:      resp.Label,
		Status:     resp.Status,
		Note:       resp.Note,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}

// FromConflictError конвертирует конфликт допуска в HTTP response
func FromConflictError(conflictErr *admitReservation.ConflictError, message string) *ConflictResponse {
	alternatives := make([]StartOption, len(conflictErr.Alternatives))
	for i, alt := range conflictErr.Alternatives {
		alternatives[i] = StartOption{
			StartSlot: alt.StartSlot,
			StartTime: alt.StartTime.String(),
			Label:     alt.Label,
		}
	}

	return &ConflictResponse{
		OK:           false,
		ReasonCode:   "slot_conflict",
		Error:        message,
		Alternatives: alternatives,
	}
}
