package models

import (
	"fmt"
	"time"

	"github.com/st-neumann/SNR-BookingService/internal/domain"
)

// ReservationResponse модель бронирования для вызывающего слоя
type ReservationResponse struct {
	ID         int64
	CustomerID int64
	Date       time.Time
	StartSlot  int    // Индекс стартового слота, -1 если границы вне сетки
	SlotCount  int    // Количество занимаемых слотов
	SlotStart  time.Time
	SlotEnd    time.Time
	Label      string // Человекочитаемая метка диапазона
	Status     string
	Note       *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []*ReservationResponse
	Total        int
}

// GetCustomerReservationsRequest запрос истории бронирований клиента
type GetCustomerReservationsRequest struct {
	CustomerID int64
	Status     *string // Фильтр по статусу (опционально)
}

// ListReservationsRequest запрос списка бронирований за период (back-office)
type ListReservationsRequest struct {
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	IncludeReleased bool
}

// ToDomainFilter конвертирует запрос в доменный фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationsFilter, error) {
	filter := domain.ReservationsFilter{
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeReleased: r.IncludeReleased,
	}

	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return domain.ReservationsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// CancelReservationRequest запрос на отмену бронирования
type CancelReservationRequest struct {
	ReservationID int64
	RequestedBy   int64  // ID пользователя, запросившего отмену
	Reason        string // Причина отмены
	ByStaff       bool   // Отмена сотрудником, а не клиентом
}

// FromDomainReservation конвертирует доменное бронирование в response модель
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	startSlot := res.StartSlotIndex()
	slotCount := res.SlotCount()

	label := ""
	if startSlot >= 0 {
		label = domain.RangeLabel(startSlot, slotCount)
	}

	return &ReservationResponse{
		ID:                 res.ID,
		CustomerID:         res.CustomerID,
		Date:               res.Date(),
		StartSlot:          startSlot,
		SlotCount:          slotCount,
		SlotStart:          res.SlotStart,
		SlotEnd:            res.SlotEnd,
		Label:              label,
		Status:             string(res.Status),
		Note:               res.Note,
		CancellationReason: res.CancellationReason,
		CancelledAt:        res.CancelledAt,
		CreatedAt:          res.CreatedAt,
		UpdatedAt:          res.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список доменных бронирований
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	result := make([]*ReservationResponse, len(reservations))
	for i, res := range reservations {
		result[i] = FromDomainReservation(res)
	}

	return &ReservationListResponse{
		Reservations: result,
		Total:        len(result),
	}
}

// ToDomainReservationStatus конвертирует строку в доменный статус
// Неизвестная строка - ошибка: снаружи принимается только закрытый набор
func ToDomainReservationStatus(s string) (domain.ReservationStatus, error) {
	status := domain.ReservationStatus(s)
	switch status {
	case domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusInProgress,
		domain.StatusCompleted,
		domain.StatusCancelledByCustomer,
		domain.StatusCancelledByStaff,
		domain.StatusNoShow:
		return status, nil
	default:
		return "", fmt.Errorf("unknown reservation status: %q", s)
	}
}
