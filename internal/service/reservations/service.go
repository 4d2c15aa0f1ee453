package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/st-neumann/SNR-BookingService/internal/domain"
	reservationRepo "github.com/st-neumann/SNR-BookingService/internal/infra/storage/reservation"
	"github.com/st-neumann/SNR-BookingService/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Клиент может видеть только собственное бронирование; сотрудник (staff=true) - любое
func (s *Service) GetByID(ctx context.Context, id int64, requestedBy int64, staff bool) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, requestedBy)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !staff && res.CustomerID != requestedBy {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", requestedBy, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(res), nil
}

// GetCustomerReservations получает историю бронирований клиента
// Опционально фильтрует по статусу
func (s *Service) GetCustomerReservations(ctx context.Context, req *models.GetCustomerReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetCustomerReservations: fetching reservations for customer=%d, status=%v", req.CustomerID, req.Status)

	// Конвертируем статус из строки в domain.ReservationStatus
	var domainStatus *domain.ReservationStatus
	if req.Status != nil {
		status, err := models.ToDomainReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerReservations: invalid status=%s for customer=%d", *req.Status, req.CustomerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	reservations, err := s.reservationRepo.GetByCustomerID(ctx, req.CustomerID, domainStatus)
	if err != nil {
		s.logger.Error("GetCustomerReservations: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerReservations: successfully fetched %d reservations for customer=%d",
		len(reservations), req.CustomerID)
	return models.FromDomainReservationList(reservations), nil
}

// ListReservations получает бронирования за период (back-office)
func (s *Service) ListReservations(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	logMsg := "ListReservations: fetching reservations"
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s",
			req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeReleased {
		logMsg += ", includeReleased=true"
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListReservations: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	reservations, err := s.reservationRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListReservations: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListReservations: successfully fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет бронирование
// Смена статуса на освобождающий снимает блокировку слотов при следующем
// вычислении занятости; сама строка остается для истории
func (s *Service) Cancel(ctx context.Context, req *models.CancelReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d (staff=%v)",
		req.ReservationID, req.RequestedBy, req.ByStaff)

	if len(req.Reason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: reason too long for reservation id=%d", req.ReservationID)
		return nil, fmt.Errorf("%w: cancellation reason exceeds %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	res, err := s.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Клиент может отменить только собственное бронирование
	if !req.ByStaff && res.CustomerID != req.RequestedBy {
		s.logger.Warn("Cancel: access denied for user=%d to reservation id=%d", req.RequestedBy, req.ReservationID)
		return nil, ErrAccessDenied
	}

	if !res.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d in status=%s cannot be cancelled", req.ReservationID, res.Status)
		return nil, ErrCannotCancel
	}

	status := domain.StatusCancelledByCustomer
	if req.ByStaff {
		status = domain.StatusCancelledByStaff
	}

	if err := s.reservationRepo.Cancel(ctx, req.ReservationID, status, req.Reason); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Cancel: failed to cancel reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Перечитываем строку, чтобы вернуть актуальные статус и cancelled_at
	cancelled, err := s.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		s.logger.Error("Cancel: failed to re-fetch reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d with status=%s", req.ReservationID, status)
	return models.FromDomainReservation(cancelled), nil
}
