package overrides

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/st-neumann/SNR-BookingService/internal/domain"
	overrideRepo "github.com/st-neumann/SNR-BookingService/internal/infra/storage/dayoverride"
	"github.com/st-neumann/SNR-BookingService/internal/service/overrides/models"
)

// Service сервис для управления override'ами вместимости дня (back-office)
type Service struct {
	overrideRepo OverrideRepository
	defaults     domain.DayDefaults
	logger       Logger
}

// NewService создает новый экземпляр сервиса override'ов
func NewService(overrideRepo OverrideRepository, defaults domain.DayDefaults, logger Logger) *Service {
	return &Service{
		overrideRepo: overrideRepo,
		defaults:     defaults,
		logger:       logger,
	}
}

// Upsert идемпотентно создает или заменяет override для даты
//
// Значения open_slot_count вне диапазона 0..3 сохраняются как есть и не
// отклоняются: вычисление вместимости прозрачно падает на дефолт. Это
// сознательный выбор доступности вместо жесткой валидации - админские
// данные рекомендательные, поле UsesDefault в ответе показывает результат
func (s *Service) Upsert(ctx context.Context, req *models.UpsertOverrideRequest) (*models.OverrideResponse, error) {
	s.logger.Info("UpsertOverride: date=%s, openSlotCount=%v, visibleOnUrgentChannel=%v",
		req.Date.Format(domain.DateFormat), req.OpenSlotCount, req.VisibleOnUrgentChannel)

	if req.Date.IsZero() {
		s.logger.Warn("UpsertOverride: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		s.logger.Warn("UpsertOverride: note too long for date=%s", req.Date.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: note exceeds %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	override, err := s.overrideRepo.Upsert(ctx, req.ToDomainOverride())
	if err != nil {
		s.logger.Error("UpsertOverride: repository error for date=%s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertOverride: successfully upserted override id=%d for date=%s",
		override.ID, req.Date.Format(domain.DateFormat))
	return models.FromDomainOverride(override, s.defaults), nil
}

// GetByDateRange получает override'ы в диапазоне дат
func (s *Service) GetByDateRange(ctx context.Context, from, to time.Time) (*models.OverrideListResponse, error) {
	s.logger.Info("GetOverrides: from=%s, to=%s", from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	if from.IsZero() || to.IsZero() {
		return nil, fmt.Errorf("%w: from and to dates are required", ErrInvalidInput)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: to date is before from date", ErrInvalidInput)
	}

	overrides, err := s.overrideRepo.GetByDateRange(ctx, from, to)
	if err != nil {
		s.logger.Error("GetOverrides: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByDateRange - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetOverrides: successfully fetched %d overrides", len(overrides))
	return models.FromDomainOverrideList(overrides, s.defaults), nil
}

// Delete удаляет override, возвращая день к дефолтной вместимости
func (s *Service) Delete(ctx context.Context, date time.Time) error {
	s.logger.Info("DeleteOverride: date=%s", date.Format(domain.DateFormat))

	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := s.overrideRepo.Delete(ctx, date); err != nil {
		if errors.Is(err, overrideRepo.ErrOverrideNotFound) {
			s.logger.Warn("DeleteOverride: override for date=%s not found", date.Format(domain.DateFormat))
			return ErrOverrideNotFound
		}
		s.logger.Error("DeleteOverride: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteOverride: successfully deleted override for date=%s", date.Format(domain.DateFormat))
	return nil
}
