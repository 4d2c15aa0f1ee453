package admit_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/st-neumann/SNR-BookingService/internal/domain"
	overrideRepo "github.com/st-neumann/SNR-BookingService/internal/infra/storage/dayoverride"
	reservationRepo "github.com/st-neumann/SNR-BookingService/internal/infra/storage/reservation"
)

// UseCase use case допуска бронирования
//
// Допуск двухслойный: оптимистичная перепроверка вместимости и занятости
// внутри сериализуемой транзакции плюс exclusion constraint БД как жесткий
// рубеж. Одной перепроверки недостаточно при конкурентных попытках на один
// слот, поэтому отказ constraint'а обрабатывается как равноправный конфликт,
// а не как ошибка
type UseCase struct {
	reservationRepo ReservationRepository
	overrideRepo    OverrideRepository
	defaults        domain.DayDefaults
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	overrideRepo OverrideRepository,
	defaults domain.DayDefaults,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		overrideRepo:    overrideRepo,
		defaults:        defaults,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case допуска бронирования
// Рекомендательный снимок доступности, который видел клиент, здесь не
// используется: проверка всегда выполняется заново по текущему состоянию
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AdmitReservation: customer=%d, date=%s, start=%d, count=%d",
		req.CustomerID, req.Date.Format(domain.DateFormat), req.StartSlot, req.SlotCount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AdmitReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что дата не в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("AdmitReservation: date validation failed: %v", err)
		return nil, err
	}

	date := dayFloor(req.Date)

	// Переменная для хранения результата
	var result *domain.Reservation

	// 3. Выполняем проверку и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем override вместимости на дату (отсутствие - не ошибка)
		override, err := uc.overrideRepo.GetByDate(txCtx, date)
		if err != nil && !errors.Is(err, overrideRepo.ErrOverrideNotFound) {
			uc.logger.Error("AdmitReservation: failed to get override: %v", err)
			return fmt.Errorf("%w: failed to get override: %v", ErrInternal, err)
		}

		// 3.2. Получаем все занимающие бронирования на дату с блокировкой (FOR UPDATE)
		filter := domain.ReservationsFilter{
			StartDate:       &date,
			EndDate:         &date,
			IncludeReleased: false,
		}

		reservations, err := uc.reservationRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("AdmitReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 3.3. Пересчитываем вместимость и занятость по свежим данным
		open := resolveOpenSlots(date, override, uc.defaults)
		blocked := blockedSlots(date, reservations, req.ExcludeReservationID)

		// 3.4. Проверяем, что запрошенный диапазон целиком открыт и свободен
		if !rangeIsFree(req.StartSlot, req.SlotCount, open, blocked) {
			uc.logger.Warn("AdmitReservation: range [%d, %d] not available on %s",
				req.StartSlot, req.StartSlot+req.SlotCount-1, date.Format(domain.DateFormat))
			return &ConflictError{Alternatives: validStartsFor(req.SlotCount, open, blocked)}
		}

		// 3.5. Материализуем диапазон слотов в timestamp'ы и сохраняем
		slotStart, slotEnd, _ := domain.RangeTimes(date, req.StartSlot, req.SlotCount)

		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			CustomerID: req.CustomerID,
			SlotStart:  slotStart,
			SlotEnd:    slotEnd,
			Status:     domain.StatusConfirmed,
			Note:       req.Note,
		})
		if err != nil {
			// Отказ exclusion constraint'а: гонку выиграл конкурентный запрос
			// между нашей проверкой и записью. Тот же исход, что и конфликт
			// предварительной проверки - с теми же альтернативами
			if errors.Is(err, reservationRepo.ErrTimeRangeConflict) {
				uc.logger.Warn("AdmitReservation: store-level conflict on %s [%d, %d]",
					date.Format(domain.DateFormat), req.StartSlot, req.StartSlot+req.SlotCount-1)
				// Победивший диапазон пересекает запрошенный; помечаем его занятым,
				// чтобы не предложить его же в качестве альтернативы
				for i := req.StartSlot; i < req.StartSlot+req.SlotCount; i++ {
					blocked[i] = true
				}
				return &ConflictError{Alternatives: validStartsFor(req.SlotCount, open, blocked)}
			}

			uc.logger.Error("AdmitReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("AdmitReservation: successfully admitted reservation id=%d", result.ID)

	return &Response{
		ID:         result.ID,
		CustomerID: result.CustomerID,
		Date:       date,
		StartSlot:  req.StartSlot,
		SlotCount:  req.SlotCount,
		SlotStart:  result.SlotStart,
		SlotEnd:    result.SlotEnd,
		Label:      domain.RangeLabel(req.StartSlot, req.SlotCount),
		Status:     string(result.Status),
		Note:       result.Note,
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}
