package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/st-neumann/SNR-BookingService/internal/domain"
)

// UseCase use case для вычисления доступности слотов по диапазону дат
type UseCase struct {
	reservationRepo ReservationRepository
	overrideRepo    OverrideRepository
	policy          Policy
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	overrideRepo OverrideRepository,
	policy Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		overrideRepo:    overrideRepo,
		policy:          policy,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case вычисления доступности
// Результат рекомендательный: между этим чтением и попыткой записи нет
// никаких гарантий порядка, admit_reservation обязан перепроверить заново
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: from=%s, days=%d, slotCount=%d, urgent=%v",
		req.FromDate.Format(domain.DateFormat), req.Days, req.SlotCount, req.UrgentChannel)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Обрезаем числовые параметры до допустимых границ
	slotCount := clampSlotCount(req.SlotCount)
	days := clampDays(req.Days, uc.policy.MaxRangeDays)

	fromDate := dayFloor(req.FromDate)

	// 3. Для срочного канала диапазон ограничен скользящим окном от сегодня
	if req.UrgentChannel {
		days = uc.clampToUrgentWindow(fromDate, days)
		if days == 0 {
			uc.logger.Info("GetAvailability: urgent window excludes the whole range from=%s",
				fromDate.Format(domain.DateFormat))
			return &Response{
				FromDate:      fromDate,
				SlotCount:     slotCount,
				UrgentChannel: true,
				Days:          []domain.DayAvailability{},
			}, nil
		}
	}

	toDate := fromDate.AddDate(0, 0, days-1)

	// 4. Получаем override'ы вместимости на весь диапазон одним запросом
	overrides, err := uc.overrideRepo.GetByDateRange(ctx, fromDate, toDate)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get overrides: %v", err)
		return nil, fmt.Errorf("%w: failed to get overrides: %v", ErrInternal, err)
	}

	overridesByDate := make(map[string]*domain.DayOverride, len(overrides))
	for _, o := range overrides {
		overridesByDate[o.Date.Format(domain.DateFormat)] = o
	}

	// 5. Получаем активные бронирования на весь диапазон
	filter := domain.ReservationsFilter{
		StartDate:       &fromDate,
		EndDate:         &toDate,
		IncludeReleased: false, // Только занимающие бронирования
	}

	reservations, err := uc.reservationRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 6. Вычисляем доступность по каждому дню диапазона
	result := make([]domain.DayAvailability, 0, days)
	for i := 0; i < days; i++ {
		date := fromDate.AddDate(0, 0, i)

		override := overridesByDate[date.Format(domain.DateFormat)]
		open := resolveOpenSlots(date, override, uc.policy.DayDefaults, req.UrgentChannel)
		blocked := blockedSlots(date, reservationsOnDate(reservations, date))

		result = append(result, computeDayAvailability(date, open, blocked, slotCount))
	}

	uc.logger.Info("GetAvailability: computed %d days from=%s, slotCount=%d",
		len(result), fromDate.Format(domain.DateFormat), slotCount)

	return &Response{
		FromDate:      fromDate,
		SlotCount:     slotCount,
		UrgentChannel: req.UrgentChannel,
		Days:          result,
	}, nil
}

// clampToUrgentWindow обрезает количество дней так, чтобы диапазон не выходил
// за скользящее окно срочного канала [сегодня, сегодня+UrgentWindowDays)
// Возвращает 0, если диапазон целиком вне окна
func (uc *UseCase) clampToUrgentWindow(fromDate time.Time, days int) int {
	today := dayFloor(uc.timeProvider.Now())
	windowEnd := today.AddDate(0, 0, uc.policy.UrgentWindowDays)

	if !fromDate.Before(windowEnd) {
		return 0
	}

	maxDays := int(windowEnd.Sub(fromDate).Hours() / 24)
	if days > maxDays {
		return maxDays
	}
	return days
}

// reservationsOnDate отбирает бронирования, чей диапазон пересекает дату
func reservationsOnDate(reservations []*domain.Reservation, date time.Time) []*domain.Reservation {
	dayStart := dayFloor(date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	result := make([]*domain.Reservation, 0, len(reservations))
	for _, res := range reservations {
		if res.SlotStart.Before(dayEnd) && res.SlotEnd.After(dayStart) {
			result = append(result, res)
		}
	}
	return result
}

// dayFloor обнуляет время, оставляя только дату
func dayFloor(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
