package get_availability

import (
	"context"
	"time"

	"github.com/st-neumann/SNR-BookingService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetWithFilter получает бронирования по фильтру (период, статусы)
	GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// OverrideRepository интерфейс репозитория override'ов вместимости
type OverrideRepository interface {
	// GetByDateRange получает override'ы в диапазоне дат включительно
	GetByDateRange(ctx context.Context, from, to time.Time) ([]*domain.DayOverride, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
