package overrides

import (
	"context"
	"time"

	"github.com/st-neumann/SNR-BookingService/internal/domain"
)

// OverrideRepository интерфейс репозитория override'ов вместимости
type OverrideRepository interface {
	Upsert(ctx context.Context, override *domain.DayOverride) (*domain.DayOverride, error)
	GetByDate(ctx context.Context, date time.Time) (*domain.DayOverride, error)
	GetByDateRange(ctx context.Context, from, to time.Time) ([]*domain.DayOverride, error)
	Delete(ctx context.Context, date time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
