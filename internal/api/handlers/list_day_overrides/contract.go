package list_day_overrides

import (
	"context"
	"time"

	"github.com/st-neumann/SNR-BookingService/internal/service/overrides/models"
)

type OverridesService interface {
	GetByDateRange(ctx context.Context, from, to time.Time) (*models.OverrideListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
