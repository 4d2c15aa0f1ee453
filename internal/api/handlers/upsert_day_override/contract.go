package upsert_day_override

import (
	"context"
	"time"

	"github.com/st-neumann/SNR-BookingService/internal/service/overrides/models"
)

type OverridesService interface {
	Upsert(ctx context.Context, req *models.UpsertOverrideRequest) (*models.OverrideResponse, error)
	Delete(ctx context.Context, date time.Time) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
