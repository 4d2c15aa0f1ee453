package get_reservation

import (
	"context"

	"github.com/st-neumann/SNR-BookingService/internal/service/reservations/models"
)

type ReservationsService interface {
	GetByID(ctx context.Context, id int64, requestedBy int64, staff bool) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
