package cancel_reservation

import (
	"context"

	"github.com/st-neumann/SNR-BookingService/internal/service/reservations/models"
)

type ReservationsService interface {
	Cancel(ctx context.Context, req *models.CancelReservationRequest) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
