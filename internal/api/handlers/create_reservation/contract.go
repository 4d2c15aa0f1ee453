package create_reservation

import (
	"context"

	admitReservation "github.com/st-neumann/SNR-BookingService/internal/usecase/admit_reservation"
)

type AdmitReservationUseCase interface {
	Execute(ctx context.Context, req *admitReservation.Request) (*admitReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
