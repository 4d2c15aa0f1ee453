package create_reservation

import (
	"errors"
	"net/http"

	"github.com/st-neumann/SNR-BookingService/internal/api/handlers"
	admitReservation "github.com/st-neumann/SNR-BookingService/internal/usecase/admit_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные параметры бронирования"
	msgPastDate           = "дата бронирования в прошлом"
	msgSlotConflict       = "выбранный диапазон слотов недоступен"
)

type Handler struct {
	useCase AdmitReservationUseCase
	logger  Logger
}

func NewHandler(useCase AdmitReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Конфликт несет альтернативы - отдельная ветка до switch по sentinel
		var conflictErr *admitReservation.ConflictError
		if errors.As(err, &conflictErr) {
			h.logger.Warn("POST /reservations - Slot conflict: customer_id=%d, date=%s, start=%d, count=%d, alternatives=%d",
				req.CustomerID, req.Date, req.StartSlot, req.SlotCount, len(conflictErr.Alternatives))
			handlers.RespondJSON(w, http.StatusConflict, FromConflictError(conflictErr, msgSlotConflict))
			return
		}

		switch {
		case errors.Is(err, admitReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Validation failed: customer_id=%d, error=%v", req.CustomerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, admitReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Past date: customer_id=%d, date=%s", req.CustomerID, req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		default:
			h.logger.Error("POST /reservations - Failed to admit reservation: customer_id=%d, error=%v",
				req.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation admitted: reservation_id=%d, customer_id=%d, date=%s, range=%s",
		result.ID, req.CustomerID, req.Date, result.Label)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
