package get_customer_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/st-neumann/SNR-BookingService/internal/api/handlers"
	"github.com/st-neumann/SNR-BookingService/internal/api/middleware"
	reservationsService "github.com/st-neumann/SNR-BookingService/internal/service/reservations"
	"github.com/st-neumann/SNR-BookingService/internal/service/reservations/models"
)

const (
	msgInvalidCustomerID = "некорректный ID клиента"
	msgInvalidStatus     = "некорректный статус бронирования"
	msgAccessDenied      = "нет доступа к бронированиям клиента"
	msgUnauthorized      = "пользователь не аутентифицирован"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers/{customerId}/reservations?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	customerIDStr := vars["customerId"]
	customerID, err := strconv.ParseInt(customerIDStr, 10, 64)
	if err != nil || customerID <= 0 {
		h.logger.Warn("GET /customers/{id}/reservations - Invalid customer ID: %s", customerIDStr)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /customers/{id}/reservations - Missing user ID in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	// Клиент видит только собственную историю, сотрудник - любую
	if userID != customerID && !middleware.IsStaffRequest(r) {
		h.logger.Warn("GET /customers/{id}/reservations - Access denied: customer_id=%d, user_id=%d",
			customerID, userID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	req := &models.GetCustomerReservationsRequest{
		CustomerID: customerID,
	}
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	result, err := h.service.GetCustomerReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrInvalidInput):
			h.logger.Warn("GET /customers/{id}/reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /customers/{id}/reservations - Failed to get reservations: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /customers/{id}/reservations - Retrieved %d reservations: customer_id=%d",
		result.Total, customerID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(customerID, result))
}
