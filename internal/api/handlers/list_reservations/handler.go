package list_reservations

import (
	"errors"
	"net/http"
	"time"

	"github.com/st-neumann/SNR-BookingService/internal/api/handlers"
	"github.com/st-neumann/SNR-BookingService/internal/api/middleware"
	"github.com/st-neumann/SNR-BookingService/internal/domain"
	reservationsService "github.com/st-neumann/SNR-BookingService/internal/service/reservations"
	"github.com/st-neumann/SNR-BookingService/internal/service/reservations/models"
)

const (
	msgInvalidFromDate = "некорректная дата начала периода, ожидается формат YYYY-MM-DD"
	msgInvalidToDate   = "некорректная дата конца периода, ожидается формат YYYY-MM-DD"
	msgInvalidRange    = "дата начала периода позже даты конца"
	msgStaffOnly       = "операция доступна только сотрудникам"
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

// Handle GET /api/v1/reservations?from=&to=&status=&includeReleased=
// Back-office выборка: доступна только сотрудникам
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsStaffRequest(r) {
		h.logger.Warn("GET /reservations - Non-staff request rejected")
		handlers.RespondForbidden(w, msgStaffOnly)
		return
	}

	query := r.URL.Query()
	req := &models.ListReservationsRequest{
		IncludeReleased: query.Get("includeReleased") == "true",
	}

	if fromStr := query.Get("from"); fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			h.logger.Warn("GET /reservations - Invalid from date: %s", fromStr)
			handlers.RespondBadRequest(w, msgInvalidFromDate)
			return
		}
		req.StartDate = &from
	}

	if toStr := query.Get("to"); toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			h.logger.Warn("GET /reservations - Invalid to date: %s", toStr)
			handlers.RespondBadRequest(w, msgInvalidToDate)
			return
		}
		req.EndDate = &to
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		h.logger.Warn("GET /reservations - Inverted date range: from=%s, to=%s",
			req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	result, err := h.service.ListReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrInvalidInput):
			h.logger.Warn("GET /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /reservations - Failed to list reservations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - Retrieved %d reservations", result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
