package list_day_overrides

import (
	"errors"
	"net/http"
	"time"

	"github.com/st-neumann/SNR-BookingService/internal/api/handlers"
	"github.com/st-neumann/SNR-BookingService/internal/api/middleware"
	"github.com/st-neumann/SNR-BookingService/internal/domain"
	overridesService "github.com/st-neumann/SNR-BookingService/internal/service/overrides"
)

const (
	msgMissingRange    = "параметры from и to обязательны"
	msgInvalidFromDate = "некорректная дата начала периода, ожидается формат YYYY-MM-DD"
	msgInvalidToDate   = "некорректная дата конца периода, ожидается формат YYYY-MM-DD"
	msgStaffOnly       = "операция доступна только сотрудникам"
)

type Handler struct {
	service OverridesService
	logger  Logger
}

func NewHandler(service OverridesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/days?from=&to=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsStaffRequest(r) {
		h.logger.Warn("GET /days - Non-staff request rejected")
		handlers.RespondForbidden(w, msgStaffOnly)
		return
	}

	query := r.URL.Query()
	fromStr := query.Get("from")
	toStr := query.Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /days - Missing date range: from=%q, to=%q", fromStr, toStr)
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		h.logger.Warn("GET /days - Invalid from date: %s", fromStr)
		handlers.RespondBadRequest(w, msgInvalidFromDate)
		return
	}

	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		h.logger.Warn("GET /days - Invalid to date: %s", toStr)
		handlers.RespondBadRequest(w, msgInvalidToDate)
		return
	}

	result, err := h.service.GetByDateRange(r.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, overridesService.ErrInvalidInput):
			h.logger.Warn("GET /days - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /days - Failed to list overrides: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /days - Retrieved %d overrides for period %s to %s", result.Total, fromStr, toStr)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
