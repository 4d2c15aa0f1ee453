package upsert_day_override

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/st-neumann/SNR-BookingService/internal/api/handlers"
	"github.com/st-neumann/SNR-BookingService/internal/api/middleware"
	"github.com/st-neumann/SNR-BookingService/internal/domain"
	overridesService "github.com/st-neumann/SNR-BookingService/internal/service/overrides"
	"github.com/st-neumann/SNR-BookingService/internal/service/overrides/models"
)

const (
	msgInvalidDate        = "некорректная дата, ожидается формат YYYY-MM-DD"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgOverrideNotFound   = "настройка дня не найдена"
	msgStaffOnly          = "операция доступна только сотрудникам"
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

// Handle PUT /api/v1/days/{date}
// Идемпотентно создает или заменяет настройку дня
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsStaffRequest(r) {
		h.logger.Warn("PUT /days/{date} - Non-staff request rejected")
		handlers.RespondForbidden(w, msgStaffOnly)
		return
	}

	date, ok := parseDateVar(r)
	if !ok {
		h.logger.Warn("PUT /days/{date} - Invalid date: %s", mux.Vars(r)["date"])
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req UpsertRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /days/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Upsert(r.Context(), &models.UpsertOverrideRequest{
		Date:                   date,
		OpenSlotCount:          req.OpenSlotCount,
		VisibleOnUrgentChannel: req.VisibleOnUrgentChannel,
		Note:                   req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, overridesService.ErrInvalidInput):
			h.logger.Warn("PUT /days/{date} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /days/{date} - Failed to upsert override: date=%s, error=%v",
				date.Format(domain.DateFormat), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /days/{date} - Override upserted: date=%s, effective_slots=%d",
		date.Format(domain.DateFormat), result.EffectiveOpenSlots)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

// HandleDelete DELETE /api/v1/days/{date}
// Возвращает день к дефолтной вместимости
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsStaffRequest(r) {
		h.logger.Warn("DELETE /days/{date} - Non-staff request rejected")
		handlers.RespondForbidden(w, msgStaffOnly)
		return
	}

	date, ok := parseDateVar(r)
	if !ok {
		h.logger.Warn("DELETE /days/{date} - Invalid date: %s", mux.Vars(r)["date"])
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.Delete(r.Context(), date); err != nil {
		switch {
		case errors.Is(err, overridesService.ErrOverrideNotFound):
			h.logger.Warn("DELETE /days/{date} - Not found: date=%s", date.Format(domain.DateFormat))
			handlers.RespondNotFound(w, msgOverrideNotFound)

		case errors.Is(err, overridesService.ErrInvalidInput):
			h.logger.Warn("DELETE /days/{date} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("DELETE /days/{date} - Failed to delete override: date=%s, error=%v",
				date.Format(domain.DateFormat), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /days/{date} - Override deleted: date=%s", date.Format(domain.DateFormat))
	w.WriteHeader(http.StatusNoContent)
}

func parseDateVar(r *http.Request) (time.Time, bool) {
	date, err := time.Parse(domain.DateFormat, mux.Vars(r)["date"])
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}
