package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/st-neumann/SNR-BookingService/internal/api/handlers"
	getAvailability "github.com/st-neumann/SNR-BookingService/internal/usecase/get_availability"
)

const (
	msgMissingFromDate = "параметр from обязателен"
	msgInvalidFromDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDays     = "некорректное значение параметра days"
	msgInvalidCount    = "некорректное значение параметра slotCount"
)

const (
	defaultDays      = 7
	defaultSlotCount = 1
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: from (required, YYYY-MM-DD), days, slotCount, urgent
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	fromDateStr := query.Get("from")
	if fromDateStr == "" {
		h.logger.Warn("GET /availability - Missing from date")
		handlers.RespondBadRequest(w, msgMissingFromDate)
		return
	}

	days := defaultDays
	if daysStr := query.Get("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid days: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		days = parsed
	}

	slotCount := defaultSlotCount
	if countStr := query.Get("slotCount"); countStr != "" {
		parsed, err := strconv.Atoi(countStr)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid slotCount: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCount)
			return
		}
		slotCount = parsed
	}

	urgent := query.Get("urgent") == "1" || query.Get("urgent") == "true"

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(fromDateStr, days, slotCount, urgent)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFromDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFromDate)

		default:
			h.logger.Error("GET /availability - Failed to compute availability: from=%s, error=%v",
				fromDateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /availability - Availability computed: from=%s, days=%d, slotCount=%d, urgent=%v",
		fromDateStr, len(result.Days), result.SlotCount, urgent)
	handlers.RespondJSON(w, http.StatusOK, response)
}
