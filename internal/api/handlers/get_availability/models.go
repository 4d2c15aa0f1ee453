package get_availability

import (
	"time"

	"github.com/st-neumann/SNR-BookingService/internal/domain"
	getAvailability "github.com/st-neumann/SNR-BookingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	FromDate      string            `json:"fromDate"`
	SlotCount     int               `json:"slotCount"`
	UrgentChannel bool              `json:"urgentChannel"`
	Days          []DayAvailability `json:"days"`
}

// DayAvailability доступность одного дня
type DayAvailability struct {
	Date               string        `json:"date"`
	ValidStarts        []StartOption `json:"validStarts"`
	OpenSlotCount      int           `json:"openSlotCount"`
	BlockedSlotCount   int           `json:"blockedSlotCount"`
	RemainingSlotCount int           `json:"remainingSlotCount"`
}

// StartOption валидный стартовый слот
type StartOption struct {
	StartSlot int    `json:"startSlot"`
	StartTime string `json:"startTime"`
	Label     string `json:"label"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(fromDateStr string, days, slotCount int, urgent bool) (*getAvailability.Request, error) {
	// Парсим дату; некорректный формат - жесткая ошибка всего запроса
	fromDate, err := time.Parse(domain.DateFormat, fromDateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		FromDate:      fromDate,
		Days:          days,
		SlotCount:     slotCount,
		UrgentChannel: urgent,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	days := make([]DayAvailability, len(resp.Days))
	for i, day := range resp.Days {
		days[i] = DayAvailability{
			Date:               day.Date.Format(domain.DateFormat),
			ValidStarts:        fromStartOptions(day.ValidStarts),
			OpenSlotCount:      day.OpenSlotCount,
			BlockedSlotCount:   day.BlockedSlotCount,
			RemainingSlotCount: day.RemainingSlotCount,
		}
	}

	return &AvailabilityResponse{
		FromDate:      resp.FromDate.Format(domain.DateFormat),
		SlotCount:     resp.SlotCount,
		UrgentChannel: resp.UrgentChannel,
		Days:          days,
	}
}

func fromStartOptions(options []domain.StartOption) []StartOption {
	result := make([]StartOption, len(options))
	for i, opt := range options {
		result[i] = StartOption{
			StartSlot: opt.StartSlot,
			StartTime: opt.StartTime.String(),
			Label:     opt.Label,
		}
	}
	return result
}
