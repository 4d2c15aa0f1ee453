package get_availability

import (
	"time"

	"github.com/st-neumann/SNR-BookingService/internal/domain"
)

// Policy политика движка доступности, инжектируется из конфигурации
type Policy struct {
	DayDefaults      domain.DayDefaults // Дефолтная вместимость по дням недели
	MaxRangeDays     int                // Верхняя граница длины запрашиваемого диапазона
	UrgentWindowDays int                // Длина скользящего окна срочного канала
}

// DefaultPolicy возвращает встроенную политику
func DefaultPolicy() Policy {
	return Policy{
		DayDefaults:      domain.DefaultDayDefaults(),
		MaxRangeDays:     domain.DefaultMaxRangeDays,
		UrgentWindowDays: domain.DefaultUrgentWindowDays,
	}
}

// Request модель запроса на вычисление доступности
type Request struct {
	FromDate      time.Time // Первый день диапазона (без времени)
	Days          int       // Количество дней (обрезается до MaxRangeDays)
	SlotCount     int       // Требуемое количество подряд идущих слотов (обрезается до 1..3)
	UrgentChannel bool      // Запрос для срочного канала записи
}

// Response модель ответа с доступностью по дням
type Response struct {
	FromDate      time.Time                // Первый день диапазона
	SlotCount     int                      // Применённое количество слотов (после clamp)
	UrgentChannel bool                     // Был ли применён фильтр срочного канала
	Days          []domain.DayAvailability // Доступность по дням в хронологическом порядке
}
