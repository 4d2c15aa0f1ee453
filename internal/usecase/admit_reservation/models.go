package admit_reservation

import "time"

// Request модель запроса на допуск бронирования
type Request struct {
	CustomerID int64     // ID клиента
	Date       time.Time // Дата бронирования (без времени)
	StartSlot  int       // Индекс стартового слота (0..2)
	SlotCount  int       // Количество подряд идущих слотов (1..3)
	Note       *string   // Дополнительные заметки (опционально)

	// ExcludeReservationID исключает бронирование из проверки занятости
	// Используется при переносе: старое бронирование не должно блокировать
	// собственный новый диапазон
	ExcludeReservationID *int64
}

// Response модель ответа с допущенным бронированием
type Response struct {
	ID         int64     // ID созданного бронирования
	CustomerID int64     // ID клиента
	Date       time.Time // Дата бронирования
	StartSlot  int       // Индекс стартового слота
	SlotCount  int       // Количество слотов
	SlotStart  time.Time // Начало занятого диапазона
	SlotEnd    time.Time // Конец занятого диапазона
	Label      string    // Человекочитаемая метка диапазона, например "08:00-13:30"
	Status     string    // Статус бронирования
	Note       *string   // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
