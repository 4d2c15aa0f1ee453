package admit_reservation

import (
	"errors"
	"fmt"

	"github.com/st-neumann/SNR-BookingService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// Фатально для запроса: вызывающая сторона должна исправить и повторить
	ErrInvalidInput = errors.New("admit_reservation: invalid input data")

	// ErrInvalidDate возвращается при попытке записи на прошедшую дату
	ErrInvalidDate = errors.New("admit_reservation: invalid reservation date")

	// ErrSlotConflict возвращается, когда запрошенный диапазон слотов закрыт
	// по вместимости или занят. Повторяемо: ответ несет альтернативные старты
	ErrSlotConflict = errors.New("admit_reservation: requested slot range is not available")

	// ErrReservationNotFound возвращается, когда переносимое бронирование не найдено
	ErrReservationNotFound = errors.New("admit_reservation: reservation to move not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("admit_reservation: internal error")
)

// ConflictError типизированный конфликт допуска
// Несет список валидных альтернативных стартов на ту же дату, чтобы
// вызывающая сторона могла предложить замену без повторного запроса.
// Конфликт вместимости, конфликт занятости и отказ constraint'а БД
// снаружи неразличимы - все три приходят как ConflictError
type ConflictError struct {
	Alternatives []domain.StartOption
}

// Error реализует интерфейс error
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v (%d alternatives)", ErrSlotConflict, len(e.Alternatives))
}

// Unwrap позволяет errors.Is(err, ErrSlotConflict)
func (e *ConflictError) Unwrap() error {
	return ErrSlotConflict
}
