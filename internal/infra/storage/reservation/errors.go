package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrTimeRangeConflict возвращается, когда exclusion constraint БД отклонил
	// пересекающийся временной диапазон. Это штатный исход оптимистичной модели,
	// вызывающий код обязан трактовать его как конфликт, а не как ошибку
	ErrTimeRangeConflict = errors.New("reservation.repository: time range conflicts with an existing reservation")

	// ErrSchemaMissing возвращается, когда таблица или constraint не развернуты
	// Это фатальная ошибка деплоя, не повторяется
	ErrSchemaMissing = errors.New("reservation.repository: required table is missing")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
