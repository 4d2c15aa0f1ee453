package overrides

import "errors"

var (
	// ErrOverrideNotFound возвращается, когда override для даты не найден
	ErrOverrideNotFound = errors.New("day override not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
