package dayoverride

import "errors"

var (
	// ErrOverrideNotFound возвращается, когда override для даты не найден
	// Вызывающий код трактует отсутствие как "использовать дефолтную вместимость"
	ErrOverrideNotFound = errors.New("dayoverride.repository: override not found")

	// ErrSchemaMissing возвращается, когда таблица не развернута
	ErrSchemaMissing = errors.New("dayoverride.repository: required table is missing")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("dayoverride.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("dayoverride.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("dayoverride.repository: failed to scan row")
)
