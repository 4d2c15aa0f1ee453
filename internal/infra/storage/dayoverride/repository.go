package dayoverride

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/st-neumann/SNR-BookingService/internal/domain"
	"github.com/st-neumann/SNR-BookingService/pkg/dbmetrics"
	"github.com/st-neumann/SNR-BookingService/pkg/psqlbuilder"
)

const pgUndefinedTable = "42P01"

var overrideColumns = []string{
	"id",
	"override_date",
	"open_slot_count",
	"visible_on_urgent_channel",
	"note",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с override'ами вместимости дня
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория override'ов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert идемпотентно создает или заменяет override для даты
// Ключ - календарная дата; повторный вызов с той же датой заменяет строку целиком
func (r *Repository) Upsert(ctx context.Context, override *domain.DayOverride) (*domain.DayOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("day_overrides").
		Columns(
			"override_date",
			"open_slot_count",
			"visible_on_urgent_channel",
			"note",
		).
		Values(
			dayFloor(override.Date),
			override.OpenSlotCount,
			override.VisibleOnUrgentChannel,
			override.Note,
		).
		Suffix(`ON CONFLICT (override_date) DO UPDATE SET
			open_slot_count = EXCLUDED.open_slot_count,
			visible_on_urgent_channel = EXCLUDED.visible_on_urgent_channel,
			note = EXCLUDED.note,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&override.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUndefinedTable(err) {
			return nil, fmt.Errorf("%w: Upsert: %v", ErrSchemaMissing, err)
		}
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	override.CreatedAt = createdAt.Time
	override.UpdatedAt = updatedAt.Time

	return override, nil
}

// GetByDate получает override для конкретной даты
func (r *Repository) GetByDate(ctx context.Context, date time.Time) (*domain.DayOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(overrideColumns...).
		From("day_overrides").
		Where(squirrel.Eq{"override_date": dayFloor(date)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	override, err := scanOverrideRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrOverrideNotFound
	}
	if err != nil {
		if isUndefinedTable(err) {
			return nil, fmt.Errorf("%w: GetByDate: %v", ErrSchemaMissing, err)
		}
		return nil, fmt.Errorf("%w: GetByDate - scan override: %v", ErrScanRow, err)
	}

	return override, nil
}

// GetByDateRange получает все override'ы в диапазоне дат [from, to] включительно
func (r *Repository) GetByDateRange(ctx context.Context, from, to time.Time) ([]*domain.DayOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(overrideColumns...).
		From("day_overrides").
		Where(squirrel.GtOrEq{"override_date": dayFloor(from)}).
		Where(squirrel.LtOrEq{"override_date": dayFloor(to)}).
		OrderBy("override_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, fmt.Errorf("%w: GetByDateRange: %v", ErrSchemaMissing, err)
		}
		return nil, fmt.Errorf("%w: GetByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	overrides := make([]*domain.DayOverride, 0)
	for rows.Next() {
		override, err := scanOverride(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByDateRange - scan row: %v", ErrScanRow, err)
		}
		overrides = append(overrides, override)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}

// Delete удаляет override для даты, возвращая день к дефолтной вместимости
func (r *Repository) Delete(ctx context.Context, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("day_overrides").
		Where(squirrel.Eq{"override_date": dayFloor(date)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOverrideNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOverrideRow(row *sql.Row) (*domain.DayOverride, error) {
	return scanOverride(row)
}

func scanOverride(row rowScanner) (*domain.DayOverride, error) {
	var override domain.DayOverride
	var openSlotCount sql.NullInt64
	var visible sql.NullBool
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&override.ID,
		&override.Date,
		&openSlotCount,
		&visible,
		&override.Note,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if openSlotCount.Valid {
		v := int(openSlotCount.Int64)
		override.OpenSlotCount = &v
	}
	if visible.Valid {
		v := visible.Bool
		override.VisibleOnUrgentChannel = &v
	}

	override.CreatedAt = createdAt.Time
	override.UpdatedAt = updatedAt.Time

	return &override, nil
}

func isUndefinedTable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUndefinedTable
	}
	return false
}

func dayFloor(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
