package override

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/domain"
	"github.com/Vzyree-619/FindoTrip-sub006/pkg/dbmetrics"
	"github.com/Vzyree-619/FindoTrip-sub006/pkg/psqlbuilder"
)

// Repository репозиторий для работы с переопределениями дат
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория переопределений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByRoomTypeAndDate получает переопределение для пары (тип номера, дата)
// Дата нормализуется к началу дня перед запросом
func (r *Repository) GetByRoomTypeAndDate(ctx context.Context, roomTypeID int64, date time.Time) (*domain.DateOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(overrideColumns...).
		From("room_date_overrides").
		Where(squirrel.Eq{
			"room_type_id": roomTypeID,
			"date":         domain.NormalizeDate(date),
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomTypeAndDate - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	ovr, err := scanOverride(row)
	if err == sql.ErrNoRows {
		return nil, ErrOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomTypeAndDate - scan override: %v", ErrScanRow, err)
	}

	return ovr, nil
}

// ListByRoomTypeAndRange получает все переопределения типа номера в диапазоне дат [from, to]
// Используется для batch-загрузки вместо запроса на каждую дату
func (r *Repository) ListByRoomTypeAndRange(ctx context.Context, roomTypeID int64, from, to time.Time) ([]*domain.DateOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(overrideColumns...).
		From("room_date_overrides").
		Where(squirrel.Eq{"room_type_id": roomTypeID}).
		Where(squirrel.GtOrEq{"date": domain.NormalizeDate(from)}).
		Where(squirrel.LtOrEq{"date": domain.NormalizeDate(to)}).
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByRoomTypeAndRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRoomTypeAndRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	overrides := make([]*domain.DateOverride, 0)

	for rows.Next() {
		ovr, err := scanOverride(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByRoomTypeAndRange - scan row: %v", ErrScanRow, err)
		}
		overrides = append(overrides, ovr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByRoomTypeAndRange - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}

// Upsert создает или обновляет переопределение для пары (тип номера, дата)
// На пару (room_type_id, date) существует не более одной записи
func (r *Repository) Upsert(ctx context.Context, ovr *domain.DateOverride) (*domain.DateOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("room_date_overrides").
		Columns(
			"room_type_id",
			"date",
			"is_blocked",
			"reason",
			"units_override",
			"min_stay",
			"max_stay",
		).
		Values(
			ovr.RoomTypeID,
			domain.NormalizeDate(ovr.Date),
			ovr.IsBlocked,
			ovr.Reason,
			ovr.UnitsOverride,
			ovr.MinStay,
			ovr.MaxStay,
		).
		Suffix(`ON CONFLICT (room_type_id, date) DO UPDATE SET
			is_blocked = EXCLUDED.is_blocked,
			reason = EXCLUDED.reason,
			units_override = EXCLUDED.units_override,
			min_stay = EXCLUDED.min_stay,
			max_stay = EXCLUDED.max_stay,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&ovr.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	ovr.Date = domain.NormalizeDate(ovr.Date)
	ovr.CreatedAt = createdAt.Time
	ovr.UpdatedAt = updatedAt.Time

	return ovr, nil
}

// Delete удаляет переопределение для пары (тип номера, дата)
func (r *Repository) Delete(ctx context.Context, roomTypeID int64, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("room_date_overrides").
		Where(squirrel.Eq{
			"room_type_id": roomTypeID,
			"date":         domain.NormalizeDate(date),
		}).
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

// overrideColumns колонки таблицы room_date_overrides в порядке сканирования
var overrideColumns = []string{
	"id",
	"room_type_id",
	"date",
	"is_blocked",
	"reason",
	"units_override",
	"min_stay",
	"max_stay",
	"created_at",
	"updated_at",
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanOverride сканирует одну строку в domain.DateOverride
func scanOverride(row rowScanner) (*domain.DateOverride, error) {
	var ovr domain.DateOverride
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&ovr.ID,
		&ovr.RoomTypeID,
		&ovr.Date,
		&ovr.IsBlocked,
		&ovr.Reason,
		&ovr.UnitsOverride,
		&ovr.MinStay,
		&ovr.MaxStay,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	ovr.Date = domain.NormalizeDate(ovr.Date)
	ovr.CreatedAt = createdAt.Time
	ovr.UpdatedAt = updatedAt.Time

	return &ovr, nil
}
