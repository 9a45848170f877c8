package pricingrule

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

// Repository репозиторий для чтения сезонных и событийных правил ценообразования
// Сервис доступности использует из правил только ограничения длительности
// проживания (min_stay, max_stay), цены читает внешний pricing engine
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListSeasonalForRange получает активные сезонные правила, чей диапазон
// [start_date, end_date] пересекается с [from, to]
// Возвращает правила, привязанные к типу номера или ко всему объекту
// Сортировка по priority DESC, id ASC делает выбор при равных приоритетах детерминированным
func (r *Repository) ListSeasonalForRange(ctx context.Context, propertyID, roomTypeID int64, from, to time.Time) ([]*domain.SeasonalRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"property_id",
		"room_type_id",
		"name",
		"start_date",
		"end_date",
		"priority",
		"is_active",
		"min_stay",
		"max_stay",
		"nightly_rate",
		"created_at",
		"updated_at",
	).
		From("seasonal_pricing_rules").
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.LtOrEq{"start_date": domain.NormalizeDate(to)}).
		Where(squirrel.GtOrEq{"end_date": domain.NormalizeDate(from)}).
		Where(squirrel.Or{
			squirrel.Eq{"room_type_id": roomTypeID},
			squirrel.And{
				squirrel.Eq{"room_type_id": nil},
				squirrel.Eq{"property_id": propertyID},
			},
		}).
		OrderBy("priority DESC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListSeasonalForRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSeasonalForRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.SeasonalRule, 0)

	for rows.Next() {
		var rule domain.SeasonalRule
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rule.ID,
			&rule.PropertyID,
			&rule.RoomTypeID,
			&rule.Name,
			&rule.StartDate,
			&rule.EndDate,
			&rule.Priority,
			&rule.IsActive,
			&rule.MinStay,
			&rule.MaxStay,
			&rule.NightlyRate,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListSeasonalForRange - scan row: %v", ErrScanRow, err)
		}

		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time

		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSeasonalForRange - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// ListEventForRange получает активные событийные правила, чей диапазон
// [start_date, end_date] пересекается с [from, to]
// У событийных правил нет приоритета, сортировка по id дает стабильный порядок
func (r *Repository) ListEventForRange(ctx context.Context, propertyID, roomTypeID int64, from, to time.Time) ([]*domain.EventRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"property_id",
		"room_type_id",
		"name",
		"start_date",
		"end_date",
		"is_active",
		"min_stay",
		"max_stay",
		"nightly_rate",
		"created_at",
		"updated_at",
	).
		From("event_pricing_rules").
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.LtOrEq{"start_date": domain.NormalizeDate(to)}).
		Where(squirrel.GtOrEq{"end_date": domain.NormalizeDate(from)}).
		Where(squirrel.Or{
			squirrel.Eq{"room_type_id": roomTypeID},
			squirrel.And{
				squirrel.Eq{"room_type_id": nil},
				squirrel.Eq{"property_id": propertyID},
			},
		}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListEventForRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEventForRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.EventRule, 0)

	for rows.Next() {
		var rule domain.EventRule
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rule.ID,
			&rule.PropertyID,
			&rule.RoomTypeID,
			&rule.Name,
			&rule.StartDate,
			&rule.EndDate,
			&rule.IsActive,
			&rule.MinStay,
			&rule.MaxStay,
			&rule.NightlyRate,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListEventForRange - scan row: %v", ErrScanRow, err)
		}

		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time

		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListEventForRange - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}
