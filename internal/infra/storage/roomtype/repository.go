package roomtype

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/domain"
	"github.com/Vzyree-619/FindoTrip-sub006/pkg/dbmetrics"
	"github.com/Vzyree-619/FindoTrip-sub006/pkg/psqlbuilder"
)

// Repository репозиторий для работы с типами номеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория типов номеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает тип номера по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.RoomType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"property_id",
		"name",
		"total_units",
		"is_active",
		"base_price",
		"created_at",
		"updated_at",
	).
		From("room_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var roomType domain.RoomType
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&roomType.ID,
		&roomType.PropertyID,
		&roomType.Name,
		&roomType.TotalUnits,
		&roomType.IsActive,
		&roomType.BasePrice,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRoomTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room type: %v", ErrScanRow, err)
	}

	roomType.CreatedAt = createdAt.Time
	roomType.UpdatedAt = updatedAt.Time

	return &roomType, nil
}
