package booking

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

// Repository репозиторий для чтения бронирований
// Сервис доступности только читает бронирования, создание и отмена
// происходят в основном приложении маркетплейса
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListOverlapping получает все бронирования типа номера, чей интервал проживания
// [check_in, check_out) пересекается с диапазоном дат [from, to]
// Бронирования с исключенными статусами не возвращаются
//
// Одна такая выборка заменяет запрос суммы на каждую дату: занятость по дате
// считается в памяти через domain.UnitsOnDate
func (r *Repository) ListOverlapping(ctx context.Context, roomTypeID int64, from, to time.Time, excludedStatuses []domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Интервал [check_in, check_out) пересекает [from, to], если
	// check_in <= to И check_out > from
	selectBuilder := psqlbuilder.Select(
		"id",
		"room_type_id",
		"user_id",
		"check_in",
		"check_out",
		"number_of_rooms",
		"status",
		"created_at",
		"updated_at",
	).
		From("bookings").
		Where(squirrel.Eq{"room_type_id": roomTypeID}).
		Where(squirrel.LtOrEq{"check_in": domain.NormalizeDate(to)}).
		Where(squirrel.Gt{"check_out": domain.NormalizeDate(from)}).
		OrderBy("check_in ASC")

	if len(excludedStatuses) > 0 {
		statusStrings := make([]string, len(excludedStatuses))
		for i, s := range excludedStatuses {
			statusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": statusStrings})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// SumUnitsOnDate считает сумму занятых единиц типа номера на конкретную дату
// Бронирования с исключенными статусами не учитываются
func (r *Repository) SumUnitsOnDate(ctx context.Context, roomTypeID int64, date time.Time, excludedStatuses []domain.BookingStatus) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	day := domain.NormalizeDate(date)

	selectBuilder := psqlbuilder.Select("COALESCE(SUM(number_of_rooms), 0)").
		From("bookings").
		Where(squirrel.Eq{"room_type_id": roomTypeID}).
		Where(squirrel.LtOrEq{"check_in": day}).
		Where(squirrel.Gt{"check_out": day})

	if len(excludedStatuses) > 0 {
		statusStrings := make([]string, len(excludedStatuses))
		for i, s := range excludedStatuses {
			statusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": statusStrings})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: SumUnitsOnDate - build select query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: SumUnitsOnDate - scan sum: %v", ErrScanRow, err)
	}

	return total, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.RoomTypeID,
			&booking.UserID,
			&booking.CheckIn,
			&booking.CheckOut,
			&booking.NumberOfRooms,
			&booking.Status,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
