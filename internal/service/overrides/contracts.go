package overrides

import (
	"context"
	"time"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/domain"
)

// RoomTypeRepository интерфейс репозитория типов номеров
type RoomTypeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.RoomType, error)
}

// OverrideRepository интерфейс репозитория переопределений дат
type OverrideRepository interface {
	Upsert(ctx context.Context, ovr *domain.DateOverride) (*domain.DateOverride, error)
	Delete(ctx context.Context, roomTypeID int64, date time.Time) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	SumUnitsOnDate(ctx context.Context, roomTypeID int64, date time.Time, excludedStatuses []domain.BookingStatus) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
