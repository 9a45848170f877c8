package availability

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
	ListByRoomTypeAndRange(ctx context.Context, roomTypeID int64, from, to time.Time) ([]*domain.DateOverride, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListOverlapping(ctx context.Context, roomTypeID int64, from, to time.Time, excludedStatuses []domain.BookingStatus) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
