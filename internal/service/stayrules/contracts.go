package stayrules

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
	GetByRoomTypeAndDate(ctx context.Context, roomTypeID int64, date time.Time) (*domain.DateOverride, error)
	ListByRoomTypeAndRange(ctx context.Context, roomTypeID int64, from, to time.Time) ([]*domain.DateOverride, error)
}

// PricingRuleRepository интерфейс репозитория правил ценообразования
type PricingRuleRepository interface {
	ListSeasonalForRange(ctx context.Context, propertyID, roomTypeID int64, from, to time.Time) ([]*domain.SeasonalRule, error)
	ListEventForRange(ctx context.Context, propertyID, roomTypeID int64, from, to time.Time) ([]*domain.EventRule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
