package check_availability

import (
	"context"
	"time"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/domain"
	availabilityModels "github.com/Vzyree-619/FindoTrip-sub006/internal/service/availability/models"
)

// AvailabilityService интерфейс сервиса посуточного сканирования доступности
type AvailabilityService interface {
	GetRoomType(ctx context.Context, roomTypeID int64) (*domain.RoomType, error)
	ScanDates(ctx context.Context, roomType *domain.RoomType, from, to time.Time) ([]*availabilityModels.DateStatus, error)
}

// StayRulesService интерфейс сервиса ограничений длительности проживания
type StayRulesService interface {
	GetMinimumStay(ctx context.Context, roomTypeID int64, date time.Time) (*int, error)
	GetMaximumStay(ctx context.Context, roomTypeID int64, date time.Time) (*int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
