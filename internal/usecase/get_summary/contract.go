package get_summary

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

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
