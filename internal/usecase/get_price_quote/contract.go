package get_price_quote

import (
	"context"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/domain"
	"github.com/Vzyree-619/FindoTrip-sub006/internal/integrations/pricingservice"
)

// RoomTypeProvider интерфейс получения типа номера
type RoomTypeProvider interface {
	GetRoomType(ctx context.Context, roomTypeID int64) (*domain.RoomType, error)
}

// PricingServiceClient интерфейс клиента для PricingService
type PricingServiceClient interface {
	GetQuoteWithGracefulDegradation(ctx context.Context, roomTypeID int64, checkIn, checkOut string, units int) (*pricingservice.Quote, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
