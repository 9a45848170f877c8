package get_price_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/domain"
	"github.com/Vzyree-619/FindoTrip-sub006/internal/integrations/pricingservice"
	availabilityService "github.com/Vzyree-619/FindoTrip-sub006/internal/service/availability"
)

// Валюта плоского расчета по базовой цене
const fallbackCurrency = "USD"

// UseCase use case расчета стоимости проживания
type UseCase struct {
	roomTypes     RoomTypeProvider
	pricingClient PricingServiceClient
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomTypes RoomTypeProvider,
	pricingClient PricingServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomTypes:     roomTypes,
		pricingClient: pricingClient,
		logger:        logger,
	}
}

// Execute запрашивает расчет стоимости у внешнего прайсинг-движка.
// При его недоступности маркетплейс все равно должен показать цифру,
// поэтому расчет деградирует до basePrice * nights * units
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetPriceQuote: room_type=%d, check_in=%s, check_out=%s, units=%d",
		req.RoomTypeID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.NumberOfUnits)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetPriceQuote: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем тип номера
	roomType, err := uc.roomTypes.GetRoomType(ctx, req.RoomTypeID)
	if err != nil {
		if errors.Is(err, availabilityService.ErrRoomTypeNotFound) {
			uc.logger.Warn("GetPriceQuote: room type id=%d not found", req.RoomTypeID)
			return nil, ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("%w: failed to get room type: %v", ErrInternal, err)
	}

	checkIn := domain.NormalizeDate(req.CheckIn).Format(domain.DateFormat)
	checkOut := domain.NormalizeDate(req.CheckOut).Format(domain.DateFormat)
	nights := domain.NightsBetween(req.CheckIn, req.CheckOut)

	// 3. Запрашиваем точный расчет у прайсинг-движка
	quote, err := uc.pricingClient.GetQuoteWithGracefulDegradation(ctx, req.RoomTypeID, checkIn, checkOut, req.NumberOfUnits)
	if err == nil {
		return &Response{
			RoomTypeID:  req.RoomTypeID,
			CheckIn:     quote.CheckIn,
			CheckOut:    quote.CheckOut,
			Nights:      quote.Nights,
			Currency:    quote.Currency,
			TotalPrice:  quote.TotalPrice,
			AvgPerNight: quote.AvgPerNight,
			Source:      SourcePricingService,
		}, nil
	}

	if !errors.Is(err, pricingservice.ErrServiceDegraded) && !errors.Is(err, pricingservice.ErrQuoteNotFound) {
		return nil, fmt.Errorf("%w: failed to get quote: %v", ErrInternal, err)
	}

	// 4. Плоский расчет по базовой цене
	uc.logger.Warn("GetPriceQuote: falling back to base price for room_type=%d", req.RoomTypeID)

	total := roomType.BasePrice * float64(nights) * float64(req.NumberOfUnits)

	return &Response{
		RoomTypeID:  req.RoomTypeID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Nights:      nights,
		Currency:    fallbackCurrency,
		TotalPrice:  total,
		AvgPerNight: roomType.BasePrice,
		Source:      SourceBasePrice,
	}, nil
}
