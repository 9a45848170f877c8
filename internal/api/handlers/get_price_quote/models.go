package get_price_quote

import (
	"strconv"

	getPriceQuote "github.com/Vzyree-619/FindoTrip-sub006/internal/usecase/get_price_quote"
	"github.com/Vzyree-619/FindoTrip-sub006/pkg/types"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	RoomTypeID  int64   `json:"roomTypeId"`
	CheckIn     string  `json:"checkIn"`
	CheckOut    string  `json:"checkOut"`
	Nights      int     `json:"nights"`
	Currency    string  `json:"currency"`
	TotalPrice  float64 `json:"totalPrice"`
	AvgPerNight float64 `json:"avgPerNight"`
	Source      string  `json:"source"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(roomTypeID int64, checkInStr, checkOutStr, unitsStr string) (*getPriceQuote.Request, error) {
	checkIn, err := types.NewDateStringFromString(checkInStr)
	if err != nil {
		return nil, err
	}
	checkInDate, err := checkIn.ToTime()
	if err != nil {
		return nil, err
	}

	checkOut, err := types.NewDateStringFromString(checkOutStr)
	if err != nil {
		return nil, err
	}
	checkOutDate, err := checkOut.ToTime()
	if err != nil {
		return nil, err
	}

	units := 1
	if unitsStr != "" {
		units, err = strconv.Atoi(unitsStr)
		if err != nil {
			return nil, err
		}
	}

	return &getPriceQuote.Request{
		RoomTypeID:    roomTypeID,
		CheckIn:       checkInDate,
		CheckOut:      checkOutDate,
		NumberOfUnits: units,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getPriceQuote.Response) *QuoteResponse {
	return &QuoteResponse{
		RoomTypeID:  resp.RoomTypeID,
		CheckIn:     resp.CheckIn,
		CheckOut:    resp.CheckOut,
		Nights:      resp.Nights,
		Currency:    resp.Currency,
		TotalPrice:  resp.TotalPrice,
		AvgPerNight: resp.AvgPerNight,
		Source:      resp.Source,
	}
}
