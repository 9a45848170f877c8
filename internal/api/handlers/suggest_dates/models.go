package suggest_dates

import (
	"strconv"

	suggestDates "github.com/Vzyree-619/FindoTrip-sub006/internal/usecase/suggest_dates"
	"github.com/Vzyree-619/FindoTrip-sub006/pkg/types"
)

// SuggestionsResponse HTTP response model
type SuggestionsResponse struct {
	RoomTypeID  int64        `json:"roomTypeId"`
	Suggestions []Suggestion `json:"suggestions"`
}

// Suggestion альтернативное окно дат
type Suggestion struct {
	CheckIn       string  `json:"checkIn"`
	CheckOut      string  `json:"checkOut"`
	DaysDifferent int     `json:"daysDifferent"`
	TotalPrice    float64 `json:"totalPrice"`
	AvgPerNight   float64 `json:"avgPerNight"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(roomTypeID int64, preferredStr, nightsStr, radiusStr string) (*suggestDates.Request, error) {
	preferred, err := types.NewDateStringFromString(preferredStr)
	if err != nil {
		return nil, err
	}
	preferredDate, err := preferred.ToTime()
	if err != nil {
		return nil, err
	}

	nights, err := strconv.Atoi(nightsStr)
	if err != nil {
		return nil, err
	}

	radius := 0
	if radiusStr != "" {
		radius, err = strconv.Atoi(radiusStr)
		if err != nil {
			return nil, err
		}
	}

	return &suggestDates.Request{
		RoomTypeID:       roomTypeID,
		PreferredCheckIn: preferredDate,
		NumberOfNights:   nights,
		SearchRadius:     radius,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *suggestDates.Response) *SuggestionsResponse {
	suggestions := make([]Suggestion, len(resp.Suggestions))
	for i, s := range resp.Suggestions {
		suggestions[i] = Suggestion{
			CheckIn:       s.CheckIn,
			CheckOut:      s.CheckOut,
			DaysDifferent: s.DaysDifferent,
			TotalPrice:    s.TotalPrice,
			AvgPerNight:   s.AvgPerNight,
		}
	}

	return &SuggestionsResponse{
		RoomTypeID:  resp.RoomTypeID,
		Suggestions: suggestions,
	}
}
