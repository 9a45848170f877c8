package check_date_range

import (
	"strconv"

	checkDateRange "github.com/Vzyree-619/FindoTrip-sub006/internal/usecase/check_date_range"
	"github.com/Vzyree-619/FindoTrip-sub006/pkg/types"
)

// DateRangeResponse HTTP response model
type DateRangeResponse struct {
	IsAvailable    bool       `json:"isAvailable"`
	Reason         *string    `json:"reason,omitempty"`
	Conflicts      []Conflict `json:"conflicts"`
	NumberOfNights int        `json:"numberOfNights"`
	MinStay        *int       `json:"minStay,omitempty"`
	MaxStay        *int       `json:"maxStay,omitempty"`
}

// Conflict конфликт одной даты диапазона
type Conflict struct {
	Date           string `json:"date"`
	Type           string `json:"type"`
	Reason         string `json:"reason"`
	AvailableUnits int    `json:"availableUnits"`
	RequestedUnits int    `json:"requestedUnits"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(roomTypeID int64, checkInStr, checkOutStr, unitsStr string) (*checkDateRange.Request, error) {
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

	return &checkDateRange.Request{
		RoomTypeID:    roomTypeID,
		CheckIn:       checkInDate,
		CheckOut:      checkOutDate,
		NumberOfUnits: units,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkDateRange.Response) *DateRangeResponse {
	conflicts := make([]Conflict, len(resp.Conflicts))
	for i, conflict := range resp.Conflicts {
		conflicts[i] = Conflict{
			Date:           conflict.Date,
			Type:           conflict.Type,
			Reason:         conflict.Reason,
			AvailableUnits: conflict.AvailableUnits,
			RequestedUnits: conflict.RequestedUnits,
		}
	}

	return &DateRangeResponse{
		IsAvailable:    resp.IsAvailable,
		Reason:         resp.Reason,
		Conflicts:      conflicts,
		NumberOfNights: resp.NumberOfNights,
		MinStay:        resp.MinStay,
		MaxStay:        resp.MaxStay,
	}
}
