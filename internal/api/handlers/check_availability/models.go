package check_availability

import (
	"strconv"

	checkAvailability "github.com/Vzyree-619/FindoTrip-sub006/internal/usecase/check_availability"
	"github.com/Vzyree-619/FindoTrip-sub006/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	IsAvailable      bool         `json:"isAvailable"`
	Reason           *string      `json:"reason,omitempty"`
	AvailableUnits   int          `json:"availableUnits"`
	UnavailableDates []string     `json:"unavailableDates,omitempty"`
	Details          []DateDetail `json:"details"`
}

// DateDetail состояние одной даты диапазона
type DateDetail struct {
	Date           string  `json:"date"`
	Available      bool    `json:"available"`
	AvailableUnits int     `json:"availableUnits"`
	Reason         *string `json:"reason,omitempty"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(roomTypeID int64, checkInStr, checkOutStr, unitsStr string) (*checkAvailability.Request, error) {
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

	return &checkAvailability.Request{
		RoomTypeID:    roomTypeID,
		CheckIn:       checkInDate,
		CheckOut:      checkOutDate,
		NumberOfUnits: units,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	details := make([]DateDetail, len(resp.Details))
	for i, detail := range resp.Details {
		details[i] = DateDetail{
			Date:           detail.Date,
			Available:      detail.Available,
			AvailableUnits: detail.AvailableUnits,
			Reason:         detail.Reason,
		}
	}

	return &AvailabilityResponse{
		IsAvailable:      resp.IsAvailable,
		Reason:           resp.Reason,
		AvailableUnits:   resp.AvailableUnits,
		UnavailableDates: resp.UnavailableDates,
		Details:          details,
	}
}
