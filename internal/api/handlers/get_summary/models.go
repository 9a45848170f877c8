package get_summary

import (
	getSummary "github.com/Vzyree-619/FindoTrip-sub006/internal/usecase/get_summary"
	"github.com/Vzyree-619/FindoTrip-sub006/pkg/types"
)

// SummaryResponse HTTP response model
type SummaryResponse struct {
	RoomTypeID        int64        `json:"roomTypeId"`
	Details           []DateDetail `json:"details"`
	TotalDates        int          `json:"totalDates"`
	AvailableDates    int          `json:"availableDates"`
	BlockedDates      int          `json:"blockedDates"`
	FullyBookedDates  int          `json:"fullyBookedDates"`
	MinAvailableUnits int          `json:"minAvailableUnits"`
	MaxAvailableUnits int          `json:"maxAvailableUnits"`
}

// DateDetail состояние одной даты диапазона
type DateDetail struct {
	Date           string  `json:"date"`
	IsAvailable    bool    `json:"isAvailable"`
	IsBlocked      bool    `json:"isBlocked"`
	BookedUnits    int     `json:"bookedUnits"`
	AvailableUnits int     `json:"availableUnits"`
	Reason         *string `json:"reason,omitempty"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(roomTypeID int64, startDateStr, endDateStr string) (*getSummary.Request, error) {
	startDate, err := types.NewDateStringFromString(startDateStr)
	if err != nil {
		return nil, err
	}
	start, err := startDate.ToTime()
	if err != nil {
		return nil, err
	}

	endDate, err := types.NewDateStringFromString(endDateStr)
	if err != nil {
		return nil, err
	}
	end, err := endDate.ToTime()
	if err != nil {
		return nil, err
	}

	return &getSummary.Request{
		RoomTypeID: roomTypeID,
		StartDate:  start,
		EndDate:    end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSummary.Response) *SummaryResponse {
	details := make([]DateDetail, len(resp.Details))
	for i, detail := range resp.Details {
		details[i] = DateDetail{
			Date:           detail.Date,
			IsAvailable:    detail.IsAvailable,
			IsBlocked:      detail.IsBlocked,
			BookedUnits:    detail.BookedUnits,
			AvailableUnits: detail.AvailableUnits,
			Reason:         detail.Reason,
		}
	}

	return &SummaryResponse{
		RoomTypeID:        resp.RoomTypeID,
		Details:           details,
		TotalDates:        resp.TotalDates,
		AvailableDates:    resp.AvailableDates,
		BlockedDates:      resp.BlockedDates,
		FullyBookedDates:  resp.FullyBookedDates,
		MinAvailableUnits: resp.MinAvailableUnits,
		MaxAvailableUnits: resp.MaxAvailableUnits,
	}
}
