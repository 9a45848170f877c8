package get_calendar

import (
	"strconv"
	"time"

	getCalendar "github.com/Vzyree-619/FindoTrip-sub006/internal/usecase/get_calendar"
	"github.com/Vzyree-619/FindoTrip-sub006/pkg/types"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	RoomTypeID int64           `json:"roomTypeId"`
	Entries    []CalendarEntry `json:"entries"`
}

// CalendarEntry одна дата календаря
type CalendarEntry struct {
	Date             string   `json:"date"`
	AvailableUnits   int      `json:"availableUnits"`
	BookedUnits      int      `json:"bookedUnits"`
	OccupancyPercent float64  `json:"occupancyPercent"`
	Reason           *string  `json:"reason,omitempty"`
	Price            *float64 `json:"price"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса.
// startDate и months опциональны: значения по умолчанию подставит use case
func ToUseCaseRequest(roomTypeID int64, startDateStr, monthsStr string) (*getCalendar.Request, error) {
	var startDate time.Time
	if startDateStr != "" {
		parsed, err := types.NewDateStringFromString(startDateStr)
		if err != nil {
			return nil, err
		}
		startDate, err = parsed.ToTime()
		if err != nil {
			return nil, err
		}
	}

	months := 0
	if monthsStr != "" {
		var err error
		months, err = strconv.Atoi(monthsStr)
		if err != nil {
			return nil, err
		}
	}

	return &getCalendar.Request{
		RoomTypeID: roomTypeID,
		StartDate:  startDate,
		Months:     months,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	entries := make([]CalendarEntry, len(resp.Entries))
	for i, entry := range resp.Entries {
		entries[i] = CalendarEntry{
			Date:             entry.Date,
			AvailableUnits:   entry.AvailableUnits,
			BookedUnits:      entry.BookedUnits,
			OccupancyPercent: entry.OccupancyPercent,
			Reason:           entry.Reason,
			Price:            entry.Price,
		}
	}

	return &CalendarResponse{
		RoomTypeID: resp.RoomTypeID,
		Entries:    entries,
	}
}
