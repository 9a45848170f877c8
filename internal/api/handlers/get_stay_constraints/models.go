package get_stay_constraints

import (
	getStayConstraints "github.com/Vzyree-619/FindoTrip-sub006/internal/usecase/get_stay_constraints"
	"github.com/Vzyree-619/FindoTrip-sub006/pkg/types"
)

// StayConstraintsResponse HTTP response model.
// null означает отсутствие ограничения
type StayConstraintsResponse struct {
	RoomTypeID int64  `json:"roomTypeId"`
	Date       string `json:"date"`
	MinStay    *int   `json:"minStay"`
	MaxStay    *int   `json:"maxStay"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(roomTypeID int64, dateStr string) (*getStayConstraints.Request, error) {
	date, err := types.NewDateStringFromString(dateStr)
	if err != nil {
		return nil, err
	}
	parsed, err := date.ToTime()
	if err != nil {
		return nil, err
	}

	return &getStayConstraints.Request{
		RoomTypeID: roomTypeID,
		Date:       parsed,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getStayConstraints.Response) *StayConstraintsResponse {
	return &StayConstraintsResponse{
		RoomTypeID: resp.RoomTypeID,
		Date:       resp.Date,
		MinStay:    resp.MinStay,
		MaxStay:    resp.MaxStay,
	}
}
