package block_date_range

import (
	"github.com/Vzyree-619/FindoTrip-sub006/internal/service/overrides/models"
	"github.com/Vzyree-619/FindoTrip-sub006/pkg/types"
)

// BlockDateRangeRequest HTTP request model
type BlockDateRangeRequest struct {
	StartDate string  `json:"startDate"` // "2026-01-10"
	EndDate   string  `json:"endDate"`   // "2026-01-20", включительно
	Reason    *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *BlockDateRangeRequest) ToServiceRequest(userID, roomTypeID int64) (*models.BlockRangeRequest, error) {
	startDate, err := types.NewDateStringFromString(r.StartDate)
	if err != nil {
		return nil, err
	}
	start, err := startDate.ToTime()
	if err != nil {
		return nil, err
	}

	endDate, err := types.NewDateStringFromString(r.EndDate)
	if err != nil {
		return nil, err
	}
	end, err := endDate.ToTime()
	if err != nil {
		return nil, err
	}

	return &models.BlockRangeRequest{
		UserID:     userID,
		RoomTypeID: roomTypeID,
		StartDate:  start,
		EndDate:    end,
		Reason:     r.Reason,
	}, nil
}
