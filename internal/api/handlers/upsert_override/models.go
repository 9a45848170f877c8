package upsert_override

import (
	"github.com/Vzyree-619/FindoTrip-sub006/internal/service/overrides/models"
	"github.com/Vzyree-619/FindoTrip-sub006/pkg/types"
)

// UpsertOverrideRequest HTTP request model
type UpsertOverrideRequest struct {
	IsBlocked     bool    `json:"isBlocked"`
	Reason        *string `json:"reason,omitempty"`
	UnitsOverride *int    `json:"unitsOverride,omitempty"`
	MinStay       *int    `json:"minStay,omitempty"`
	MaxStay       *int    `json:"maxStay,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpsertOverrideRequest) ToServiceRequest(userID, roomTypeID int64, dateStr string) (*models.UpsertOverrideRequest, error) {
	date, err := types.NewDateStringFromString(dateStr)
	if err != nil {
		return nil, err
	}
	parsed, err := date.ToTime()
	if err != nil {
		return nil, err
	}

	return &models.UpsertOverrideRequest{
		UserID:        userID,
		RoomTypeID:    roomTypeID,
		Date:          parsed,
		IsBlocked:     r.IsBlocked,
		Reason:        r.Reason,
		UnitsOverride: r.UnitsOverride,
		MinStay:       r.MinStay,
		MaxStay:       r.MaxStay,
	}, nil
}
