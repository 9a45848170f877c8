package models

import (
	"time"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/domain"
)

// Request модели

// UpsertOverrideRequest запрос на создание или обновление переопределения даты
type UpsertOverrideRequest struct {
	UserID        int64
	RoomTypeID    int64
	Date          time.Time
	IsBlocked     bool
	Reason        *string
	UnitsOverride *int
	MinStay       *int
	MaxStay       *int
}

// ToDomainOverride конвертирует request в domain модель
func (r *UpsertOverrideRequest) ToDomainOverride() *domain.DateOverride {
	return &domain.DateOverride{
		RoomTypeID:    r.RoomTypeID,
		Date:          domain.NormalizeDate(r.Date),
		IsBlocked:     r.IsBlocked,
		Reason:        r.Reason,
		UnitsOverride: r.UnitsOverride,
		MinStay:       r.MinStay,
		MaxStay:       r.MaxStay,
	}
}

// BlockRangeRequest запрос на блокировку диапазона дат
type BlockRangeRequest struct {
	UserID     int64
	RoomTypeID int64
	StartDate  time.Time
	EndDate    time.Time // Включительно
	Reason     *string
}

// Response модели

// OverrideResponse переопределение даты в ответе API
type OverrideResponse struct {
	ID            int64   `json:"id"`
	RoomTypeID    int64   `json:"roomTypeId"`
	Date          string  `json:"date"`
	IsBlocked     bool    `json:"isBlocked"`
	Reason        *string `json:"reason,omitempty"`
	UnitsOverride *int    `json:"unitsOverride,omitempty"`
	MinStay       *int    `json:"minStay,omitempty"`
	MaxStay       *int    `json:"maxStay,omitempty"`
}

// FromDomainOverride конвертирует domain модель в response
func FromDomainOverride(ovr *domain.DateOverride) *OverrideResponse {
	return &OverrideResponse{
		ID:            ovr.ID,
		RoomTypeID:    ovr.RoomTypeID,
		Date:          ovr.Date.Format(domain.DateFormat),
		IsBlocked:     ovr.IsBlocked,
		Reason:        ovr.Reason,
		UnitsOverride: ovr.UnitsOverride,
		MinStay:       ovr.MinStay,
		MaxStay:       ovr.MaxStay,
	}
}

// BlockRangeResponse результат блокировки диапазона дат
type BlockRangeResponse struct {
	RoomTypeID   int64  `json:"roomTypeId"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	BlockedDates int    `json:"blockedDates"`
}
