package domain

import "time"

// RoomType represents a bookable unit type of a property
// (a room category of a hotel, an apartment, a vehicle class of a rental fleet)
type RoomType struct {
	ID         int64
	PropertyID int64
	Name       string
	TotalUnits int     // Общее количество единиц этого типа (капасити)
	IsActive   bool    // Доступен ли тип для бронирования
	BasePrice  float64 // Базовая цена за ночь

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if the room type can accept bookings
func (rt *RoomType) IsBookable() bool {
	return rt.IsActive
}
