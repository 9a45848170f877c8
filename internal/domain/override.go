package domain

import "time"

// DateOverride represents a per-date availability override for a room type
// Не более одной записи на пару (room_type_id, date), дата нормализована к началу дня
type DateOverride struct {
	ID         int64
	RoomTypeID int64
	Date       time.Time

	IsBlocked     bool
	Reason        *string // Причина блокировки (опционально)
	UnitsOverride *int    // Переопределение капасити на эту дату (опционально)
	MinStay       *int    // Минимальное количество ночей (опционально)
	MaxStay       *int    // Максимальное количество ночей (опционально)

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveUnits returns the capacity for the date: the override value if set,
// otherwise the room type's total units
func (o *DateOverride) EffectiveUnits(totalUnits int) int {
	if o != nil && o.UnitsOverride != nil {
		return *o.UnitsOverride
	}
	return totalUnits
}

// BlockReason returns the override's reason or the default blocked message
func (o *DateOverride) BlockReason() string {
	if o.Reason != nil && *o.Reason != "" {
		return *o.Reason
	}
	return DefaultBlockedReason
}
