package domain

import "time"

// SeasonalRule represents a seasonal pricing rule with optional stay constraints
// Правило действует на диапазон дат [StartDate, EndDate] включительно
// Привязано либо к конкретному типу номера (RoomTypeID != nil),
// либо ко всем типам объекта (RoomTypeID == nil)
type SeasonalRule struct {
	ID         int64
	PropertyID int64
	RoomTypeID *int64 // nil = правило действует на весь объект
	Name       string

	StartDate time.Time
	EndDate   time.Time
	Priority  int // Среди пересекающихся сезонных правил выигрывает большее значение
	IsActive  bool

	MinStay     *int
	MaxStay     *int
	NightlyRate *float64 // Цена за ночь (используется внешним pricing engine)

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Contains returns true if the date falls inside the rule's inclusive range
func (r *SeasonalRule) Contains(date time.Time) bool {
	d := NormalizeDate(date)
	return !d.Before(NormalizeDate(r.StartDate)) && !d.After(NormalizeDate(r.EndDate))
}

// IsPropertyWide returns true if the rule applies to every room type of the property
func (r *SeasonalRule) IsPropertyWide() bool {
	return r.RoomTypeID == nil
}

// EventRule represents a special-event pricing rule with optional stay constraints
// В отличие от сезонных правил не имеет приоритета: среди пересекающихся
// событийных правил берется первое найденное
type EventRule struct {
	ID         int64
	PropertyID int64
	RoomTypeID *int64 // nil = правило действует на весь объект
	Name       string

	StartDate time.Time
	EndDate   time.Time
	IsActive  bool

	MinStay     *int
	MaxStay     *int
	NightlyRate *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Contains returns true if the date falls inside the rule's inclusive range
func (r *EventRule) Contains(date time.Time) bool {
	d := NormalizeDate(date)
	return !d.Before(NormalizeDate(r.StartDate)) && !d.After(NormalizeDate(r.EndDate))
}

// IsPropertyWide returns true if the rule applies to every room type of the property
func (r *EventRule) IsPropertyWide() bool {
	return r.RoomTypeID == nil
}
