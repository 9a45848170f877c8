package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusRefunded  BookingStatus = "refunded"
)

// Booking represents a stay booking for a room type
// Интервал проживания [CheckIn, CheckOut) - дата выезда не занимает номер
type Booking struct {
	ID            int64
	RoomTypeID    int64
	UserID        int64
	CheckIn       time.Time
	CheckOut      time.Time
	NumberOfRooms int
	Status        BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking counts towards occupancy
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusRefunded
}

// Covers returns true if the stay interval [CheckIn, CheckOut) occupies the date
func (b *Booking) Covers(date time.Time) bool {
	d := NormalizeDate(date)
	return !d.Before(NormalizeDate(b.CheckIn)) && d.Before(NormalizeDate(b.CheckOut))
}

// Nights returns the number of nights of the stay
func (b *Booking) Nights() int {
	return NightsBetween(b.CheckIn, b.CheckOut)
}

// UnitsOnDate суммирует количество занятых единиц по всем активным
// бронированиям, покрывающим указанную дату
// Бронирования с исключенными статусами (cancelled, refunded) не учитываются
func UnitsOnDate(bookings []*Booking, date time.Time) int {
	total := 0
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if b.Covers(date) {
			total += b.NumberOfRooms
		}
	}
	return total
}
