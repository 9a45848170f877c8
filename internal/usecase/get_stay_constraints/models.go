package get_stay_constraints

import "time"

// Request модель запроса ограничений проживания на дату
type Request struct {
	RoomTypeID int64     // ID типа номера
	Date       time.Time // Дата заезда
}

// Response действующие на дату ограничения длительности проживания.
// nil означает отсутствие ограничения
type Response struct {
	RoomTypeID int64
	Date       string // Дата в формате YYYY-MM-DD
	MinStay    *int
	MaxStay    *int
}
