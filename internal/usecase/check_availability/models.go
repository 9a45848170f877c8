package check_availability

import "time"

// Причины недоступности, возвращаемые как есть потребителям API
const (
	ReasonRoomTypeNotFound = "Room type not found"
	ReasonNotBookable      = "Room type is not available for booking"
)

// Request модель запроса проверки доступности
type Request struct {
	RoomTypeID    int64     // ID типа номера
	CheckIn       time.Time // Дата заезда (включительно)
	CheckOut      time.Time // Дата выезда (не занимается)
	NumberOfUnits int       // Запрашиваемое количество номеров
}

// DateDetail состояние одной даты диапазона в ответе
type DateDetail struct {
	Date           string  // Дата в формате YYYY-MM-DD
	Available      bool    // Доступна ли дата для запрошенного количества
	AvailableUnits int     // Остаток номеров на дату
	Reason         *string // Причина недоступности (nil для доступных дат)
}

// Response модель ответа проверки доступности
type Response struct {
	IsAvailable      bool         // Итоговая доступность всего диапазона
	Reason           *string      // Причина отказа (nil при недоступных датах - смотри UnavailableDates)
	AvailableUnits   int          // Остаток номеров (с первой даты диапазона)
	UnavailableDates []string     // Даты, не прошедшие проверку
	Details          []DateDetail // Подробности по каждой дате диапазона
}
