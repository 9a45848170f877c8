package check_date_range

import "time"

// Причины недоступности, возвращаемые как есть потребителям API
const (
	ReasonRoomTypeNotFound = "Room type not found"
	ReasonNotBookable      = "Room type is not available for booking"
)

// Request модель запроса проверки диапазона дат
type Request struct {
	RoomTypeID    int64     // ID типа номера
	CheckIn       time.Time // Дата заезда (включительно)
	CheckOut      time.Time // Дата выезда (не занимается)
	NumberOfUnits int       // Запрашиваемое количество номеров
}

// Conflict конфликт одной даты диапазона
type Conflict struct {
	Date           string // Дата в формате YYYY-MM-DD
	Type           string // BLOCKED или FULLY_BOOKED
	Reason         string // Описание конфликта
	AvailableUnits int    // Остаток номеров на дату
	RequestedUnits int    // Запрошенное количество
}

// Response модель ответа проверки диапазона дат
type Response struct {
	IsAvailable    bool       // Итоговая доступность диапазона
	Reason         *string    // Причина отказа, когда конфликтов нет
	Conflicts      []Conflict // Полный список конфликтов по датам
	NumberOfNights int        // Количество ночей в диапазоне
	MinStay        *int       // Действующее на диапазон минимальное проживание
	MaxStay        *int       // Действующее на диапазон максимальное проживание
}
