package suggest_dates

import "time"

// Request модель запроса альтернативных дат
type Request struct {
	RoomTypeID       int64     // ID типа номера
	PreferredCheckIn time.Time // Предпочтительная дата заезда
	NumberOfNights   int       // Длительность проживания в ночах
	SearchRadius     int       // Радиус поиска в днях (0 - значение по умолчанию)
}

// Suggestion альтернативное окно дат.
// Цена - плоская аппроксимация basePrice * nights без сезонных правил,
// точный расчет отдан внешнему прайсинг-движку
type Suggestion struct {
	CheckIn       string  // Дата заезда в формате YYYY-MM-DD
	CheckOut      string  // Дата выезда в формате YYYY-MM-DD
	DaysDifferent int     // Смещение от предпочтительной даты (отрицательное - раньше)
	TotalPrice    float64 // Цена за все проживание
	AvgPerNight   float64 // Средняя цена за ночь
}

// Response модель ответа с ранжированными предложениями
type Response struct {
	RoomTypeID  int64
	Suggestions []Suggestion
}
