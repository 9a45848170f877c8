package get_calendar

import "time"

// Request модель запроса календаря доступности
type Request struct {
	RoomTypeID int64     // ID типа номера
	StartDate  time.Time // Начало календаря (нулевое значение - текущая дата)
	Months     int       // Глубина календаря в месяцах (0 - значение по умолчанию)
}

// CalendarEntry одна дата календаря доступности.
// Цена всегда nil: ценообразование отдано внешнему прайсинг-движку
type CalendarEntry struct {
	Date             string   // Дата в формате YYYY-MM-DD
	AvailableUnits   int      // Остаток номеров (не меньше нуля)
	BookedUnits      int      // Занято номеров
	OccupancyPercent float64  // Загрузка в процентах от общей вместимости
	Reason           *string  // BLOCKED / FULLY_BOOKED / nil
	Price            *float64 // Всегда nil
}

// Response модель ответа с календарем доступности.
// Для отсутствующего или недоступного типа номера календарь пуст
type Response struct {
	RoomTypeID int64
	Entries    []CalendarEntry
}
