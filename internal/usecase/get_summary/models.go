package get_summary

import "time"

// Request модель запроса сводки доступности
type Request struct {
	RoomTypeID int64     // ID типа номера
	StartDate  time.Time // Начало диапазона (включительно)
	EndDate    time.Time // Конец диапазона (включительно)
}

// DateDetail состояние одной даты диапазона
type DateDetail struct {
	Date           string  // Дата в формате YYYY-MM-DD
	IsAvailable    bool    // Не заблокирована и остались номера
	IsBlocked      bool    // Дата закрыта переопределением
	BookedUnits    int     // Занято номеров
	AvailableUnits int     // Остаток номеров (не меньше нуля)
	Reason         *string // Причина недоступности (nil для доступных дат)
}

// Response модель ответа со сводкой доступности по диапазону
type Response struct {
	RoomTypeID        int64
	Details           []DateDetail // Подробности по каждой дате
	TotalDates        int          // Всего просканировано дат
	AvailableDates    int          // Незаблокированных дат с остатком
	BlockedDates      int          // Заблокированных дат
	FullyBookedDates  int          // Незаблокированных дат без остатка
	MinAvailableUnits int          // Минимальный остаток по датам
	MaxAvailableUnits int          // Максимальный остаток по датам
}
