package get_price_quote

import "time"

// Источники расчета стоимости
const (
	SourcePricingService = "pricing-service" // Точный расчет внешнего движка
	SourceBasePrice      = "base-price"      // Плоский расчет по базовой цене
)

// Request модель запроса расчета стоимости
type Request struct {
	RoomTypeID    int64     // ID типа номера
	CheckIn       time.Time // Дата заезда (включительно)
	CheckOut      time.Time // Дата выезда (не занимается)
	NumberOfUnits int       // Количество номеров
}

// Response модель ответа с расчетом стоимости
type Response struct {
	RoomTypeID  int64
	CheckIn     string // Дата в формате YYYY-MM-DD
	CheckOut    string // Дата в формате YYYY-MM-DD
	Nights      int
	Currency    string
	TotalPrice  float64
	AvgPerNight float64
	Source      string // pricing-service или base-price
}
