package pricingservice

// Quote расчет стоимости проживания от прайсинг-движка
type Quote struct {
	RoomTypeID  int64   `json:"room_type_id"`
	CheckIn     string  `json:"check_in"`  // YYYY-MM-DD
	CheckOut    string  `json:"check_out"` // YYYY-MM-DD
	Nights      int     `json:"nights"`
	Currency    string  `json:"currency"`
	TotalPrice  float64 `json:"total_price"`
	AvgPerNight float64 `json:"avg_per_night"`
}

// ErrorResponse модель ошибки от PricingService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
