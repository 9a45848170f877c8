package domain

// Default values for availability operations
const (
	DefaultNumberOfUnits    = 1
	DefaultCalendarMonths   = 12
	DefaultSearchRadiusDays = 14

	// MaxForwardSuggestions максимум предложений в направлении "после" предпочтительной даты
	// Направление "до" ограничено только радиусом поиска
	MaxForwardSuggestions = 5

	// PriceTieBand диапазон цен (в валютных единицах), внутри которого предложения
	// считаются равноценными и сортируются по близости к предпочтительной дате
	PriceTieBand = 50.0
)

// Calendar entry reasons
const (
	ReasonBlocked     = "BLOCKED"
	ReasonFullyBooked = "FULLY_BOOKED"
)

// DefaultBlockedReason причина по умолчанию для заблокированной даты без указанной причины
const DefaultBlockedReason = "Date is blocked"

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ExcludedStatuses статусы бронирований, не учитываемые при подсчете занятости
var ExcludedStatuses = []BookingStatus{
	StatusCancelled,
	StatusRefunded,
}
