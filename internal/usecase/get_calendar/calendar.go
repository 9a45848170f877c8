package get_calendar

import (
	"github.com/Vzyree-619/FindoTrip-sub006/internal/domain"
	availabilityModels "github.com/Vzyree-619/FindoTrip-sub006/internal/service/availability/models"
	"github.com/Vzyree-619/FindoTrip-sub006/pkg/ptr"
)

// buildCalendar превращает результат сканирования в записи календаря.
//
// Заблокированная дата - ноль номеров и стопроцентная загрузка независимо
// от бронирований. Загрузка считается от общей вместимости типа номера,
// а не от переопределенной на дату; при нулевой вместимости загрузка 0
func buildCalendar(statuses []*availabilityModels.DateStatus, roomType *domain.RoomType) []CalendarEntry {
	entries := make([]CalendarEntry, 0, len(statuses))

	for _, status := range statuses {
		date := status.Date.Format(domain.DateFormat)

		if status.Blocked {
			entries = append(entries, CalendarEntry{
				Date:             date,
				OccupancyPercent: 100,
				Reason:           ptr.Ptr(domain.ReasonBlocked),
			})
			continue
		}

		available := status.RemainingUnits
		if available < 0 {
			available = 0
		}

		occupancy := 0.0
		if roomType.TotalUnits > 0 {
			occupancy = float64(status.BookedUnits) / float64(roomType.TotalUnits) * 100
		}

		var reason *string
		if available == 0 {
			reason = ptr.Ptr(domain.ReasonFullyBooked)
		}

		entries = append(entries, CalendarEntry{
			Date:             date,
			AvailableUnits:   available,
			BookedUnits:      status.BookedUnits,
			OccupancyPercent: occupancy,
			Reason:           reason,
		})
	}

	return entries
}
