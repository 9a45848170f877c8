package check_availability

import (
	"fmt"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/domain"
	availabilityModels "github.com/Vzyree-619/FindoTrip-sub006/internal/service/availability/models"
)

// buildDateDetails превращает результат сканирования в посуточные детали ответа
// и список недоступных дат. Сканирование всегда проходит весь диапазон:
// ранний выход запрещен, список деталей должен отражать каждую дату
func buildDateDetails(statuses []*availabilityModels.DateStatus, numberOfUnits int) ([]DateDetail, []string) {
	details := make([]DateDetail, 0, len(statuses))
	unavailableDates := make([]string, 0)

	for _, status := range statuses {
		date := status.Date.Format(domain.DateFormat)

		if status.Blocked {
			details = append(details, DateDetail{
				Date:   date,
				Reason: status.BlockReason,
			})
			unavailableDates = append(unavailableDates, date)
			continue
		}

		if status.RemainingUnits < numberOfUnits {
			reason := fmt.Sprintf("Only %d available, need %d", status.RemainingUnits, numberOfUnits)
			details = append(details, DateDetail{
				Date:           date,
				AvailableUnits: status.RemainingUnits,
				Reason:         &reason,
			})
			unavailableDates = append(unavailableDates, date)
			continue
		}

		details = append(details, DateDetail{
			Date:           date,
			Available:      true,
			AvailableUnits: status.RemainingUnits,
		})
	}

	return details, unavailableDates
}

// firstDateUnits возвращает остаток номеров с первой даты диапазона,
// либо общую вместимость типа номера для пустого диапазона
func firstDateUnits(details []DateDetail, roomType *domain.RoomType) int {
	if len(details) > 0 {
		return details[0].AvailableUnits
	}
	return roomType.TotalUnits
}
