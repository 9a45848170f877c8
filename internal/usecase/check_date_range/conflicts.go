package check_date_range

import (
	"fmt"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/domain"
	availabilityModels "github.com/Vzyree-619/FindoTrip-sub006/internal/service/availability/models"
)

// buildConflicts накапливает полный список конфликтов по всем датам диапазона.
// В отличие от итоговой проверки доступности здесь нет раннего выхода даже
// логически: вызывающему нужен весь набор проблемных дат
func buildConflicts(statuses []*availabilityModels.DateStatus, numberOfUnits int) []Conflict {
	conflicts := make([]Conflict, 0)

	for _, status := range statuses {
		date := status.Date.Format(domain.DateFormat)

		if status.Blocked {
			reason := domain.DefaultBlockedReason
			if status.BlockReason != nil {
				reason = *status.BlockReason
			}
			conflicts = append(conflicts, Conflict{
				Date:           date,
				Type:           domain.ReasonBlocked,
				Reason:         reason,
				RequestedUnits: numberOfUnits,
			})
			continue
		}

		if status.RemainingUnits < numberOfUnits {
			conflicts = append(conflicts, Conflict{
				Date:           date,
				Type:           domain.ReasonFullyBooked,
				Reason:         fmt.Sprintf("Only %d available, need %d", status.RemainingUnits, numberOfUnits),
				AvailableUnits: status.RemainingUnits,
				RequestedUnits: numberOfUnits,
			})
		}
	}

	return conflicts
}
