package get_summary

import (
	"github.com/Vzyree-619/FindoTrip-sub006/internal/domain"
	availabilityModels "github.com/Vzyree-619/FindoTrip-sub006/internal/service/availability/models"
	"github.com/Vzyree-619/FindoTrip-sub006/pkg/ptr"
)

// buildSummary агрегирует результат сканирования в посуточные детали и счетчики.
// Заблокированные даты участвуют в min/max остатка с нулевым значением
func buildSummary(roomTypeID int64, statuses []*availabilityModels.DateStatus) *Response {
	resp := &Response{
		RoomTypeID: roomTypeID,
		Details:    make([]DateDetail, 0, len(statuses)),
		TotalDates: len(statuses),
	}

	for i, status := range statuses {
		detail := toDateDetail(status)
		resp.Details = append(resp.Details, detail)

		switch {
		case detail.IsBlocked:
			resp.BlockedDates++
		case detail.AvailableUnits > 0:
			resp.AvailableDates++
		default:
			resp.FullyBookedDates++
		}

		if i == 0 || detail.AvailableUnits < resp.MinAvailableUnits {
			resp.MinAvailableUnits = detail.AvailableUnits
		}
		if detail.AvailableUnits > resp.MaxAvailableUnits {
			resp.MaxAvailableUnits = detail.AvailableUnits
		}
	}

	return resp
}

func toDateDetail(status *availabilityModels.DateStatus) DateDetail {
	date := status.Date.Format(domain.DateFormat)

	if status.Blocked {
		return DateDetail{
			Date:      date,
			IsBlocked: true,
			Reason:    status.BlockReason,
		}
	}

	available := status.RemainingUnits
	if available < 0 {
		available = 0
	}

	var reason *string
	if available == 0 {
		reason = ptr.Ptr(domain.ReasonFullyBooked)
	}

	return DateDetail{
		Date:           date,
		IsAvailable:    available > 0,
		BookedUnits:    status.BookedUnits,
		AvailableUnits: available,
		Reason:         reason,
	}
}
