package suggest_dates

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/domain"
)

// windowAvailable проверяет окно [checkIn, checkIn + nights) по той же схеме,
// что и проверка диапазона дат: полный скан без конфликтов плюс ограничения
// длительности, разрешенные по всему окну
func (uc *UseCase) windowAvailable(ctx context.Context, roomType *domain.RoomType, checkIn time.Time, nights int) (bool, error) {
	checkOut := checkIn.AddDate(0, 0, nights)

	statuses, err := uc.availability.ScanDates(ctx, roomType, checkIn, checkOut)
	if err != nil {
		return false, fmt.Errorf("failed to scan candidate window: %w", err)
	}

	for _, status := range statuses {
		if status.Blocked || status.RemainingUnits < domain.DefaultNumberOfUnits {
			return false, nil
		}
	}

	minStay, maxStay, err := uc.stayRules.ResolveRangeConstraints(ctx, roomType.ID, checkIn, checkOut)
	if err != nil {
		return false, fmt.Errorf("failed to resolve candidate constraints: %w", err)
	}

	if minStay != nil && nights < *minStay {
		return false, nil
	}
	if maxStay != nil && nights > *maxStay {
		return false, nil
	}

	return true, nil
}

// newSuggestion собирает предложение с плоской ценой basePrice * nights
func newSuggestion(roomType *domain.RoomType, checkIn time.Time, nights, daysDifferent int) Suggestion {
	return Suggestion{
		CheckIn:       checkIn.Format(domain.DateFormat),
		CheckOut:      checkIn.AddDate(0, 0, nights).Format(domain.DateFormat),
		DaysDifferent: daysDifferent,
		TotalPrice:    roomType.BasePrice * float64(nights),
		AvgPerNight:   roomType.BasePrice,
	}
}

// sortSuggestions упорядочивает предложения явным компаратором: по цене,
// а внутри ценовой полосы PriceTieBand - по близости к предпочтительной дате.
// Это именно частичный порядок с полосой, а не многоключевая сортировка
func sortSuggestions(suggestions []Suggestion) {
	sort.Slice(suggestions, func(i, j int) bool {
		priceDiff := suggestions[i].TotalPrice - suggestions[j].TotalPrice
		if priceDiff >= -domain.PriceTieBand && priceDiff <= domain.PriceTieBand {
			return absInt(suggestions[i].DaysDifferent) < absInt(suggestions[j].DaysDifferent)
		}
		return priceDiff < 0
	})
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
