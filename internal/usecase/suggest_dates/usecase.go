package suggest_dates

import (
	"context"
	"errors"
	"fmt"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/domain"
	availabilityService "github.com/Vzyree-619/FindoTrip-sub006/internal/service/availability"
)

// UseCase use case подбора альтернативных окон дат
type UseCase struct {
	availability AvailabilityService
	stayRules    StayRulesService
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availability AvailabilityService,
	stayRules StayRulesService,
	logger Logger,
) *UseCase {
	return &UseCase{
		availability: availability,
		stayRules:    stayRules,
		logger:       logger,
	}
}

// Execute перебирает окна со смещением 1..searchRadius в обе стороны от
// предпочтительной даты заезда (сама дата уже не подошла вызывающему).
//
// Направление "после" ограничено пятью предложениями, направление "до" -
// только радиусом поиска. Итог сортируется по цене с ценовой полосой,
// внутри которой побеждает близость к предпочтительной дате
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SuggestDates: room_type=%d, preferred=%s, nights=%d, radius=%d",
		req.RoomTypeID, req.PreferredCheckIn.Format(domain.DateFormat), req.NumberOfNights, req.SearchRadius)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SuggestDates: validation failed: %v", err)
		return nil, err
	}

	radius := req.SearchRadius
	if radius == 0 {
		radius = domain.DefaultSearchRadiusDays
	}

	// 2. Получаем тип номера: без него предлагать нечего
	roomType, err := uc.availability.GetRoomType(ctx, req.RoomTypeID)
	if err != nil {
		if errors.Is(err, availabilityService.ErrRoomTypeNotFound) {
			uc.logger.Warn("SuggestDates: room type id=%d not found", req.RoomTypeID)
			return &Response{RoomTypeID: req.RoomTypeID, Suggestions: []Suggestion{}}, nil
		}
		return nil, fmt.Errorf("%w: failed to get room type: %v", ErrInternal, err)
	}

	if !roomType.IsBookable() {
		uc.logger.Info("SuggestDates: room type id=%d is not bookable", req.RoomTypeID)
		return &Response{RoomTypeID: req.RoomTypeID, Suggestions: []Suggestion{}}, nil
	}

	preferred := domain.NormalizeDate(req.PreferredCheckIn)
	suggestions := make([]Suggestion, 0)
	afterCount := 0

	// 3. Перебираем кандидатов с растущим смещением
	for offset := 1; offset <= radius; offset++ {
		before := preferred.AddDate(0, 0, -offset)
		ok, err := uc.windowAvailable(ctx, roomType, before, req.NumberOfNights)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		if ok {
			suggestions = append(suggestions, newSuggestion(roomType, before, req.NumberOfNights, -offset))
		}

		if afterCount >= domain.MaxForwardSuggestions {
			continue
		}

		after := preferred.AddDate(0, 0, offset)
		ok, err = uc.windowAvailable(ctx, roomType, after, req.NumberOfNights)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		if ok {
			suggestions = append(suggestions, newSuggestion(roomType, after, req.NumberOfNights, offset))
			afterCount++
		}
	}

	// 4. Ранжируем явным компаратором
	sortSuggestions(suggestions)

	uc.logger.Info("SuggestDates: room_type=%d, found %d suggestion(s)", req.RoomTypeID, len(suggestions))

	return &Response{
		RoomTypeID:  req.RoomTypeID,
		Suggestions: suggestions,
	}, nil
}
