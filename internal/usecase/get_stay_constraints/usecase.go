package get_stay_constraints

import (
	"context"
	"errors"
	"fmt"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/domain"
	"github.com/Vzyree-619/FindoTrip-sub006/internal/service/stayrules"
)

// UseCase use case чтения ограничений длительности проживания на дату
type UseCase struct {
	stayRules StayRulesService
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(stayRules StayRulesService, logger Logger) *UseCase {
	return &UseCase{
		stayRules: stayRules,
		logger:    logger,
	}
}

// Execute возвращает действующие на дату минимальную и максимальную
// длительность проживания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.RoomTypeID <= 0 {
		return nil, fmt.Errorf("%w: roomTypeID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Разрешаем оба ограничения на запрошенную дату
	minStay, err := uc.stayRules.GetMinimumStay(ctx, req.RoomTypeID, req.Date)
	if err != nil {
		if errors.Is(err, stayrules.ErrRoomTypeNotFound) {
			uc.logger.Warn("GetStayConstraints: room type id=%d not found", req.RoomTypeID)
			return nil, ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("%w: failed to resolve minimum stay: %v", ErrInternal, err)
	}

	maxStay, err := uc.stayRules.GetMaximumStay(ctx, req.RoomTypeID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve maximum stay: %v", ErrInternal, err)
	}

	return &Response{
		RoomTypeID: req.RoomTypeID,
		Date:       domain.NormalizeDate(req.Date).Format(domain.DateFormat),
		MinStay:    minStay,
		MaxStay:    maxStay,
	}, nil
}
