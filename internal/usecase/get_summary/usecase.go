package get_summary

import (
	"context"
	"errors"
	"fmt"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/domain"
	availabilityService "github.com/Vzyree-619/FindoTrip-sub006/internal/service/availability"
)

// UseCase use case сводки доступности по диапазону дат
type UseCase struct {
	availability AvailabilityService
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availability AvailabilityService, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		logger:       logger,
	}
}

// Execute строит сводку по диапазону [startDate, endDate] (включительно).
// Отсутствующий или недоступный тип номера дает пустую сводку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSummary: room_type=%d, start=%s, end=%s",
		req.RoomTypeID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSummary: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем тип номера
	roomType, err := uc.availability.GetRoomType(ctx, req.RoomTypeID)
	if err != nil {
		if errors.Is(err, availabilityService.ErrRoomTypeNotFound) {
			uc.logger.Warn("GetSummary: room type id=%d not found", req.RoomTypeID)
			return &Response{RoomTypeID: req.RoomTypeID, Details: []DateDetail{}}, nil
		}
		return nil, fmt.Errorf("%w: failed to get room type: %v", ErrInternal, err)
	}

	if !roomType.IsBookable() {
		uc.logger.Info("GetSummary: room type id=%d is not bookable", req.RoomTypeID)
		return &Response{RoomTypeID: req.RoomTypeID, Details: []DateDetail{}}, nil
	}

	// 3. Сканируем диапазон, включая конечную дату
	statuses, err := uc.availability.ScanDates(ctx, roomType, req.StartDate, domain.NormalizeDate(req.EndDate).AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to scan dates: %v", ErrInternal, err)
	}

	return buildSummary(req.RoomTypeID, statuses), nil
}
