package check_date_range

import (
	"context"
	"errors"
	"fmt"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/domain"
	availabilityService "github.com/Vzyree-619/FindoTrip-sub006/internal/service/availability"
	"github.com/Vzyree-619/FindoTrip-sub006/pkg/ptr"
)

// UseCase use case проверки диапазона дат с накоплением конфликтов
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

// Execute проверяет диапазон [checkIn, checkOut) и возвращает полный список
// конфликтов по датам вместо первой найденной проблемы.
//
// Ограничения длительности разрешаются по всему диапазону (максимум из
// минимумов, минимум из максимумов), а не только на дату заезда - это
// сознательное отличие от итоговой проверки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckDateRange: room_type=%d, check_in=%s, check_out=%s, units=%d",
		req.RoomTypeID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.NumberOfUnits)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckDateRange: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем тип номера
	roomType, err := uc.availability.GetRoomType(ctx, req.RoomTypeID)
	if err != nil {
		if errors.Is(err, availabilityService.ErrRoomTypeNotFound) {
			uc.logger.Warn("CheckDateRange: room type id=%d not found", req.RoomTypeID)
			return &Response{Reason: ptr.Ptr(ReasonRoomTypeNotFound), Conflicts: []Conflict{}}, nil
		}
		return nil, fmt.Errorf("%w: failed to get room type: %v", ErrInternal, err)
	}

	if !roomType.IsBookable() {
		uc.logger.Info("CheckDateRange: room type id=%d is not bookable", req.RoomTypeID)
		return &Response{Reason: ptr.Ptr(ReasonNotBookable), Conflicts: []Conflict{}}, nil
	}

	// 3. Сканируем весь диапазон и накапливаем конфликты
	statuses, err := uc.availability.ScanDates(ctx, roomType, req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to scan dates: %v", ErrInternal, err)
	}

	conflicts := buildConflicts(statuses, req.NumberOfUnits)
	nights := domain.NightsBetween(req.CheckIn, req.CheckOut)

	if len(conflicts) > 0 {
		return &Response{
			Conflicts:      conflicts,
			NumberOfNights: nights,
		}, nil
	}

	// 4. Ограничения длительности по всему диапазону
	minStay, maxStay, err := uc.stayRules.ResolveRangeConstraints(ctx, req.RoomTypeID, req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve stay constraints: %v", ErrInternal, err)
	}

	if minStay != nil && nights < *minStay {
		return &Response{
			Reason:         ptr.Ptr(fmt.Sprintf("Minimum %d night(s) required", *minStay)),
			Conflicts:      conflicts,
			NumberOfNights: nights,
			MinStay:        minStay,
			MaxStay:        maxStay,
		}, nil
	}

	if maxStay != nil && nights > *maxStay {
		return &Response{
			Reason:         ptr.Ptr(fmt.Sprintf("Maximum %d night(s) allowed", *maxStay)),
			Conflicts:      conflicts,
			NumberOfNights: nights,
			MinStay:        minStay,
			MaxStay:        maxStay,
		}, nil
	}

	return &Response{
		IsAvailable:    true,
		Conflicts:      conflicts,
		NumberOfNights: nights,
		MinStay:        minStay,
		MaxStay:        maxStay,
	}, nil
}
