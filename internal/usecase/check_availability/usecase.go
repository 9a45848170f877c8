package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/domain"
	availabilityService "github.com/Vzyree-619/FindoTrip-sub006/internal/service/availability"
	"github.com/Vzyree-619/FindoTrip-sub006/pkg/ptr"
)

// UseCase use case проверки доступности типа номера на диапазон дат
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

// Execute выполняет проверку доступности диапазона [checkIn, checkOut).
//
// Недоступность - нормальный результат, а не ошибка: отсутствующий или
// недоступный для бронирования тип номера возвращается как isAvailable=false.
// Ошибки возвращаются только при сбоях доступа к данным
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: room_type=%d, check_in=%s, check_out=%s, units=%d",
		req.RoomTypeID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.NumberOfUnits)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем тип номера
	roomType, err := uc.availability.GetRoomType(ctx, req.RoomTypeID)
	if err != nil {
		if errors.Is(err, availabilityService.ErrRoomTypeNotFound) {
			uc.logger.Warn("CheckAvailability: room type id=%d not found", req.RoomTypeID)
			return &Response{Reason: ptr.Ptr(ReasonRoomTypeNotFound)}, nil
		}
		return nil, fmt.Errorf("%w: failed to get room type: %v", ErrInternal, err)
	}

	if !roomType.IsBookable() {
		uc.logger.Info("CheckAvailability: room type id=%d is not bookable", req.RoomTypeID)
		return &Response{Reason: ptr.Ptr(ReasonNotBookable)}, nil
	}

	// 3. Сканируем весь диапазон дат
	statuses, err := uc.availability.ScanDates(ctx, roomType, req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to scan dates: %v", ErrInternal, err)
	}

	details, unavailableDates := buildDateDetails(statuses, req.NumberOfUnits)

	// 4. Любая недоступная дата закрывает весь диапазон,
	// проверки длительности проживания при этом не выполняются
	if len(unavailableDates) > 0 {
		return &Response{
			UnavailableDates: unavailableDates,
			Details:          details,
		}, nil
	}

	// 5. Ограничения длительности разрешаются только на дату заезда
	nights := domain.NightsBetween(req.CheckIn, req.CheckOut)

	minStay, err := uc.stayRules.GetMinimumStay(ctx, req.RoomTypeID, req.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve minimum stay: %v", ErrInternal, err)
	}
	if minStay != nil && nights < *minStay {
		return &Response{
			Reason:  ptr.Ptr(fmt.Sprintf("Minimum %d night(s) required", *minStay)),
			Details: details,
		}, nil
	}

	maxStay, err := uc.stayRules.GetMaximumStay(ctx, req.RoomTypeID, req.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve maximum stay: %v", ErrInternal, err)
	}
	if maxStay != nil && nights > *maxStay {
		return &Response{
			Reason:  ptr.Ptr(fmt.Sprintf("Maximum %d night(s) allowed", *maxStay)),
			Details: details,
		}, nil
	}

	// 6. Диапазон доступен, остаток берется с первой даты
	return &Response{
		IsAvailable:      true,
		AvailableUnits:   firstDateUnits(details, roomType),
		UnavailableDates: unavailableDates,
		Details:          details,
	}, nil
}
