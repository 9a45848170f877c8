package get_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/domain"
	availabilityService "github.com/Vzyree-619/FindoTrip-sub006/internal/service/availability"
)

// UseCase use case построения посуточного календаря доступности
type UseCase struct {
	availability AvailabilityService
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availability AvailabilityService,
	logger Logger,
) *UseCase {
	return &UseCase{
		availability: availability,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute строит календарь на months месяцев начиная со startDate.
// Конечная дата диапазона входит в календарь: последняя запись
// приходится ровно на startDate + months месяцев
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Значения по умолчанию
	startDate := req.StartDate
	if startDate.IsZero() {
		startDate = uc.timeProvider.Now()
	}
	startDate = domain.NormalizeDate(startDate)

	months := req.Months
	if months == 0 {
		months = domain.DefaultCalendarMonths
	}

	endDate := startDate.AddDate(0, months, 0)

	uc.logger.Info("GetCalendar: room_type=%d, start=%s, months=%d",
		req.RoomTypeID, startDate.Format(domain.DateFormat), months)

	// 3. Получаем тип номера: отсутствующий или недоступный дает пустой календарь
	roomType, err := uc.availability.GetRoomType(ctx, req.RoomTypeID)
	if err != nil {
		if errors.Is(err, availabilityService.ErrRoomTypeNotFound) {
			uc.logger.Warn("GetCalendar: room type id=%d not found", req.RoomTypeID)
			return &Response{RoomTypeID: req.RoomTypeID, Entries: []CalendarEntry{}}, nil
		}
		return nil, fmt.Errorf("%w: failed to get room type: %v", ErrInternal, err)
	}

	if !roomType.IsBookable() {
		uc.logger.Info("GetCalendar: room type id=%d is not bookable", req.RoomTypeID)
		return &Response{RoomTypeID: req.RoomTypeID, Entries: []CalendarEntry{}}, nil
	}

	// 4. Сканируем диапазон, включая конечную дату
	statuses, err := uc.availability.ScanDates(ctx, roomType, startDate, endDate.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to scan dates: %v", ErrInternal, err)
	}

	return &Response{
		RoomTypeID: req.RoomTypeID,
		Entries:    buildCalendar(statuses, roomType),
	}, nil
}
