package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/domain"
	roomTypeRepo "github.com/Vzyree-619/FindoTrip-sub006/internal/infra/storage/roomtype"
	"github.com/Vzyree-619/FindoTrip-sub006/internal/service/availability/models"
)

// Service сервис посуточного сканирования доступности.
//
// Вместо отдельных запросов на каждую дату диапазона сервис делает по одному
// range-запросу на источник (переопределения, пересекающиеся бронирования)
// и разрешает каждую дату из предзагруженных данных в памяти
type Service struct {
	roomTypeRepo RoomTypeRepository
	overrideRepo OverrideRepository
	bookingRepo  BookingRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	roomTypeRepo RoomTypeRepository,
	overrideRepo OverrideRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		roomTypeRepo: roomTypeRepo,
		overrideRepo: overrideRepo,
		bookingRepo:  bookingRepo,
		logger:       logger,
	}
}

// GetRoomType возвращает тип номера или ErrRoomTypeNotFound
func (s *Service) GetRoomType(ctx context.Context, roomTypeID int64) (*domain.RoomType, error) {
	roomType, err := s.roomTypeRepo.GetByID(ctx, roomTypeID)
	if err != nil {
		if errors.Is(err, roomTypeRepo.ErrRoomTypeNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		s.logger.Error("availability: failed to get room type id=%d: %v", roomTypeID, err)
		return nil, fmt.Errorf("%w: failed to get room type: %v", ErrInternal, err)
	}
	return roomType, nil
}

// ScanDates сканирует даты диапазона [from, to) и возвращает состояние каждой
// даты в хронологическом порядке. Для вырожденного диапазона (to <= from)
// возвращается пустой список без обращений к хранилищу.
//
// Для заблокированной даты занятость не считается: переопределение с
// is_blocked закрывает дату независимо от бронирований
func (s *Service) ScanDates(ctx context.Context, roomType *domain.RoomType, from, to time.Time) ([]*models.DateStatus, error) {
	start := domain.NormalizeDate(from)
	end := domain.NormalizeDate(to)
	if !start.Before(end) {
		return []*models.DateStatus{}, nil
	}

	// Последняя занимаемая дата диапазона
	lastNight := end.AddDate(0, 0, -1)

	overrides, err := s.overrideRepo.ListByRoomTypeAndRange(ctx, roomType.ID, start, lastNight)
	if err != nil {
		s.logger.Error("availability: failed to list overrides for room_type=%d: %v", roomType.ID, err)
		return nil, fmt.Errorf("%w: ScanDates - load overrides: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.ListOverlapping(ctx, roomType.ID, start, lastNight, domain.ExcludedStatuses)
	if err != nil {
		s.logger.Error("availability: failed to list bookings for room_type=%d: %v", roomType.ID, err)
		return nil, fmt.Errorf("%w: ScanDates - load bookings: %v", ErrInternal, err)
	}

	overrideByDate := make(map[string]*domain.DateOverride, len(overrides))
	for _, ovr := range overrides {
		overrideByDate[ovr.Date.Format(domain.DateFormat)] = ovr
	}

	statuses := make([]*models.DateStatus, 0, int(end.Sub(start).Hours()/24))

	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		ovr := overrideByDate[day.Format(domain.DateFormat)]

		if ovr != nil && ovr.IsBlocked {
			reason := ovr.BlockReason()
			statuses = append(statuses, &models.DateStatus{
				Date:        day,
				Blocked:     true,
				BlockReason: &reason,
			})
			continue
		}

		booked := domain.UnitsOnDate(bookings, day)
		capacity := ovr.EffectiveUnits(roomType.TotalUnits)

		statuses = append(statuses, &models.DateStatus{
			Date:              day,
			BookedUnits:       booked,
			EffectiveCapacity: capacity,
			RemainingUnits:    capacity - booked,
		})
	}

	return statuses, nil
}
