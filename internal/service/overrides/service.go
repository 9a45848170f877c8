package overrides

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/domain"
	overrideRepo "github.com/Vzyree-619/FindoTrip-sub006/internal/infra/storage/override"
	roomTypeRepo "github.com/Vzyree-619/FindoTrip-sub006/internal/infra/storage/roomtype"
	"github.com/Vzyree-619/FindoTrip-sub006/internal/service/overrides/models"
)

// Максимальная длина диапазона при массовой блокировке дат
const maxBlockRangeDays = 366

// Service сервис управления переопределениями дат (админский контур)
type Service struct {
	roomTypeRepo RoomTypeRepository
	overrideRepo OverrideRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса переопределений
func NewService(
	roomTypeRepo RoomTypeRepository,
	overrideRepo OverrideRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		roomTypeRepo: roomTypeRepo,
		overrideRepo: overrideRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Upsert создает или обновляет переопределение на дату.
// Запись уникальна по паре (roomTypeId, date)
func (s *Service) Upsert(ctx context.Context, req *models.UpsertOverrideRequest) (*models.OverrideResponse, error) {
	// 1. Валидация входных данных
	if err := validateUpsertRequest(req); err != nil {
		return nil, err
	}

	// 2. Проверяем существование типа номера
	if err := s.checkRoomTypeExists(ctx, req.RoomTypeID); err != nil {
		return nil, err
	}

	// 3. Предупреждаем, если блокируется дата с активными бронированиями
	if req.IsBlocked {
		s.warnIfBooked(ctx, req.RoomTypeID, req.Date)
	}

	// 4. Сохраняем переопределение
	saved, err := s.overrideRepo.Upsert(ctx, req.ToDomainOverride())
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - failed to save override: %v", ErrInternal, err)
	}

	s.logger.Info("[overrides.Upsert] Saved override for room type %d on %s (blocked=%v)",
		saved.RoomTypeID, saved.Date.Format(domain.DateFormat), saved.IsBlocked)

	return models.FromDomainOverride(saved), nil
}

// Delete удаляет переопределение на дату
func (s *Service) Delete(ctx context.Context, userID, roomTypeID int64, date time.Time) error {
	if roomTypeID <= 0 {
		return fmt.Errorf("%w: room type ID must be positive", ErrInvalidInput)
	}

	if err := s.checkRoomTypeExists(ctx, roomTypeID); err != nil {
		return err
	}

	err := s.overrideRepo.Delete(ctx, roomTypeID, domain.NormalizeDate(date))
	if err != nil {
		if errors.Is(err, overrideRepo.ErrOverrideNotFound) {
			return ErrOverrideNotFound
		}
		return fmt.Errorf("%w: Delete - failed to delete override: %v", ErrInternal, err)
	}

	s.logger.Info("[overrides.Delete] Removed override for room type %d on %s (user %d)",
		roomTypeID, date.Format(domain.DateFormat), userID)

	return nil
}

// SetBlockedRange блокирует все даты диапазона [startDate, endDate] (включительно)
// одной транзакцией: либо заблокированы все даты, либо ни одной
func (s *Service) SetBlockedRange(ctx context.Context, req *models.BlockRangeRequest) (*models.BlockRangeResponse, error) {
	// 1. Валидация входных данных
	if req.RoomTypeID <= 0 {
		return nil, fmt.Errorf("%w: room type ID must be positive", ErrInvalidInput)
	}

	start := domain.NormalizeDate(req.StartDate)
	end := domain.NormalizeDate(req.EndDate)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date must not be before start date", ErrInvalidInput)
	}

	days := int(end.Sub(start).Hours()/24) + 1
	if days > maxBlockRangeDays {
		return nil, fmt.Errorf("%w: range of %d days exceeds limit of %d", ErrRangeTooLong, days, maxBlockRangeDays)
	}

	// 2. Проверяем существование типа номера
	if err := s.checkRoomTypeExists(ctx, req.RoomTypeID); err != nil {
		return nil, err
	}

	// 3. Блокируем все даты диапазона в одной транзакции
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			s.warnIfBooked(ctx, req.RoomTypeID, day)

			_, err := s.overrideRepo.Upsert(ctx, &domain.DateOverride{
				RoomTypeID: req.RoomTypeID,
				Date:       day,
				IsBlocked:  true,
				Reason:     req.Reason,
			})
			if err != nil {
				return fmt.Errorf("failed to block %s: %w", day.Format(domain.DateFormat), err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: SetBlockedRange - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("[overrides.SetBlockedRange] Blocked %d date(s) for room type %d (user %d)",
		days, req.RoomTypeID, req.UserID)

	return &models.BlockRangeResponse{
		RoomTypeID:   req.RoomTypeID,
		StartDate:    start.Format(domain.DateFormat),
		EndDate:      end.Format(domain.DateFormat),
		BlockedDates: days,
	}, nil
}

// checkRoomTypeExists проверяет существование типа номера
func (s *Service) checkRoomTypeExists(ctx context.Context, roomTypeID int64) error {
	_, err := s.roomTypeRepo.GetByID(ctx, roomTypeID)
	if err != nil {
		if errors.Is(err, roomTypeRepo.ErrRoomTypeNotFound) {
			return ErrRoomTypeNotFound
		}
		return fmt.Errorf("%w: failed to get room type: %v", ErrInternal, err)
	}
	return nil
}

// warnIfBooked пишет предупреждение в лог, если на блокируемую дату
// уже есть активные бронирования. Блокировку это не останавливает
func (s *Service) warnIfBooked(ctx context.Context, roomTypeID int64, date time.Time) {
	booked, err := s.bookingRepo.SumUnitsOnDate(ctx, roomTypeID, date, domain.ExcludedStatuses)
	if err != nil {
		s.logger.Error("[overrides] Failed to check bookings for room type %d on %s: %v",
			roomTypeID, date.Format(domain.DateFormat), err)
		return
	}
	if booked > 0 {
		s.logger.Warn("[overrides] Blocking date %s for room type %d with %d booked unit(s)",
			date.Format(domain.DateFormat), roomTypeID, booked)
	}
}

func validateUpsertRequest(req *models.UpsertOverrideRequest) error {
	if req.RoomTypeID <= 0 {
		return fmt.Errorf("%w: room type ID must be positive", ErrInvalidInput)
	}
	if req.UnitsOverride != nil && *req.UnitsOverride < 0 {
		return fmt.Errorf("%w: units override must not be negative", ErrInvalidInput)
	}
	if req.MinStay != nil && *req.MinStay < 1 {
		return fmt.Errorf("%w: min stay must be at least 1", ErrInvalidInput)
	}
	if req.MaxStay != nil && *req.MaxStay < 1 {
		return fmt.Errorf("%w: max stay must be at least 1", ErrInvalidInput)
	}
	if req.MinStay != nil && req.MaxStay != nil && *req.MaxStay < *req.MinStay {
		return fmt.Errorf("%w: max stay must not be less than min stay", ErrInvalidInput)
	}
	return nil
}
