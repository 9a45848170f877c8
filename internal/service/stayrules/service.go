package stayrules

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/domain"
	overrideRepo "github.com/Vzyree-619/FindoTrip-sub006/internal/infra/storage/override"
	roomTypeRepo "github.com/Vzyree-619/FindoTrip-sub006/internal/infra/storage/roomtype"
)

// Service сервис разрешения ограничений длительности проживания
//
// Значение min/max stay для даты разрешается по цепочке приоритетов:
//  1. Переопределение даты (room_date_overrides)
//  2. Активное сезонное правило с наибольшим приоритетом
//  3. Активное событийное правило (только для минимальной длительности
//     в одиночном разрешении; максимальная длительность из событийных правил
//     участвует только в разрешении по диапазону)
type Service struct {
	roomTypeRepo RoomTypeRepository
	overrideRepo OverrideRepository
	ruleRepo     PricingRuleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса ограничений проживания
func NewService(
	roomTypeRepo RoomTypeRepository,
	overrideRepo OverrideRepository,
	ruleRepo PricingRuleRepository,
	logger Logger,
) *Service {
	return &Service{
		roomTypeRepo: roomTypeRepo,
		overrideRepo: overrideRepo,
		ruleRepo:     ruleRepo,
		logger:       logger,
	}
}

// GetMinimumStay возвращает минимальную длительность проживания (в ночах),
// действующую для типа номера на указанную дату, или nil, если ограничения нет
func (s *Service) GetMinimumStay(ctx context.Context, roomTypeID int64, date time.Time) (*int, error) {
	roomType, err := s.getRoomType(ctx, roomTypeID)
	if err != nil {
		return nil, err
	}

	day := domain.NormalizeDate(date)

	// 1. Переопределение даты имеет высший приоритет
	ovr, err := s.getOverride(ctx, roomTypeID, day)
	if err != nil {
		return nil, err
	}
	if ovr != nil && ovr.MinStay != nil {
		return ovr.MinStay, nil
	}

	// 2. Сезонное правило с наибольшим приоритетом
	topSeasonal, err := s.topSeasonalRule(ctx, roomType, day)
	if err != nil {
		return nil, err
	}
	if topSeasonal != nil && topSeasonal.MinStay != nil {
		return topSeasonal.MinStay, nil
	}

	// 3. Первое активное событийное правило
	event, err := s.firstEventRule(ctx, roomType, day)
	if err != nil {
		return nil, err
	}
	if event != nil {
		return event.MinStay, nil
	}

	return nil, nil
}

// GetMaximumStay возвращает максимальную длительность проживания (в ночах),
// действующую для типа номера на указанную дату, или nil, если ограничения нет
//
// В отличие от GetMinimumStay событийные правила здесь НЕ учитываются:
// максимальную длительность для одиночной даты задают только переопределение
// и сезонное правило
func (s *Service) GetMaximumStay(ctx context.Context, roomTypeID int64, date time.Time) (*int, error) {
	roomType, err := s.getRoomType(ctx, roomTypeID)
	if err != nil {
		return nil, err
	}

	day := domain.NormalizeDate(date)

	// 1. Переопределение даты имеет высший приоритет
	ovr, err := s.getOverride(ctx, roomTypeID, day)
	if err != nil {
		return nil, err
	}
	if ovr != nil && ovr.MaxStay != nil {
		return ovr.MaxStay, nil
	}

	// 2. Сезонное правило с наибольшим приоритетом - последний источник
	topSeasonal, err := s.topSeasonalRule(ctx, roomType, day)
	if err != nil {
		return nil, err
	}
	if topSeasonal != nil {
		return topSeasonal.MaxStay, nil
	}

	return nil, nil
}

// ResolveRangeConstraints разрешает ограничения длительности для всего диапазона
// [checkIn, checkOut): для каждой даты берется действующее значение, итог -
// максимум из минимумов и минимум из максимумов
//
// В отличие от одиночного разрешения здесь событийные правила дают и максимальную
// длительность тоже
func (s *Service) ResolveRangeConstraints(ctx context.Context, roomTypeID int64, checkIn, checkOut time.Time) (minStay *int, maxStay *int, err error) {
	roomType, err := s.getRoomType(ctx, roomTypeID)
	if err != nil {
		return nil, nil, err
	}

	from := domain.NormalizeDate(checkIn)
	to := domain.NormalizeDate(checkOut)
	if !from.Before(to) {
		return nil, nil, nil
	}

	// Последняя занимаемая дата - checkOut минус один день
	lastNight := to.AddDate(0, 0, -1)

	// Batch-загрузка всех источников на диапазон одним запросом на источник
	overrides, err := s.overrideRepo.ListByRoomTypeAndRange(ctx, roomTypeID, from, lastNight)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: ResolveRangeConstraints - load overrides: %v", ErrInternal, err)
	}

	seasonal, err := s.ruleRepo.ListSeasonalForRange(ctx, roomType.PropertyID, roomTypeID, from, lastNight)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: ResolveRangeConstraints - load seasonal rules: %v", ErrInternal, err)
	}

	events, err := s.ruleRepo.ListEventForRange(ctx, roomType.PropertyID, roomTypeID, from, lastNight)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: ResolveRangeConstraints - load event rules: %v", ErrInternal, err)
	}

	overrideByDate := make(map[string]*domain.DateOverride, len(overrides))
	for _, ovr := range overrides {
		overrideByDate[ovr.Date.Format(domain.DateFormat)] = ovr
	}

	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		dayMin := resolveMinAt(d, overrideByDate, seasonal, events)
		if dayMin != nil && (minStay == nil || *dayMin > *minStay) {
			minStay = dayMin
		}

		dayMax := resolveMaxAt(d, overrideByDate, seasonal, events)
		if dayMax != nil && (maxStay == nil || *dayMax < *maxStay) {
			maxStay = dayMax
		}
	}

	return minStay, maxStay, nil
}

// resolveMinAt разрешает минимальную длительность для одной даты из
// предзагруженных источников: переопределение -> сезонное правило -> событийное
func resolveMinAt(date time.Time, overrideByDate map[string]*domain.DateOverride, seasonal []*domain.SeasonalRule, events []*domain.EventRule) *int {
	if ovr, ok := overrideByDate[date.Format(domain.DateFormat)]; ok && ovr.MinStay != nil {
		return ovr.MinStay
	}

	// Список отсортирован по приоритету, первое подходящее правило - действующее
	for _, rule := range seasonal {
		if rule.Contains(date) {
			if rule.MinStay != nil {
				return rule.MinStay
			}
			break
		}
	}

	for _, rule := range events {
		if rule.Contains(date) {
			return rule.MinStay
		}
	}

	return nil
}

// resolveMaxAt разрешает максимальную длительность для одной даты из
// предзагруженных источников, включая событийные правила
func resolveMaxAt(date time.Time, overrideByDate map[string]*domain.DateOverride, seasonal []*domain.SeasonalRule, events []*domain.EventRule) *int {
	if ovr, ok := overrideByDate[date.Format(domain.DateFormat)]; ok && ovr.MaxStay != nil {
		return ovr.MaxStay
	}

	for _, rule := range seasonal {
		if rule.Contains(date) {
			if rule.MaxStay != nil {
				return rule.MaxStay
			}
			break
		}
	}

	for _, rule := range events {
		if rule.Contains(date) {
			return rule.MaxStay
		}
	}

	return nil
}

// getRoomType получает тип номера с маппингом ошибок репозитория
func (s *Service) getRoomType(ctx context.Context, roomTypeID int64) (*domain.RoomType, error) {
	roomType, err := s.roomTypeRepo.GetByID(ctx, roomTypeID)
	if err != nil {
		if errors.Is(err, roomTypeRepo.ErrRoomTypeNotFound) {
			s.logger.Warn("stayrules: room type id=%d not found", roomTypeID)
			return nil, ErrRoomTypeNotFound
		}
		s.logger.Error("stayrules: failed to get room type id=%d: %v", roomTypeID, err)
		return nil, fmt.Errorf("%w: failed to get room type: %v", ErrInternal, err)
	}
	return roomType, nil
}

// getOverride получает переопределение даты, отсутствие записи не является ошибкой
func (s *Service) getOverride(ctx context.Context, roomTypeID int64, date time.Time) (*domain.DateOverride, error) {
	ovr, err := s.overrideRepo.GetByRoomTypeAndDate(ctx, roomTypeID, date)
	if err != nil {
		if errors.Is(err, overrideRepo.ErrOverrideNotFound) {
			return nil, nil
		}
		s.logger.Error("stayrules: failed to get override for room_type=%d date=%s: %v",
			roomTypeID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get date override: %v", ErrInternal, err)
	}
	return ovr, nil
}

// topSeasonalRule возвращает действующее на дату сезонное правило с наибольшим
// приоритетом или nil, если подходящих правил нет
func (s *Service) topSeasonalRule(ctx context.Context, roomType *domain.RoomType, date time.Time) (*domain.SeasonalRule, error) {
	rules, err := s.ruleRepo.ListSeasonalForRange(ctx, roomType.PropertyID, roomType.ID, date, date)
	if err != nil {
		s.logger.Error("stayrules: failed to list seasonal rules for room_type=%d date=%s: %v",
			roomType.ID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to list seasonal rules: %v", ErrInternal, err)
	}

	for _, rule := range rules {
		if rule.Contains(date) {
			return rule, nil
		}
	}
	return nil, nil
}

// firstEventRule возвращает первое действующее на дату событийное правило
// или nil, если подходящих правил нет
func (s *Service) firstEventRule(ctx context.Context, roomType *domain.RoomType, date time.Time) (*domain.EventRule, error) {
	rules, err := s.ruleRepo.ListEventForRange(ctx, roomType.PropertyID, roomType.ID, date, date)
	if err != nil {
		s.logger.Error("stayrules: failed to list event rules for room_type=%d date=%s: %v",
			roomType.ID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to list event rules: %v", ErrInternal, err)
	}

	for _, rule := range rules {
		if rule.Contains(date) {
			return rule, nil
		}
	}
	return nil, nil
}
