package check_date_range

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/domain"
	availabilityService "github.com/Vzyree-619/FindoTrip-sub006/internal/service/availability"
	availabilityModels "github.com/Vzyree-619/FindoTrip-sub006/internal/service/availability/models"
	"github.com/Vzyree-619/FindoTrip-sub006/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAvailability struct {
	roomType    *domain.RoomType
	roomTypeErr error
	statuses    []*availabilityModels.DateStatus
}

func (f *fakeAvailability) GetRoomType(_ context.Context, _ int64) (*domain.RoomType, error) {
	return f.roomType, f.roomTypeErr
}

func (f *fakeAvailability) ScanDates(_ context.Context, _ *domain.RoomType, _, _ time.Time) ([]*availabilityModels.DateStatus, error) {
	return f.statuses, nil
}

type fakeStayRules struct {
	minStay *int
	maxStay *int
}

func (f *fakeStayRules) ResolveRangeConstraints(_ context.Context, _ int64, _, _ time.Time) (*int, *int, error) {
	return f.minStay, f.maxStay, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testRoomType() *domain.RoomType {
	return &domain.RoomType{ID: 1, PropertyID: 10, TotalUnits: 10, IsActive: true, BasePrice: 100}
}

func TestExecute_RoomTypeNotFound(t *testing.T) {
	uc := NewUseCase(&fakeAvailability{roomTypeErr: availabilityService.ErrRoomTypeNotFound}, &fakeStayRules{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RoomTypeID: 1, CheckIn: date(2026, 7, 10), CheckOut: date(2026, 7, 12), NumberOfUnits: 1,
	})
	require.NoError(t, err)
	assert.False(t, resp.IsAvailable)
	require.NotNil(t, resp.Reason)
	assert.Equal(t, "Room type not found", *resp.Reason)
	assert.Empty(t, resp.Conflicts)
}

func TestExecute_AccumulatesAllConflicts(t *testing.T) {
	uc := NewUseCase(&fakeAvailability{
		roomType: testRoomType(),
		statuses: []*availabilityModels.DateStatus{
			{Date: date(2026, 7, 10), Blocked: true, BlockReason: ptr.Ptr("Renovation")},
			{Date: date(2026, 7, 11), BookedUnits: 8, EffectiveCapacity: 10, RemainingUnits: 2},
			{Date: date(2026, 7, 12), Blocked: true, BlockReason: ptr.Ptr(domain.DefaultBlockedReason)},
			{Date: date(2026, 7, 13), BookedUnits: 0, EffectiveCapacity: 10, RemainingUnits: 10},
		},
	}, &fakeStayRules{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RoomTypeID: 1, CheckIn: date(2026, 7, 10), CheckOut: date(2026, 7, 14), NumberOfUnits: 5,
	})
	require.NoError(t, err)
	assert.False(t, resp.IsAvailable)
	assert.Equal(t, 4, resp.NumberOfNights)
	require.Len(t, resp.Conflicts, 3)

	assert.Equal(t, "2026-07-10", resp.Conflicts[0].Date)
	assert.Equal(t, domain.ReasonBlocked, resp.Conflicts[0].Type)
	assert.Equal(t, "Renovation", resp.Conflicts[0].Reason)

	assert.Equal(t, "2026-07-11", resp.Conflicts[1].Date)
	assert.Equal(t, domain.ReasonFullyBooked, resp.Conflicts[1].Type)
	assert.Equal(t, "Only 2 available, need 5", resp.Conflicts[1].Reason)
	assert.Equal(t, 2, resp.Conflicts[1].AvailableUnits)
	assert.Equal(t, 5, resp.Conflicts[1].RequestedUnits)

	assert.Equal(t, "2026-07-12", resp.Conflicts[2].Date)
	assert.Equal(t, domain.ReasonBlocked, resp.Conflicts[2].Type)
}

func TestExecute_CleanRange(t *testing.T) {
	minStay := ptr.Ptr(2)
	maxStay := ptr.Ptr(14)

	uc := NewUseCase(&fakeAvailability{
		roomType: testRoomType(),
		statuses: []*availabilityModels.DateStatus{
			{Date: date(2026, 7, 10), EffectiveCapacity: 10, RemainingUnits: 10},
			{Date: date(2026, 7, 11), EffectiveCapacity: 10, RemainingUnits: 10},
			{Date: date(2026, 7, 12), EffectiveCapacity: 10, RemainingUnits: 10},
		},
	}, &fakeStayRules{minStay: minStay, maxStay: maxStay}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RoomTypeID: 1, CheckIn: date(2026, 7, 10), CheckOut: date(2026, 7, 13), NumberOfUnits: 1,
	})
	require.NoError(t, err)
	assert.True(t, resp.IsAvailable)
	assert.Nil(t, resp.Reason)
	assert.Empty(t, resp.Conflicts)
	assert.Equal(t, 3, resp.NumberOfNights)
	assert.Equal(t, minStay, resp.MinStay)
	assert.Equal(t, maxStay, resp.MaxStay)
}

func TestExecute_RangeMinStayViolation(t *testing.T) {
	uc := NewUseCase(&fakeAvailability{
		roomType: testRoomType(),
		statuses: []*availabilityModels.DateStatus{
			{Date: date(2026, 7, 10), EffectiveCapacity: 10, RemainingUnits: 10},
		},
	}, &fakeStayRules{minStay: ptr.Ptr(3)}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RoomTypeID: 1, CheckIn: date(2026, 7, 10), CheckOut: date(2026, 7, 11), NumberOfUnits: 1,
	})
	require.NoError(t, err)
	assert.False(t, resp.IsAvailable)
	require.NotNil(t, resp.Reason)
	assert.Equal(t, "Minimum 3 night(s) required", *resp.Reason)
	require.NotNil(t, resp.MinStay)
	assert.Equal(t, 3, *resp.MinStay)
}

func TestExecute_StayChecksSkippedWithConflicts(t *testing.T) {
	uc := NewUseCase(&fakeAvailability{
		roomType: testRoomType(),
		statuses: []*availabilityModels.DateStatus{
			{Date: date(2026, 7, 10), Blocked: true, BlockReason: ptr.Ptr(domain.DefaultBlockedReason)},
		},
	}, &fakeStayRules{minStay: ptr.Ptr(30)}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RoomTypeID: 1, CheckIn: date(2026, 7, 10), CheckOut: date(2026, 7, 11), NumberOfUnits: 1,
	})
	require.NoError(t, err)
	assert.False(t, resp.IsAvailable)
	assert.Nil(t, resp.Reason)
	assert.Len(t, resp.Conflicts, 1)
	assert.Nil(t, resp.MinStay)
}
