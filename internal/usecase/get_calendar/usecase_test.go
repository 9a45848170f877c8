package get_calendar

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

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type fakeAvailability struct {
	roomType    *domain.RoomType
	roomTypeErr error
	statuses    []*availabilityModels.DateStatus

	scanFrom time.Time
	scanTo   time.Time
}

func (f *fakeAvailability) GetRoomType(_ context.Context, _ int64) (*domain.RoomType, error) {
	return f.roomType, f.roomTypeErr
}

func (f *fakeAvailability) ScanDates(_ context.Context, _ *domain.RoomType, from, to time.Time) ([]*availabilityModels.DateStatus, error) {
	f.scanFrom = from
	f.scanTo = to
	return f.statuses, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testRoomType(totalUnits int) *domain.RoomType {
	return &domain.RoomType{ID: 1, PropertyID: 10, TotalUnits: totalUnits, IsActive: true, BasePrice: 100}
}

func TestExecute_RoomTypeNotFound(t *testing.T) {
	uc := NewUseCase(&fakeAvailability{roomTypeErr: availabilityService.ErrRoomTypeNotFound}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{RoomTypeID: 1, StartDate: date(2026, 7, 1), Months: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.RoomTypeID)
	assert.Empty(t, resp.Entries)
}

func TestExecute_RoomTypeNotBookable(t *testing.T) {
	inactive := testRoomType(10)
	inactive.IsActive = false
	uc := NewUseCase(&fakeAvailability{roomType: inactive}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{RoomTypeID: 1, StartDate: date(2026, 7, 1), Months: 1})
	require.NoError(t, err)
	assert.Empty(t, resp.Entries)
}

func TestExecute_EndDateInclusive(t *testing.T) {
	// one month from July 1 must scan through August 1 inclusive
	avail := &fakeAvailability{roomType: testRoomType(10)}
	uc := NewUseCase(avail, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RoomTypeID: 1, StartDate: date(2026, 7, 1), Months: 1})
	require.NoError(t, err)
	assert.Equal(t, date(2026, 7, 1), avail.scanFrom)
	assert.Equal(t, date(2026, 8, 2), avail.scanTo)
}

func TestExecute_DefaultsApplied(t *testing.T) {
	avail := &fakeAvailability{roomType: testRoomType(10)}
	uc := NewUseCase(avail, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: date(2026, 7, 15)}

	_, err := uc.Execute(context.Background(), &Request{RoomTypeID: 1})
	require.NoError(t, err)
	assert.Equal(t, date(2026, 7, 15), avail.scanFrom)
	assert.Equal(t, date(2027, 7, 16), avail.scanTo)
}

func TestExecute_Entries(t *testing.T) {
	avail := &fakeAvailability{
		roomType: testRoomType(10),
		statuses: []*availabilityModels.DateStatus{
			{Date: date(2026, 7, 1), Blocked: true, BlockReason: ptr.Ptr("Maintenance")},
			{Date: date(2026, 7, 2), BookedUnits: 4, EffectiveCapacity: 10, RemainingUnits: 6},
			{Date: date(2026, 7, 3), BookedUnits: 10, EffectiveCapacity: 10, RemainingUnits: 0},
			{Date: date(2026, 7, 4), BookedUnits: 12, EffectiveCapacity: 10, RemainingUnits: -2},
		},
	}
	uc := NewUseCase(avail, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{RoomTypeID: 1, StartDate: date(2026, 7, 1), Months: 1})
	require.NoError(t, err)
	require.Len(t, resp.Entries, 4)

	blocked := resp.Entries[0]
	assert.Equal(t, "2026-07-01", blocked.Date)
	assert.Equal(t, 0, blocked.AvailableUnits)
	assert.Equal(t, 100.0, blocked.OccupancyPercent)
	require.NotNil(t, blocked.Reason)
	assert.Equal(t, domain.ReasonBlocked, *blocked.Reason)

	open := resp.Entries[1]
	assert.Equal(t, 6, open.AvailableUnits)
	assert.Equal(t, 4, open.BookedUnits)
	assert.InDelta(t, 40.0, open.OccupancyPercent, 0.001)
	assert.Nil(t, open.Reason)
	assert.Nil(t, open.Price)

	full := resp.Entries[2]
	assert.Equal(t, 0, full.AvailableUnits)
	require.NotNil(t, full.Reason)
	assert.Equal(t, domain.ReasonFullyBooked, *full.Reason)

	// negative remainder is clamped to zero in the calendar
	overbooked := resp.Entries[3]
	assert.Equal(t, 0, overbooked.AvailableUnits)
	assert.InDelta(t, 120.0, overbooked.OccupancyPercent, 0.001)
	require.NotNil(t, overbooked.Reason)
	assert.Equal(t, domain.ReasonFullyBooked, *overbooked.Reason)
}

func TestExecute_ZeroTotalUnits(t *testing.T) {
	avail := &fakeAvailability{
		roomType: testRoomType(0),
		statuses: []*availabilityModels.DateStatus{
			{Date: date(2026, 7, 1), BookedUnits: 0, EffectiveCapacity: 0, RemainingUnits: 0},
		},
	}
	uc := NewUseCase(avail, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{RoomTypeID: 1, StartDate: date(2026, 7, 1), Months: 1})
	require.NoError(t, err)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, 0.0, resp.Entries[0].OccupancyPercent)
}

func TestExecute_NegativeMonthsRejected(t *testing.T) {
	uc := NewUseCase(&fakeAvailability{roomType: testRoomType(10)}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RoomTypeID: 1, StartDate: date(2026, 7, 1), Months: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
