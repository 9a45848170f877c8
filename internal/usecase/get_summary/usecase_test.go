package get_summary

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

func testRoomType() *domain.RoomType {
	return &domain.RoomType{ID: 1, PropertyID: 10, TotalUnits: 10, IsActive: true, BasePrice: 100}
}

func TestExecute_RoomTypeNotFound(t *testing.T) {
	uc := NewUseCase(&fakeAvailability{roomTypeErr: availabilityService.ErrRoomTypeNotFound}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RoomTypeID: 1, StartDate: date(2026, 7, 1), EndDate: date(2026, 7, 5),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Details)
	assert.Equal(t, 0, resp.TotalDates)
}

func TestExecute_EndDateInclusive(t *testing.T) {
	avail := &fakeAvailability{roomType: testRoomType()}
	uc := NewUseCase(avail, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		RoomTypeID: 1, StartDate: date(2026, 7, 1), EndDate: date(2026, 7, 5),
	})
	require.NoError(t, err)
	assert.Equal(t, date(2026, 7, 6), avail.scanTo)
}

func TestExecute_Aggregation(t *testing.T) {
	avail := &fakeAvailability{
		roomType: testRoomType(),
		statuses: []*availabilityModels.DateStatus{
			{Date: date(2026, 7, 1), BookedUnits: 2, EffectiveCapacity: 10, RemainingUnits: 8},
			{Date: date(2026, 7, 2), Blocked: true, BlockReason: ptr.Ptr("Maintenance")},
			{Date: date(2026, 7, 3), BookedUnits: 10, EffectiveCapacity: 10, RemainingUnits: 0},
			{Date: date(2026, 7, 4), BookedUnits: 7, EffectiveCapacity: 10, RemainingUnits: 3},
		},
	}
	uc := NewUseCase(avail, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RoomTypeID: 1, StartDate: date(2026, 7, 1), EndDate: date(2026, 7, 4),
	})
	require.NoError(t, err)

	assert.Equal(t, 4, resp.TotalDates)
	assert.Equal(t, 2, resp.AvailableDates)
	assert.Equal(t, 1, resp.BlockedDates)
	assert.Equal(t, 1, resp.FullyBookedDates)
	// the blocked date contributes zero available units to the minimum
	assert.Equal(t, 0, resp.MinAvailableUnits)
	assert.Equal(t, 8, resp.MaxAvailableUnits)

	require.Len(t, resp.Details, 4)
	assert.True(t, resp.Details[0].IsAvailable)
	assert.True(t, resp.Details[1].IsBlocked)
	require.NotNil(t, resp.Details[1].Reason)
	assert.Equal(t, "Maintenance", *resp.Details[1].Reason)
	assert.False(t, resp.Details[2].IsAvailable)
	require.NotNil(t, resp.Details[2].Reason)
	assert.Equal(t, domain.ReasonFullyBooked, *resp.Details[2].Reason)
}

func TestExecute_AllAvailable(t *testing.T) {
	avail := &fakeAvailability{
		roomType: testRoomType(),
		statuses: []*availabilityModels.DateStatus{
			{Date: date(2026, 7, 1), EffectiveCapacity: 10, RemainingUnits: 10},
			{Date: date(2026, 7, 2), BookedUnits: 5, EffectiveCapacity: 10, RemainingUnits: 5},
		},
	}
	uc := NewUseCase(avail, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RoomTypeID: 1, StartDate: date(2026, 7, 1), EndDate: date(2026, 7, 2),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.AvailableDates)
	assert.Equal(t, 5, resp.MinAvailableUnits)
	assert.Equal(t, 10, resp.MaxAvailableUnits)
}

func TestExecute_ValidationFails(t *testing.T) {
	uc := NewUseCase(&fakeAvailability{roomType: testRoomType()}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RoomTypeID: 1, StartDate: date(2026, 7, 1)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
