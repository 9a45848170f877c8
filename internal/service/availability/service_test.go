package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/domain"
	roomTypeRepo "github.com/Vzyree-619/FindoTrip-sub006/internal/infra/storage/roomtype"
	"github.com/Vzyree-619/FindoTrip-sub006/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRoomTypeRepo struct {
	roomType *domain.RoomType
	err      error
}

func (f *fakeRoomTypeRepo) GetByID(_ context.Context, _ int64) (*domain.RoomType, error) {
	return f.roomType, f.err
}

type fakeOverrideRepo struct {
	overrides []*domain.DateOverride
	err       error
}

func (f *fakeOverrideRepo) ListByRoomTypeAndRange(_ context.Context, _ int64, _, _ time.Time) ([]*domain.DateOverride, error) {
	return f.overrides, f.err
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) ListOverlapping(_ context.Context, _ int64, _, _ time.Time, _ []domain.BookingStatus) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testRoomType() *domain.RoomType {
	return &domain.RoomType{
		ID:         1,
		PropertyID: 10,
		Name:       "Standard Double",
		TotalUnits: 10,
		IsActive:   true,
		BasePrice:  100,
	}
}

func newTestService(overrides []*domain.DateOverride, bookings []*domain.Booking) *Service {
	return NewService(
		&fakeRoomTypeRepo{roomType: testRoomType()},
		&fakeOverrideRepo{overrides: overrides},
		&fakeBookingRepo{bookings: bookings},
		nopLogger{},
	)
}

func TestGetRoomType_NotFound(t *testing.T) {
	svc := NewService(
		&fakeRoomTypeRepo{err: roomTypeRepo.ErrRoomTypeNotFound},
		&fakeOverrideRepo{},
		&fakeBookingRepo{},
		nopLogger{},
	)

	_, err := svc.GetRoomType(context.Background(), 42)
	assert.ErrorIs(t, err, ErrRoomTypeNotFound)
}

func TestGetRoomType_RepoError(t *testing.T) {
	svc := NewService(
		&fakeRoomTypeRepo{err: errors.New("connection refused")},
		&fakeOverrideRepo{},
		&fakeBookingRepo{},
		nopLogger{},
	)

	_, err := svc.GetRoomType(context.Background(), 42)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestScanDates_DegenerateRange(t *testing.T) {
	svc := newTestService(nil, nil)

	statuses, err := svc.ScanDates(context.Background(), testRoomType(),
		date(2026, 7, 10), date(2026, 7, 10))
	require.NoError(t, err)
	assert.Empty(t, statuses)

	statuses, err = svc.ScanDates(context.Background(), testRoomType(),
		date(2026, 7, 10), date(2026, 7, 5))
	require.NoError(t, err)
	assert.Empty(t, statuses)
}

func TestScanDates_OpenRange(t *testing.T) {
	svc := newTestService(nil, nil)

	statuses, err := svc.ScanDates(context.Background(), testRoomType(),
		date(2026, 7, 10), date(2026, 7, 13))
	require.NoError(t, err)
	require.Len(t, statuses, 3)

	for _, status := range statuses {
		assert.False(t, status.Blocked)
		assert.Equal(t, 0, status.BookedUnits)
		assert.Equal(t, 10, status.EffectiveCapacity)
		assert.Equal(t, 10, status.RemainingUnits)
	}
	assert.Equal(t, date(2026, 7, 10), statuses[0].Date)
	assert.Equal(t, date(2026, 7, 12), statuses[2].Date)
}

func TestScanDates_BlockedDate(t *testing.T) {
	svc := newTestService([]*domain.DateOverride{
		{
			RoomTypeID: 1,
			Date:       date(2026, 7, 11),
			IsBlocked:  true,
			Reason:     ptr.Ptr("Maintenance"),
		},
	}, []*domain.Booking{
		{RoomTypeID: 1, CheckIn: date(2026, 7, 10), CheckOut: date(2026, 7, 13), NumberOfRooms: 2, Status: domain.StatusConfirmed},
	})

	statuses, err := svc.ScanDates(context.Background(), testRoomType(),
		date(2026, 7, 10), date(2026, 7, 13))
	require.NoError(t, err)
	require.Len(t, statuses, 3)

	blocked := statuses[1]
	assert.True(t, blocked.Blocked)
	require.NotNil(t, blocked.BlockReason)
	assert.Equal(t, "Maintenance", *blocked.BlockReason)
	// occupancy is not computed for a blocked date
	assert.Equal(t, 0, blocked.BookedUnits)
	assert.Equal(t, 0, blocked.RemainingUnits)

	assert.Equal(t, 2, statuses[0].BookedUnits)
	assert.Equal(t, 8, statuses[0].RemainingUnits)
}

func TestScanDates_BlockedDateDefaultReason(t *testing.T) {
	svc := newTestService([]*domain.DateOverride{
		{RoomTypeID: 1, Date: date(2026, 7, 10), IsBlocked: true},
	}, nil)

	statuses, err := svc.ScanDates(context.Background(), testRoomType(),
		date(2026, 7, 10), date(2026, 7, 11))
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	require.NotNil(t, statuses[0].BlockReason)
	assert.Equal(t, domain.DefaultBlockedReason, *statuses[0].BlockReason)
}

func TestScanDates_UnitsOverride(t *testing.T) {
	svc := newTestService([]*domain.DateOverride{
		{RoomTypeID: 1, Date: date(2026, 7, 10), UnitsOverride: ptr.Ptr(3)},
	}, []*domain.Booking{
		{RoomTypeID: 1, CheckIn: date(2026, 7, 10), CheckOut: date(2026, 7, 11), NumberOfRooms: 1, Status: domain.StatusPending},
	})

	statuses, err := svc.ScanDates(context.Background(), testRoomType(),
		date(2026, 7, 10), date(2026, 7, 11))
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Equal(t, 3, statuses[0].EffectiveCapacity)
	assert.Equal(t, 1, statuses[0].BookedUnits)
	assert.Equal(t, 2, statuses[0].RemainingUnits)
}

func TestScanDates_CancelledBookingsIgnored(t *testing.T) {
	svc := newTestService(nil, []*domain.Booking{
		{RoomTypeID: 1, CheckIn: date(2026, 7, 10), CheckOut: date(2026, 7, 12), NumberOfRooms: 4, Status: domain.StatusCancelled},
		{RoomTypeID: 1, CheckIn: date(2026, 7, 10), CheckOut: date(2026, 7, 12), NumberOfRooms: 3, Status: domain.StatusRefunded},
		{RoomTypeID: 1, CheckIn: date(2026, 7, 10), CheckOut: date(2026, 7, 12), NumberOfRooms: 2, Status: domain.StatusConfirmed},
	})

	statuses, err := svc.ScanDates(context.Background(), testRoomType(),
		date(2026, 7, 10), date(2026, 7, 11))
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Equal(t, 2, statuses[0].BookedUnits)
}

func TestScanDates_CheckOutDateNotOccupied(t *testing.T) {
	svc := newTestService(nil, []*domain.Booking{
		{RoomTypeID: 1, CheckIn: date(2026, 7, 10), CheckOut: date(2026, 7, 12), NumberOfRooms: 5, Status: domain.StatusConfirmed},
	})

	statuses, err := svc.ScanDates(context.Background(), testRoomType(),
		date(2026, 7, 10), date(2026, 7, 13))
	require.NoError(t, err)
	require.Len(t, statuses, 3)
	assert.Equal(t, 5, statuses[0].BookedUnits)
	assert.Equal(t, 5, statuses[1].BookedUnits)
	assert.Equal(t, 0, statuses[2].BookedUnits)
}

func TestScanDates_Overbooking(t *testing.T) {
	svc := newTestService([]*domain.DateOverride{
		{RoomTypeID: 1, Date: date(2026, 7, 10), UnitsOverride: ptr.Ptr(2)},
	}, []*domain.Booking{
		{RoomTypeID: 1, CheckIn: date(2026, 7, 10), CheckOut: date(2026, 7, 11), NumberOfRooms: 5, Status: domain.StatusConfirmed},
	})

	statuses, err := svc.ScanDates(context.Background(), testRoomType(),
		date(2026, 7, 10), date(2026, 7, 11))
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Equal(t, -3, statuses[0].RemainingUnits)
}
