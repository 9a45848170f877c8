package overrides

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/domain"
	overrideRepo "github.com/Vzyree-619/FindoTrip-sub006/internal/infra/storage/override"
	roomTypeRepo "github.com/Vzyree-619/FindoTrip-sub006/internal/infra/storage/roomtype"
	"github.com/Vzyree-619/FindoTrip-sub006/internal/service/overrides/models"
	"github.com/Vzyree-619/FindoTrip-sub006/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRoomTypeRepo struct {
	err error
}

func (f *fakeRoomTypeRepo) GetByID(_ context.Context, id int64) (*domain.RoomType, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.RoomType{ID: id, PropertyID: 10, TotalUnits: 5, IsActive: true}, nil
}

type fakeOverrideRepo struct {
	upserted  []*domain.DateOverride
	deleteErr error
}

func (f *fakeOverrideRepo) Upsert(_ context.Context, ovr *domain.DateOverride) (*domain.DateOverride, error) {
	saved := *ovr
	saved.ID = int64(len(f.upserted) + 1)
	f.upserted = append(f.upserted, &saved)
	return &saved, nil
}

func (f *fakeOverrideRepo) Delete(_ context.Context, _ int64, _ time.Time) error {
	return f.deleteErr
}

type fakeBookingRepo struct {
	booked int
}

func (f *fakeBookingRepo) SumUnitsOnDate(_ context.Context, _ int64, _ time.Time, _ []domain.BookingStatus) (int, error) {
	return f.booked, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(overrides *fakeOverrideRepo) *Service {
	return NewService(&fakeRoomTypeRepo{}, overrides, &fakeBookingRepo{}, fakeTxManager{}, nopLogger{})
}

func TestUpsert_Saves(t *testing.T) {
	repo := &fakeOverrideRepo{}
	svc := newTestService(repo)

	resp, err := svc.Upsert(context.Background(), &models.UpsertOverrideRequest{
		UserID:     7,
		RoomTypeID: 1,
		Date:       date(2026, 7, 15),
		IsBlocked:  true,
		Reason:     ptr.Ptr("Maintenance"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-07-15", resp.Date)
	assert.True(t, resp.IsBlocked)
	require.Len(t, repo.upserted, 1)
	assert.True(t, repo.upserted[0].IsBlocked)
}

func TestUpsert_ValidationFails(t *testing.T) {
	svc := newTestService(&fakeOverrideRepo{})

	cases := []struct {
		name string
		req  *models.UpsertOverrideRequest
	}{
		{"zero room type", &models.UpsertOverrideRequest{RoomTypeID: 0, Date: date(2026, 7, 15)}},
		{"negative units override", &models.UpsertOverrideRequest{RoomTypeID: 1, Date: date(2026, 7, 15), UnitsOverride: ptr.Ptr(-1)}},
		{"zero min stay", &models.UpsertOverrideRequest{RoomTypeID: 1, Date: date(2026, 7, 15), MinStay: ptr.Ptr(0)}},
		{"max below min", &models.UpsertOverrideRequest{RoomTypeID: 1, Date: date(2026, 7, 15), MinStay: ptr.Ptr(5), MaxStay: ptr.Ptr(3)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Upsert(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpsert_RoomTypeNotFound(t *testing.T) {
	svc := NewService(
		&fakeRoomTypeRepo{err: roomTypeRepo.ErrRoomTypeNotFound},
		&fakeOverrideRepo{},
		&fakeBookingRepo{},
		fakeTxManager{},
		nopLogger{},
	)

	_, err := svc.Upsert(context.Background(), &models.UpsertOverrideRequest{
		RoomTypeID: 42, Date: date(2026, 7, 15),
	})
	assert.ErrorIs(t, err, ErrRoomTypeNotFound)
}

func TestDelete_OverrideNotFound(t *testing.T) {
	svc := newTestService(&fakeOverrideRepo{deleteErr: overrideRepo.ErrOverrideNotFound})

	err := svc.Delete(context.Background(), 7, 1, date(2026, 7, 15))
	assert.ErrorIs(t, err, ErrOverrideNotFound)
}

func TestDelete_OK(t *testing.T) {
	svc := newTestService(&fakeOverrideRepo{})

	err := svc.Delete(context.Background(), 7, 1, date(2026, 7, 15))
	assert.NoError(t, err)
}

func TestSetBlockedRange_BlocksEveryDate(t *testing.T) {
	repo := &fakeOverrideRepo{}
	svc := newTestService(repo)

	resp, err := svc.SetBlockedRange(context.Background(), &models.BlockRangeRequest{
		UserID:     7,
		RoomTypeID: 1,
		StartDate:  date(2026, 7, 10),
		EndDate:    date(2026, 7, 14),
		Reason:     ptr.Ptr("Renovation"),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.BlockedDates)
	assert.Equal(t, "2026-07-10", resp.StartDate)
	assert.Equal(t, "2026-07-14", resp.EndDate)

	require.Len(t, repo.upserted, 5)
	for i, ovr := range repo.upserted {
		assert.True(t, ovr.IsBlocked)
		assert.Equal(t, date(2026, 7, 10+i), ovr.Date)
		require.NotNil(t, ovr.Reason)
		assert.Equal(t, "Renovation", *ovr.Reason)
	}
}

func TestSetBlockedRange_SingleDay(t *testing.T) {
	repo := &fakeOverrideRepo{}
	svc := newTestService(repo)

	resp, err := svc.SetBlockedRange(context.Background(), &models.BlockRangeRequest{
		RoomTypeID: 1,
		StartDate:  date(2026, 7, 10),
		EndDate:    date(2026, 7, 10),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.BlockedDates)
}

func TestSetBlockedRange_EndBeforeStart(t *testing.T) {
	svc := newTestService(&fakeOverrideRepo{})

	_, err := svc.SetBlockedRange(context.Background(), &models.BlockRangeRequest{
		RoomTypeID: 1,
		StartDate:  date(2026, 7, 10),
		EndDate:    date(2026, 7, 5),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSetBlockedRange_TooLong(t *testing.T) {
	svc := newTestService(&fakeOverrideRepo{})

	_, err := svc.SetBlockedRange(context.Background(), &models.BlockRangeRequest{
		RoomTypeID: 1,
		StartDate:  date(2026, 1, 1),
		EndDate:    date(2027, 6, 1),
	})
	assert.ErrorIs(t, err, ErrRangeTooLong)
}
