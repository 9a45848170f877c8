package get_stay_constraints

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/service/stayrules"
	"github.com/Vzyree-619/FindoTrip-sub006/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeStayRules struct {
	minStay *int
	maxStay *int
	err     error
}

func (f *fakeStayRules) GetMinimumStay(_ context.Context, _ int64, _ time.Time) (*int, error) {
	return f.minStay, f.err
}

func (f *fakeStayRules) GetMaximumStay(_ context.Context, _ int64, _ time.Time) (*int, error) {
	return f.maxStay, f.err
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExecute_ReturnsBothConstraints(t *testing.T) {
	uc := NewUseCase(&fakeStayRules{minStay: ptr.Ptr(2), maxStay: ptr.Ptr(14)}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{RoomTypeID: 1, Date: date(2026, 7, 15)})
	require.NoError(t, err)
	assert.Equal(t, "2026-07-15", resp.Date)
	require.NotNil(t, resp.MinStay)
	require.NotNil(t, resp.MaxStay)
	assert.Equal(t, 2, *resp.MinStay)
	assert.Equal(t, 14, *resp.MaxStay)
}

func TestExecute_NoConstraints(t *testing.T) {
	uc := NewUseCase(&fakeStayRules{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{RoomTypeID: 1, Date: date(2026, 7, 15)})
	require.NoError(t, err)
	assert.Nil(t, resp.MinStay)
	assert.Nil(t, resp.MaxStay)
}

func TestExecute_RoomTypeNotFound(t *testing.T) {
	uc := NewUseCase(&fakeStayRules{err: stayrules.ErrRoomTypeNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RoomTypeID: 42, Date: date(2026, 7, 15)})
	assert.ErrorIs(t, err, ErrRoomTypeNotFound)
}

func TestExecute_ValidationFails(t *testing.T) {
	uc := NewUseCase(&fakeStayRules{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RoomTypeID: 0, Date: date(2026, 7, 15)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{RoomTypeID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
