package get_price_quote

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vzyree-619/FindoTrip-sub006/internal/domain"
	"github.com/Vzyree-619/FindoTrip-sub006/internal/integrations/pricingservice"
	availabilityService "github.com/Vzyree-619/FindoTrip-sub006/internal/service/availability"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRoomTypes struct {
	roomType *domain.RoomType
	err      error
}

func (f *fakeRoomTypes) GetRoomType(_ context.Context, _ int64) (*domain.RoomType, error) {
	return f.roomType, f.err
}

type fakePricingClient struct {
	quote *pricingservice.Quote
	err   error
}

func (f *fakePricingClient) GetQuoteWithGracefulDegradation(_ context.Context, _ int64, _, _ string, _ int) (*pricingservice.Quote, error) {
	return f.quote, f.err
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testRoomType() *domain.RoomType {
	return &domain.RoomType{ID: 1, PropertyID: 10, TotalUnits: 10, IsActive: true, BasePrice: 120}
}

func testRequest() *Request {
	return &Request{
		RoomTypeID:    1,
		CheckIn:       date(2026, 7, 10),
		CheckOut:      date(2026, 7, 13),
		NumberOfUnits: 2,
	}
}

func TestExecute_QuoteFromPricingService(t *testing.T) {
	uc := NewUseCase(&fakeRoomTypes{roomType: testRoomType()}, &fakePricingClient{
		quote: &pricingservice.Quote{
			RoomTypeID:  1,
			CheckIn:     "2026-07-10",
			CheckOut:    "2026-07-13",
			Nights:      3,
			Currency:    "EUR",
			TotalPrice:  930,
			AvgPerNight: 310,
		},
	}, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, SourcePricingService, resp.Source)
	assert.Equal(t, "EUR", resp.Currency)
	assert.Equal(t, 930.0, resp.TotalPrice)
	assert.Equal(t, 310.0, resp.AvgPerNight)
	assert.Equal(t, 3, resp.Nights)
}

func TestExecute_FallbackOnDegradation(t *testing.T) {
	uc := NewUseCase(&fakeRoomTypes{roomType: testRoomType()}, &fakePricingClient{
		err: pricingservice.ErrServiceDegraded,
	}, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, SourceBasePrice, resp.Source)
	assert.Equal(t, "USD", resp.Currency)
	// basePrice 120 * 3 nights * 2 units
	assert.Equal(t, 720.0, resp.TotalPrice)
	assert.Equal(t, 120.0, resp.AvgPerNight)
	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, "2026-07-10", resp.CheckIn)
	assert.Equal(t, "2026-07-13", resp.CheckOut)
}

func TestExecute_FallbackOnQuoteNotFound(t *testing.T) {
	uc := NewUseCase(&fakeRoomTypes{roomType: testRoomType()}, &fakePricingClient{
		err: pricingservice.ErrQuoteNotFound,
	}, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, SourceBasePrice, resp.Source)
}

func TestExecute_UnexpectedClientError(t *testing.T) {
	uc := NewUseCase(&fakeRoomTypes{roomType: testRoomType()}, &fakePricingClient{
		err: errors.New("malformed response"),
	}, nopLogger{})

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_RoomTypeNotFound(t *testing.T) {
	uc := NewUseCase(&fakeRoomTypes{err: availabilityService.ErrRoomTypeNotFound}, &fakePricingClient{}, nopLogger{})

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrRoomTypeNotFound)
}

func TestExecute_DegenerateRangeRejected(t *testing.T) {
	uc := NewUseCase(&fakeRoomTypes{roomType: testRoomType()}, &fakePricingClient{}, nopLogger{})

	req := testRequest()
	req.CheckOut = req.CheckIn

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
