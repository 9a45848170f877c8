package check_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkAvailability "github.com/Vzyree-619/FindoTrip-sub006/internal/usecase/check_availability"
	"github.com/Vzyree-619/FindoTrip-sub006/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	gotReq *checkAvailability.Request
	resp   *checkAvailability.Response
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

func serve(t *testing.T, uc *fakeUseCase, url string) *httptest.ResponseRecorder {
	t.Helper()

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/room-types/{roomTypeId}/availability", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{resp: &checkAvailability.Response{
		IsAvailable:    true,
		AvailableUnits: 4,
		Details: []checkAvailability.DateDetail{
			{Date: "2026-07-10", Available: true, AvailableUnits: 4},
			{Date: "2026-07-11", Available: true, AvailableUnits: 6},
		},
	}}

	rec := serve(t, uc, "/api/v1/room-types/1/availability?checkIn=2026-07-10&checkOut=2026-07-12&units=2")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(1), uc.gotReq.RoomTypeID)
	assert.Equal(t, 2, uc.gotReq.NumberOfUnits)
	assert.Equal(t, "2026-07-10", uc.gotReq.CheckIn.Format("2006-01-02"))

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.IsAvailable)
	assert.Equal(t, 4, resp.AvailableUnits)
	require.Len(t, resp.Details, 2)
}

func TestHandle_DefaultUnits(t *testing.T) {
	uc := &fakeUseCase{resp: &checkAvailability.Response{IsAvailable: true}}

	rec := serve(t, uc, "/api/v1/room-types/1/availability?checkIn=2026-07-10&checkOut=2026-07-12")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, uc.gotReq.NumberOfUnits)
}

func TestHandle_UnavailableWithReason(t *testing.T) {
	uc := &fakeUseCase{resp: &checkAvailability.Response{
		Reason: ptr.Ptr("Room type not found"),
	}}

	rec := serve(t, uc, "/api/v1/room-types/99/availability?checkIn=2026-07-10&checkOut=2026-07-12")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.IsAvailable)
	require.NotNil(t, resp.Reason)
	assert.Equal(t, "Room type not found", *resp.Reason)
}

func TestHandle_BadRequests(t *testing.T) {
	cases := []struct {
		name string
		url  string
	}{
		{"invalid room type id", "/api/v1/room-types/abc/availability?checkIn=2026-07-10&checkOut=2026-07-12"},
		{"missing check in", "/api/v1/room-types/1/availability?checkOut=2026-07-12"},
		{"missing check out", "/api/v1/room-types/1/availability?checkIn=2026-07-10"},
		{"bad date format", "/api/v1/room-types/1/availability?checkIn=10.07.2026&checkOut=2026-07-12"},
		{"bad units", "/api/v1/room-types/1/availability?checkIn=2026-07-10&checkOut=2026-07-12&units=many"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(t, &fakeUseCase{}, tc.url)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: checkAvailability.ErrInternal}

	rec := serve(t, uc, "/api/v1/room-types/1/availability?checkIn=2026-07-10&checkOut=2026-07-12")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
