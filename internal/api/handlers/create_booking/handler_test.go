package create_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
	got  *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

const validBody = `{"title":"Sprint planning","roomId":1,"date":"2026-09-16","startHour":11,"durationHours":2}`

func doRequest(h *Handler, body string, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if authed {
		req = req.WithContext(middleware.WithUserID(req.Context(), 7))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:            100,
		Title:         "Sprint planning",
		TeamID:        3,
		TeamName:      "Backend",
		RoomID:        1,
		RoomName:      "Переговорная 1",
		BookerID:      7,
		Date:          time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		StartHour:     11,
		EndHour:       13,
		DurationHours: 2,
		Cost:          500,
	}}
	h := NewHandler(uc, noopLogger{})

	rec := doRequest(h, validBody, true)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":100`)
	assert.Contains(t, rec.Body.String(), `"cost":500`)

	// ID организатора берётся из контекста, а не из тела запроса
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(7), uc.got.BookerID)
}

func TestHandle_ConflictNamesBlocker(t *testing.T) {
	uc := &fakeUseCase{err: &createBooking.ConflictError{
		StartHour:  12,
		EndHour:    14,
		BookerName: "Борис Котов",
	}}
	h := NewHandler(uc, noopLogger{})

	rec := doRequest(h, validBody, true)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Борис Котов")
	assert.Contains(t, rec.Body.String(), "12")
	assert.Contains(t, rec.Body.String(), "14")
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "title taken", err: createBooking.ErrTitleTaken, wantStatus: http.StatusConflict},
		{name: "date in past", err: createBooking.ErrDateInPast, wantStatus: http.StatusBadRequest},
		{name: "invalid start hour", err: createBooking.ErrInvalidStartHour, wantStatus: http.StatusBadRequest},
		{name: "invalid duration", err: createBooking.ErrInvalidDuration, wantStatus: http.StatusBadRequest},
		{name: "room not found", err: createBooking.ErrRoomNotFound, wantStatus: http.StatusNotFound},
		{name: "internal error", err: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, noopLogger{})
			rec := doRequest(h, validBody, true)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, noopLogger{})

	rec := doRequest(h, `{"title":`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, noopLogger{})

	rec := doRequest(h, `{"title":"x","roomId":1,"date":"16.09.2026","startHour":11,"durationHours":2}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MissingUser(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, noopLogger{})

	rec := doRequest(h, validBody, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
