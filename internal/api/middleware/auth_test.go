package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/integrations/authservice"
)

type fakeAuthClient struct {
	identity *authservice.Identity
	err      error
}

func (f *fakeAuthClient) VerifyUser(_ context.Context, _ int64) (*authservice.Identity, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.identity, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func authedHandler(t *testing.T, wantUserID int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r.Context())
		require.True(t, ok)
		assert.Equal(t, wantUserID, userID)

		identity, ok := GetIdentity(r.Context())
		require.True(t, ok)
		assert.Equal(t, wantUserID, identity.ID)

		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth_ValidUser(t *testing.T) {
	client := &fakeAuthClient{identity: &authservice.Identity{ID: 7, Username: "aosipova"}}
	mw := NewAuth(client, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	req.Header.Set("X-User-ID", "7")
	rec := httptest.NewRecorder()

	mw(authedHandler(t, 7)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_MissingHeader(t *testing.T) {
	mw := NewAuth(&fakeAuthClient{}, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	rec := httptest.NewRecorder()

	mw(authedHandler(t, 0)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_InvalidHeader(t *testing.T) {
	mw := NewAuth(&fakeAuthClient{}, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	req.Header.Set("X-User-ID", "abc")
	rec := httptest.NewRecorder()

	mw(authedHandler(t, 0)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_UnknownUser(t *testing.T) {
	mw := NewAuth(&fakeAuthClient{err: authservice.ErrUserUnknown}, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	req.Header.Set("X-User-ID", "7")
	rec := httptest.NewRecorder()

	mw(authedHandler(t, 0)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_AuthServiceUnavailable(t *testing.T) {
	mw := NewAuth(&fakeAuthClient{err: errors.New("connection refused")}, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	req.Header.Set("X-User-ID", "7")
	rec := httptest.NewRecorder()

	mw(authedHandler(t, 0)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
