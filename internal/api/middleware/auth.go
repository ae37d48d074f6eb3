package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/integrations/authservice"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	identityKey
)

const (
	msgMissingUserID = "отсутствует заголовок X-User-ID"
	msgInvalidUserID = "некорректный заголовок X-User-ID"
	msgUserUnknown   = "пользователь не найден"
	msgAuthFailed    = "не удалось проверить пользователя"
)

// AuthClient интерфейс клиента AuthService
type AuthClient interface {
	VerifyUser(ctx context.Context, userID int64) (*authservice.Identity, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewAuth возвращает middleware аутентификации по заголовку X-User-ID
// Учётка проверяется через AuthService; identity кладётся в контекст запроса
func NewAuth(client AuthClient, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("X-User-ID")
			if raw == "" {
				logger.Warn("Auth: missing X-User-ID header for %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingUserID)
				return
			}

			userID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || userID <= 0 {
				logger.Warn("Auth: invalid X-User-ID header %q for %s %s", raw, r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgInvalidUserID)
				return
			}

			identity, err := client.VerifyUser(r.Context(), userID)
			if err != nil {
				if errors.Is(err, authservice.ErrUserUnknown) {
					logger.Warn("Auth: user id=%d unknown", userID)
					handlers.RespondUnauthorized(w, msgUserUnknown)
					return
				}
				logger.Error("Auth: failed to verify user id=%d: %v", userID, err)
				handlers.RespondError(w, http.StatusBadGateway, msgAuthFailed)
				return
			}

			ctx := WithUserID(r.Context(), userID)
			ctx = WithIdentity(ctx, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithUserID кладёт ID пользователя в контекст
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// WithIdentity кладёт identity пользователя в контекст
func WithIdentity(ctx context.Context, identity *authservice.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetUserID извлекает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// GetIdentity извлекает identity пользователя из контекста запроса
func GetIdentity(ctx context.Context) (*authservice.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*authservice.Identity)
	return identity, ok
}
