package middleware

import (
	"context"
	"net/http"
	"slot_machine/pkg/resp"
	"slot_machine/pkg/token"
	"time"

	"go.uber.org/zap"
)

// SessionCookieName - cookie с подписанным ID сессии
const SessionCookieName = "slot-machine-session"

type ctxKey struct{}

// WithSessionID кладет ID сессии в контекст
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, sessionID)
}

// SessionIDFromContext - ID сессии, проверенный middleware Session
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// Session проверяет cookie сессии. Нет cookie или подпись неверна - 401
func Session(secretKey []byte, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(SessionCookieName)
			if err != nil || c.Value == "" {
				resp.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			sessionID, err := token.VerifySessionToken(c.Value, secretKey)
			if err != nil {
				log.Debug("rejected session cookie", zap.Error(err))
				resp.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), sessionID)))
		})
	}
}

// SetSessionCookie устанавливает cookie с токеном сессии
func SetSessionCookie(w http.ResponseWriter, tokenStr string, ttl time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    tokenStr,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(ttl.Seconds()),
	})
}

// ClearSessionCookie удаляет cookie сессии
func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}
