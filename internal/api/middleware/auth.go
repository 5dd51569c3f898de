package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ReservationClient/internal/api/handlers"
)

type contextKey string

const tokenKey contextKey = "bearer_token"

const msgMissingToken = "требуется заголовок Authorization: Bearer <token>"

// Auth извлекает bearer-токен из заголовка Authorization и кладет его в контекст.
// Токен не проверяется: это делают backend-сервисы, которым он пробрасывается.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := parseBearer(r.Header.Get("Authorization"))
		if !ok {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithToken(r.Context(), token)))
	})
}

// OptionalAuth как Auth, но запрос без токена пропускается
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token, ok := parseBearer(r.Header.Get("Authorization")); ok {
			r = r.WithContext(WithToken(r.Context(), token))
		}
		next.ServeHTTP(w, r)
	})
}

// WithToken кладет токен в контекст
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// GetToken достает токен из контекста
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok && token != ""
}

func parseBearer(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
