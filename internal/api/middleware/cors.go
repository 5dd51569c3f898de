package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// CORS разрешает запросы браузерного приложения с указанных origin.
// Пустой список отключает CORS-заголовки.
func CORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)
}
