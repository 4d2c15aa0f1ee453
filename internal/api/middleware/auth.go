package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/st-neumann/SNR-BookingService/internal/api/handlers"
)

type contextKey string

const userIDKey contextKey = "userID"

// Auth middleware требует заголовок X-User-ID с числовым ID пользователя
// Аутентификацию выполняет внешний gateway; здесь только проверка наличия
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "заголовок X-User-ID обязателен")
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext достает ID пользователя, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// IsStaffRequest возвращает true для запросов сотрудников back-office
// Gateway помечает их заголовком X-Staff: 1
func IsStaffRequest(r *http.Request) bool {
	return r.Header.Get("X-Staff") == "1"
}
