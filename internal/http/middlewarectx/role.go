package middlewarectx

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/go-chi/chi/middleware"

	"github.com/cobusiness02/forgefyt/internal/http/response"
)

// RequireRole пропускает только пользователей с одной из ролей.
// Ставится после JWTMiddleware.
func RequireRole(log *slog.Logger, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := r.Context().Value(Role).(string)
			if !slices.Contains(roles, role) {
				log.Warn("role not allowed",
					slog.String("role", role),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				)
				response.Write(w, r, http.StatusForbidden, response.ErrorWithMessage("Access denied", "Insufficient permissions"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
