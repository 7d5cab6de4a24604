// Package middlewarectx содержит HTTP middleware API: проверку JWT
// с передачей данных пользователя через контекст, ограничение частоты
// запросов с одного IP, проверку роли и сбор метрик запросов.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"

	"github.com/cobusiness02/forgefyt/internal/http/response"
	"github.com/cobusiness02/forgefyt/internal/lib/jwt"
	"github.com/cobusiness02/forgefyt/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// UserID ключ идентификатора пользователя в контексте.
	UserID Key = "userId"
	// Email ключ адреса пользователя в контексте.
	Email Key = "email"
	// Role ключ роли пользователя в контексте.
	Role Key = "role"
	// Name ключ имени пользователя в контексте.
	Name Key = "name"
)

// TokenParser проверяет токен и возвращает его данные.
type TokenParser interface {
	ParseToken(tokenStr string) (*jwt.CustomClaims, error)
}

// JWTMiddleware проверяет Bearer-токен. Без токена отвечает 401,
// с непрошедшим проверку токеном 403. Данные пользователя кладутся в контекст.
func JWTMiddleware(parser TokenParser, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"
			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || strings.TrimSpace(tokenStr) == "" {
				log.Warn("missing authorization token")
				response.Write(w, r, http.StatusUnauthorized, response.ErrorWithMessage("Access denied", "No token provided"))
				return
			}

			claims, err := parser.ParseToken(strings.TrimSpace(tokenStr))
			if err != nil {
				log.Warn("token verification failed", sl.Err(err))
				response.Write(w, r, http.StatusForbidden, response.ErrorWithMessage("Invalid token", "Token verification failed"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims.Claims)))
		})
	}
}

// WithClaims кладёт данные пользователя в контекст.
func WithClaims(ctx context.Context, c jwt.Claims) context.Context {
	ctx = context.WithValue(ctx, UserID, c.UserID)
	ctx = context.WithValue(ctx, Email, c.Email)
	ctx = context.WithValue(ctx, Role, c.Role)
	return context.WithValue(ctx, Name, c.Name)
}

// ClaimsFrom достаёт данные пользователя из контекста.
// ok=false, если запрос не прошёл JWTMiddleware.
func ClaimsFrom(ctx context.Context) (jwt.Claims, bool) {
	id, _ := ctx.Value(UserID).(string)
	if id == "" {
		return jwt.Claims{}, false
	}
	email, _ := ctx.Value(Email).(string)
	role, _ := ctx.Value(Role).(string)
	name, _ := ctx.Value(Name).(string)
	return jwt.Claims{UserID: id, Email: email, Role: role, Name: name}, true
}

// UserIDFrom идентификатор пользователя из контекста или пустая строка.
func UserIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(UserID).(string)
	return id
}
