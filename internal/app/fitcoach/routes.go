// Package fitcoach собирает HTTP API FitCoach Pro: хранилища, сервисы и маршруты.
package fitcoach

import (
	"log/slog"

	"github.com/benbjohnson/clock"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/cobusiness02/forgefyt/internal/http/handlers/auth/login"
	"github.com/cobusiness02/forgefyt/internal/http/handlers/auth/logout"
	authprofile "github.com/cobusiness02/forgefyt/internal/http/handlers/auth/profile"
	authprofileupdate "github.com/cobusiness02/forgefyt/internal/http/handlers/auth/profileupdate"
	"github.com/cobusiness02/forgefyt/internal/http/handlers/auth/refresh"
	"github.com/cobusiness02/forgefyt/internal/http/handlers/auth/register"
	"github.com/cobusiness02/forgefyt/internal/http/handlers/auth/verify"
	clientcreate "github.com/cobusiness02/forgefyt/internal/http/handlers/clients/create"
	clientlist "github.com/cobusiness02/forgefyt/internal/http/handlers/clients/list"
	"github.com/cobusiness02/forgefyt/internal/http/handlers/clients/progress"
	clientread "github.com/cobusiness02/forgefyt/internal/http/handlers/clients/read"
	clientremove "github.com/cobusiness02/forgefyt/internal/http/handlers/clients/remove"
	clientupdate "github.com/cobusiness02/forgefyt/internal/http/handlers/clients/update"
	"github.com/cobusiness02/forgefyt/internal/http/handlers/coaches/dashboard"
	"github.com/cobusiness02/forgefyt/internal/http/handlers/coaches/overview"
	coachprofile "github.com/cobusiness02/forgefyt/internal/http/handlers/coaches/profile"
	coachprofileupdate "github.com/cobusiness02/forgefyt/internal/http/handlers/coaches/profileupdate"
	"github.com/cobusiness02/forgefyt/internal/http/handlers/coaches/schedule"
	"github.com/cobusiness02/forgefyt/internal/http/handlers/coaches/scheduleupdate"
	"github.com/cobusiness02/forgefyt/internal/http/handlers/coaches/stats"
	"github.com/cobusiness02/forgefyt/internal/http/handlers/ios/appconfig"
	"github.com/cobusiness02/forgefyt/internal/http/handlers/ios/devicesync"
	"github.com/cobusiness02/forgefyt/internal/http/handlers/ios/ioshealth"
	"github.com/cobusiness02/forgefyt/internal/http/handlers/ios/registerdevice"
	"github.com/cobusiness02/forgefyt/internal/http/handlers/ios/sendnotification"
	"github.com/cobusiness02/forgefyt/internal/http/handlers/ios/unregisterdevice"
	"github.com/cobusiness02/forgefyt/internal/http/handlers/system/health"
	"github.com/cobusiness02/forgefyt/internal/http/handlers/system/notfound"
	"github.com/cobusiness02/forgefyt/internal/http/handlers/system/welcome"
	"github.com/cobusiness02/forgefyt/internal/http/handlers/workouts/calendar"
	workoutcreate "github.com/cobusiness02/forgefyt/internal/http/handlers/workouts/create"
	workoutlist "github.com/cobusiness02/forgefyt/internal/http/handlers/workouts/list"
	workoutread "github.com/cobusiness02/forgefyt/internal/http/handlers/workouts/read"
	workoutremove "github.com/cobusiness02/forgefyt/internal/http/handlers/workouts/remove"
	"github.com/cobusiness02/forgefyt/internal/http/handlers/workouts/templates"
	workoutupdate "github.com/cobusiness02/forgefyt/internal/http/handlers/workouts/update"
	"github.com/cobusiness02/forgefyt/internal/http/middlewarectx"
	"github.com/cobusiness02/forgefyt/internal/models"
	workoutservice "github.com/cobusiness02/forgefyt/internal/services/workouts"
)

// RouteOptions параметры маршрутизации, не связанные с сервисами.
type RouteOptions struct {
	Clock   clock.Clock
	Env     string
	Limiter *middlewarectx.RateLimiter
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, svc *Services, opts RouteOptions) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.Metrics,
	)

	r.Get("/health", health.New(opts.Clock, opts.Env).ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		if opts.Limiter != nil {
			r.Use(opts.Limiter.Middleware(logger))
		}

		// Открытые конечные точки
		r.Get("/", welcome.ServeHTTP)
		r.Post("/auth/login", login.New(logger, svc.Auth).ServeHTTP)
		r.Post("/auth/register", register.New(logger, svc.Auth).ServeHTTP)
		r.Get("/ios/ios-health", ioshealth.New(logger, svc.Devices).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(svc.Tokens, logger))

			r.Route("/auth", func(r chi.Router) {
				r.Get("/verify", verify.New(logger, svc.Auth).ServeHTTP)
				r.Post("/refresh", refresh.New(logger, svc.Auth).ServeHTTP)
				r.Post("/logout", logout.New(logger).ServeHTTP)
				r.Get("/profile", authprofile.New(logger, svc.Auth).ServeHTTP)
				r.Put("/profile", authprofileupdate.New(logger, svc.Auth).ServeHTTP)
			})

			r.Route("/clients", func(r chi.Router) {
				r.Get("/", clientlist.New(logger, svc.Clients).ServeHTTP)
				r.Post("/", clientcreate.New(logger, svc.Clients).ServeHTTP)
				r.Get("/{id}", clientread.New(logger, svc.Clients).ServeHTTP)
				r.Put("/{id}", clientupdate.New(logger, svc.Clients).ServeHTTP)
				r.Delete("/{id}", clientremove.New(logger, svc.Clients).ServeHTTP)
				r.Get("/{id}/progress", progress.New(logger, svc.Clients).ServeHTTP)
			})

			r.Route("/workouts", func(r chi.Router) {
				r.Get("/", workoutlist.New(logger, svc.Workouts).ServeHTTP)
				r.Post("/", workoutcreate.New(logger, svc.Workouts).ServeHTTP)
				r.Get("/calendar", calendar.New(logger, svc.Workouts).ServeHTTP)
				r.Get("/templates/list", templates.New(logger, workoutservice.Templates).ServeHTTP)
				r.Get("/{id}", workoutread.New(logger, svc.Workouts).ServeHTTP)
				r.Put("/{id}", workoutupdate.New(logger, svc.Workouts).ServeHTTP)
				r.Delete("/{id}", workoutremove.New(logger, svc.Workouts).ServeHTTP)
			})

			r.Route("/coaches", func(r chi.Router) {
				r.Use(middlewarectx.RequireRole(logger, string(models.RoleCoach), string(models.RoleAdmin)))
				r.Get("/profile", coachprofile.New(logger, svc.Coaches).ServeHTTP)
				r.Put("/profile", coachprofileupdate.New(logger, svc.Coaches).ServeHTTP)
				r.Get("/schedule", schedule.New(logger, svc.Coaches).ServeHTTP)
				r.Put("/schedule", scheduleupdate.New(logger, svc.Coaches).ServeHTTP)
				r.Get("/dashboard", dashboard.New(logger, svc.Coaches).ServeHTTP)
				r.Get("/stats", stats.New(logger, svc.Coaches).ServeHTTP)
				r.Get("/clients-overview", overview.New(logger, svc.Coaches).ServeHTTP)
			})

			r.Route("/ios", func(r chi.Router) {
				r.Post("/register-device", registerdevice.New(logger, svc.Devices).ServeHTTP)
				r.Delete("/unregister-device", unregisterdevice.New(logger, svc.Devices).ServeHTTP)
				r.Post("/send-notification", sendnotification.New(logger, svc.Devices).ServeHTTP)
				r.Get("/app-config", appconfig.New(logger, svc.Devices).ServeHTTP)
				r.Get("/sync", devicesync.New(logger, svc.Devices).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
	r.NotFound(notfound.New(logger).ServeHTTP)
}
