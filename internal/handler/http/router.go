package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/sha-shank-883/hrms-pro-sub003/internal/domain/user"
	"github.com/sha-shank-883/hrms-pro-sub003/internal/handler/http/middleware"
	"github.com/sha-shank-883/hrms-pro-sub003/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	attendanceHandler AttendanceHandler,
	regularizationHandler RegularizationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-pro"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionAttendanceClock)).
					Post("/clock-in", attendanceHandler.ClockIn)
				r.With(middleware.RequirePermission(user.PermissionAttendanceClock)).
					Post("/clock-out", attendanceHandler.ClockOut)

				r.With(middleware.RequirePermission(user.PermissionAttendanceViewOwn)).
					Get("/", attendanceHandler.List)
				r.With(middleware.RequirePermission(user.PermissionAttendanceManage)).
					Post("/", attendanceHandler.Create)

				r.Route("/regularize", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermissionRegularizationSubmit)).
						Post("/", regularizationHandler.Submit)
					r.With(middleware.RequirePermission(user.PermissionRegularizationViewOwn)).
						Get("/", regularizationHandler.List)
					r.With(middleware.RequirePermission(user.PermissionRegularizationViewOwn)).
						Get("/{id}", regularizationHandler.Get)
					r.With(middleware.RequirePermission(user.PermissionRegularizationDecide)).
						Put("/{id}", regularizationHandler.Decide)
				})

				r.With(middleware.RequirePermission(user.PermissionAttendanceViewOwn)).
					Get("/{id}", attendanceHandler.Get)
				r.With(middleware.RequirePermission(user.PermissionAttendanceManage)).
					Put("/{id}", attendanceHandler.Update)
				r.With(middleware.RequirePermission(user.PermissionAttendanceDelete)).
					Delete("/{id}", attendanceHandler.Delete)
			})
		})
	})

	return r
}
