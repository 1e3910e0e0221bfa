package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/GregMSThompson/report-cms/internal/handlers"
	"github.com/GregMSThompson/report-cms/internal/middleware"
)

func NewRouter(deps *handlers.Deps, log *slog.Logger) chi.Router {
	r := chi.NewRouter()

	lm := middleware.NewLoggerMiddleware(log)
	gate := middleware.NewMiddleware(deps.Sessions, deps.AuthSvc, deps.ResponseHandler)

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(lm.LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	ch := handlers.NewContentHandlers(deps)
	ah := handlers.NewAuthHandlers(deps)
	adh := handlers.NewAdminHandlers(deps)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/content", ch.ContentRoutes())
		r.Mount("/auth", ah.AuthRoutes())
		r.Route("/admin", func(r chi.Router) {
			r.Use(gate.RequireAdmin)
			r.Mount("/", adh.AdminRoutes())
		})
	})
	return r
}
