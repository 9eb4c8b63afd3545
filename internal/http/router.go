// Package httpapi assembles the HTTP surface: middleware chain, public and
// authenticated route groups, and the operational endpoints.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	employerhandler "verigate/internal/employer/handler"
	identityhandler "verigate/internal/identity/handler"
	incomehandler "verigate/internal/income/handler"
	"verigate/internal/platform/middleware"
	"verigate/internal/ratelimit"
	sessionhandler "verigate/internal/session/handler"
	"verigate/pkg/platform/httputil"
	"verigate/pkg/platform/middleware/metadata"
	"verigate/pkg/platform/middleware/requesttime"
)

// Deps carries the wired handlers and cross-cutting middleware.
type Deps struct {
	Logger           *slog.Logger
	SessionValidator middleware.SessionValidator
	RateLimit        *ratelimit.Middleware
	HTTPMetrics      *middleware.HTTPMetrics

	Session  *sessionhandler.Handler
	Identity *identityhandler.Handler
	Employer *employerhandler.Handler
	Income   *incomehandler.Handler
}

// NewRouter mounts all endpoints. Session start is public (rate limited);
// everything else sits behind session auth.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	if deps.HTTPMetrics != nil {
		r.Use(deps.HTTPMetrics.Instrument)
	}

	r.Get("/healthz", handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if deps.RateLimit != nil {
			r.Use(deps.RateLimit.Limit)
		}
		deps.Session.Register(r)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(deps.SessionValidator, deps.Logger))
		deps.Identity.Register(r)
		deps.Employer.Register(r)
		deps.Income.Register(r)
	})

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
