package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Flarenzy/inetstore/internal/auth"
	"github.com/Flarenzy/inetstore/internal/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type API struct {
	Logger        *slog.Logger
	health        HealthChecker
	service       domain.AddressService
	authenticator auth.Authenticator
	metrics       *Metrics
}

func NewAPI(logger *slog.Logger, health HealthChecker, service domain.AddressService, authenticator auth.Authenticator) *API {
	if logger == nil {
		logger = slog.Default()
	}
	return &API{
		Logger:        logger,
		health:        health,
		service:       service,
		authenticator: authenticator,
		metrics:       NewMetrics(),
	}
}

func (a *API) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", a.handleHealthz)
	mux.HandleFunc("GET /readyz", a.handleReadyz)
	mux.Handle("GET /metrics", promhttp.HandlerFor(a.metrics.Registry(), promhttp.HandlerOpts{}))
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	a.route(mux, "GET /api/v1/addresses", a.handleListAddresses)
	a.route(mux, "POST /api/v1/addresses", a.handleCreateAddress)
	a.route(mux, "GET /api/v1/addresses/first", a.handleFirstAddress)
	a.route(mux, "GET /api/v1/addresses/{id}", a.handleGetAddress)
	a.route(mux, "PUT /api/v1/addresses/{id}", a.handleUpdateAddress)
	a.route(mux, "DELETE /api/v1/addresses/{id}", a.handleDeleteAddress)

	return a.authMiddleware(mux)
}

func (a *API) route(mux *http.ServeMux, pattern string, handler http.HandlerFunc) {
	mux.Handle(pattern, a.metrics.instrument(pattern, handler))
}
