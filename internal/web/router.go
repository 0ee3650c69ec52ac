package web

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mkarajohn/greek-text-utils/internal/web/handlers"
	"github.com/mkarajohn/greek-text-utils/internal/web/middleware"
)

type Router struct {
	log            *slog.Logger
	limiter        *middleware.IPRateLimiter
	allowedOrigins []string
}

func NewRouter(log *slog.Logger, limiter *middleware.IPRateLimiter, allowedOrigins []string) *Router {
	return &Router{
		log:            log,
		limiter:        limiter,
		allowedOrigins: allowedOrigins,
	}
}

func (r *Router) Handler() http.Handler {
	mux := http.NewServeMux()

	convertHandler := handlers.NewConvertHandler(r.log)

	mux.Handle("GET /api/v1/schemes",
		middleware.Chain(
			http.HandlerFunc(handlers.ListSchemes),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.CacheControl("public, max-age=3600"),
		),
	)

	mux.Handle("POST /api/v1/convert",
		middleware.Chain(
			http.HandlerFunc(convertHandler.Convert),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.RateLimit(r.limiter),
		),
	)

	mux.Handle("GET /metrics", promhttp.Handler())

	return middleware.Chain(mux, middleware.Recover(r.log), middleware.CORS(r.allowedOrigins))
}
