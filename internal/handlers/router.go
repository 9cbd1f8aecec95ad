package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"

	"github.com/vctstats/cluster-dashboard/internal/metrics"
)

type RouterConfig struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// Router mounts the API under /api/v1 with health, metrics and docs alongside
func (h *Handler) Router(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(observeRequests)
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/doc.json", h.SwaggerDoc)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/options", h.GetOptions)
		r.Get("/clusters/{cluster}/tournaments", h.GetClusterTournaments)

		r.Get("/overview", h.GetOverview)
		r.Get("/overview/scatter", h.GetOverviewScatter)
		r.Get("/overview/histogram", h.GetOverviewHistogram)

		r.Route("/teams/{team}", func(r chi.Router) {
			r.Get("/", h.GetTeam)
			r.Get("/scatter", h.GetTeamScatter)
			r.Get("/series", h.GetTeamSeries)
			r.Get("/players", h.GetTeamPlayers)
			r.Get("/players/{player}/series", h.GetPlayerSeries)
		})

		r.Get("/tournaments", h.GetTournaments)
		r.Get("/tournaments/{name}", h.GetTournament)

		r.Post("/predict", h.PredictCluster)
	})

	return r
}

// SwaggerDoc serves the registered OpenAPI document
func (h *Handler) SwaggerDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		h.errorResponse(w, http.StatusNotFound, "API documentation not available")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(doc))
}

// observeRequests records request durations by chi route pattern
func observeRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		metrics.RequestDuration.
			WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).
			Observe(time.Since(start).Seconds())
	})
}
