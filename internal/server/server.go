package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/RaidCompanion_Go/docs"
	"github.com/osse101/RaidCompanion_Go/internal/calculator"
	"github.com/osse101/RaidCompanion_Go/internal/handler"
	"github.com/osse101/RaidCompanion_Go/internal/logger"
	"github.com/osse101/RaidCompanion_Go/internal/metrics"
	"github.com/osse101/RaidCompanion_Go/internal/progress"
	"github.com/osse101/RaidCompanion_Go/internal/quest"
	"github.com/osse101/RaidCompanion_Go/internal/recycling"
)

// Options configures the HTTP surface
type Options struct {
	Port            int
	APIKey          string
	TrustedProxies  []string
	Version         string
	DefaultLanguage string
	PathMaxDepth    int
}

// Services are the application services the routes call into
type Services struct {
	// DB is nil when running without Postgres
	DB         handler.Pinger
	Catalog    handler.CatalogSource
	Recycling  recycling.Service
	Quests     quest.Service
	Calculator calculator.Service
	Progress   progress.Service
}

// Server is the HTTP API server
type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, svc),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// NewRouter builds the chi router with middleware and every route
func NewRouter(opts Options, svc Services) http.Handler {
	r := chi.NewRouter()

	tracker := NewClientActivityTracker(rateLimitRequests, rateLimitWindow)

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(RateLimitMiddleware(opts.TrustedProxies, tracker))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, tracker))
	r.Use(RequestSizeLimitMiddleware(maxRequestBodySize))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.DB, svc.Catalog))
	r.Get("/version", handler.HandleVersion(opts.Version, svc.Catalog))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	lang := opts.DefaultLanguage

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/", handler.HandleListItems(svc.Catalog, lang))
			r.Get("/search", handler.HandleSearchItems(svc.Catalog, lang))
			r.Get("/{id}", handler.HandleGetItem(svc.Catalog, lang))
			r.Get("/{id}/metrics", handler.HandleGetItemMetrics(svc.Recycling))
		})

		r.Route("/recycling", func(r chi.Router) {
			r.Get("/metrics", handler.HandleGetMetricsTable(svc.Recycling))
			r.Get("/{id}/chain", handler.HandleGetChain(svc.Recycling))
			r.Get("/{id}/terminals", handler.HandleGetTerminals(svc.Recycling))
			r.Get("/{id}/sources", handler.HandleFindSources(svc.Recycling, opts.PathMaxDepth))
		})

		r.Route("/quests", func(r chi.Router) {
			r.Get("/", handler.HandleGetQuestBoard(svc.Quests, svc.Progress))
			r.Get("/required-items", handler.HandleGetQuestItems(svc.Quests, svc.Progress))
			r.Get("/{id}", handler.HandleGetQuest(svc.Quests, svc.Progress))
			r.Post("/{id}/toggle", handler.HandleToggleQuest(svc.Progress))
		})

		r.Post("/calculator", handler.HandleCalculate(svc.Calculator, svc.Progress))

		r.Route("/progress/{profile}", func(r chi.Router) {
			r.Get("/", handler.HandleGetProgress(svc.Progress))
			r.Put("/", handler.HandleReplaceProgress(svc.Progress))
			r.Delete("/", handler.HandleResetProgress(svc.Progress))
			r.Put("/workstations/{id}", handler.HandleSetWorkstationLevel(svc.Progress))
			r.Put("/inventory", handler.HandleSetInventory(svc.Progress))
			r.Put("/tracked", handler.HandleSetTracked(svc.Progress))
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent())

		sanitized := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitized[k] = []string{RedactedValue}
			} else {
				sanitized[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitized)

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start serves until Stop is called; a graceful shutdown is not reported as an error
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
