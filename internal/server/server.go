package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/Materials_Go/internal/database"
	"github.com/osse101/Materials_Go/internal/handler"
	"github.com/osse101/Materials_Go/internal/logger"
	"github.com/osse101/Materials_Go/internal/material"
	"github.com/osse101/Materials_Go/internal/metrics"
	"github.com/osse101/Materials_Go/internal/sse"
)

// Options configures the HTTP server
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	RateLimit      int
	RateWindow     time.Duration

	// DBPool is optional; when set readiness also pings the database
	DBPool database.Pool

	// Reloader serves the admin reload route; defaults to the store itself
	Reloader handler.Reloader

	// Events is optional; when set registry events stream at /api/v1/events
	Events *sse.Hub
}

// Server serves the material query API
type Server struct {
	httpServer *http.Server
	store      *material.Store
}

// NewServer creates a new Server reading from store
func NewServer(opts Options, store *material.Store) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, store),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		store: store,
	}
}

// NewRouter builds the route tree. Only admin routes require the API key.
func NewRouter(opts Options, store *material.Store) http.Handler {
	handler.InitValidator()

	r := chi.NewRouter()
	detector := NewSuspiciousActivityDetector(opts.RateLimit, opts.RateWindow)

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(store, opts.DBPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	materials := handler.NewMaterialHandler(store)
	var reloader handler.Reloader = store
	if opts.Reloader != nil {
		reloader = opts.Reloader
	}
	admin := handler.NewAdminHandler(reloader)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/materials", func(r chi.Router) {
			r.Get("/", materials.HandleList)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", materials.HandleGet)
				r.Get("/resist", materials.HandleResist)
				r.Get("/damage", materials.HandleDamage)
				r.Get("/burn", materials.HandleBurn)
			})
		})

		if opts.Events != nil {
			r.Get("/events", sse.Handler(opts.Events))
		}

		r.Route("/admin", func(r chi.Router) {
			r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
			r.Post("/reload", admin.HandleReload)
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

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
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

// Flush lets streaming handlers push through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, p := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
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

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server. It returns http.ErrServerClosed after Stop.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr, "materials", s.store.Registry().Len())
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
