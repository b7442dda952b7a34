package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/MathForDevs/backend/internal/api/middleware"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/content"
	handlers "github.com/GriffinCanCode/MathForDevs/backend/internal/http"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/infrastructure/config"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/infrastructure/tracing"
	contentProvider "github.com/GriffinCanCode/MathForDevs/backend/internal/providers/content"
	mathProvider "github.com/GriffinCanCode/MathForDevs/backend/internal/providers/math"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/service"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/ws"
)

// ShutdownTimeout bounds graceful shutdown
const ShutdownTimeout = 10 * time.Second

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	http     *http.Server
	registry *service.Registry
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
	tracer   *tracing.Tracer
}

// NewServer creates a new server instance on the default Prometheus registry
func NewServer(cfg *config.Config) (*Server, error) {
	return newServer(cfg, logging.FromSettings(cfg.Logging.Level, cfg.Logging.Development),
		prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
}

func newServer(cfg *config.Config, logger *logging.Logger, reg prometheus.Registerer, gatherer prometheus.Gatherer) (*Server, error) {
	logger.Info("Initializing MathForDevs server",
		zap.String("addr", cfg.Addr()),
		zap.Bool("rate_limit", cfg.RateLimit.Enabled),
		zap.Bool("gzip", cfg.Compression.Gzip),
	)

	// Load the topic catalog before anything starts goroutines
	catalog, err := content.Load(cfg.Content.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load topic catalog: %w", err)
	}
	logger.Info("Topic catalog loaded",
		zap.Int("topics", catalog.Len()),
		zap.String("path", cfg.Content.Path),
	)

	// Initialize metrics first (needed by other components)
	metrics := monitoring.NewMetricsWith(reg)
	logger.Info("Performance monitoring initialized")

	tracer := tracing.New("mathdev-backend", logger)
	logger.Info("Request tracing initialized")

	serviceRegistry := service.NewRegistry(
		service.WithMetrics(metrics),
		service.WithLogger(logger),
	)

	logger.Info("Registering service providers...")
	if err := registerProviders(serviceRegistry, cfg, catalog); err != nil {
		tracer.Close()
		metrics.Close()
		return nil, err
	}

	// Create router
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.CORSConfigForOrigins(cfg.CORS.Origins)))
	if cfg.RateLimit.GlobalRPS > 0 {
		logger.Info("Global rate limiting enabled", zap.Int("rps", cfg.RateLimit.GlobalRPS))
		router.Use(middleware.GlobalRateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.GlobalRPS,
			Burst:             cfg.RateLimit.GlobalRPS * 2,
		}))
	}
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		rl := middleware.DefaultRateLimitConfig()
		rl.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		rl.Burst = cfg.RateLimit.Burst
		router.Use(middleware.RateLimit(rl))
	}
	if cfg.Compression.Gzip {
		router.Use(middleware.Gzip(middleware.DefaultGzipConfig()))
	}

	h := handlers.NewHandlers(serviceRegistry, catalog, metrics, logger)
	wsHandler := ws.NewHandler(metrics, logger, cfg.CORS.Origins)
	registerRoutes(router, h, wsHandler, gatherer)

	logger.Info("Server initialized successfully")

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Server{
		router:   router,
		http:     httpServer,
		registry: serviceRegistry,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
		tracer:   tracer,
	}, nil
}

func registerRoutes(router *gin.Engine, h *handlers.Handlers, wsHandler *ws.Handler, gatherer prometheus.Gatherer) {
	router.GET("/", h.Root)
	router.GET("/health", h.Health)

	// Number widgets
	router.GET("/numbers/parse", h.ParseNumber)
	router.GET("/numbers/classify", h.ClassifyNumber)

	// Unit circle
	router.GET("/trig/evaluate", h.EvaluateTrig)
	router.GET("/trig/special", h.SpecialAngles)
	router.GET("/trig/identities", h.VerifyIdentities)

	// Content
	router.GET("/topics", h.ListTopics)
	router.GET("/topics/:id", h.GetTopic)

	// Service management
	router.GET("/services", h.ListServices)
	router.POST("/services/discover", h.DiscoverServices)
	router.POST("/services/execute", h.ExecuteService)

	// WebSocket
	router.GET("/stream", wsHandler.HandleConnection)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

func registerProviders(registry *service.Registry, cfg *config.Config, catalog *content.Catalog) error {
	mathLimits := mathProvider.Limits{
		MaxSeriesTerms: cfg.Limits.MaxSeriesTerms,
		MaxSimTrials:   cfg.Limits.MaxSimTrials,
		MaxSampleSize:  cfg.Limits.MaxSampleSize,
	}
	if err := registry.Register(mathProvider.NewProvider(mathLimits)); err != nil {
		return fmt.Errorf("failed to register math provider: %w", err)
	}

	if err := registry.Register(contentProvider.NewProvider(catalog)); err != nil {
		return fmt.Errorf("failed to register content provider: %w", err)
	}
	return nil
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP server and blocks until it stops. A graceful
// Shutdown makes Run return nil.
func (s *Server) Run() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Close gracefully shuts down the server
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	var err error
	if shutdownErr := s.Shutdown(ctx); shutdownErr != nil {
		s.logger.Error("HTTP shutdown failed", zap.Error(shutdownErr))
		err = fmt.Errorf("failed to shut down http server: %w", shutdownErr)
	}

	// Flush pending spans before the logger goes away
	s.tracer.Close()
	s.metrics.Close()

	// Sync logger before exit
	s.logger.Sync()

	return err
}
