package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/NumServe/internal/api/http"
	"github.com/GriffinCanCode/NumServe/internal/api/middleware"
	"github.com/GriffinCanCode/NumServe/internal/api/ws"
	"github.com/GriffinCanCode/NumServe/internal/infrastructure/config"
	"github.com/GriffinCanCode/NumServe/internal/infrastructure/logging"
	"github.com/GriffinCanCode/NumServe/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/NumServe/internal/infrastructure/tracing"
	numericprovider "github.com/GriffinCanCode/NumServe/internal/providers/numeric"
	"github.com/GriffinCanCode/NumServe/internal/service"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	registry *service.Registry
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
	tracer   *tracing.Tracer
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	// Initialize logger
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	logger.Info("Initializing NumServe server",
		zap.String("host", cfg.Server.Host),
		zap.String("port", cfg.Server.Port),
	)

	// Initialize metrics first (needed by other components)
	metrics := monitoring.NewMetrics()
	logger.Info("Performance monitoring initialized")

	// Initialize request tracing
	tracer := tracing.New("numserve", logger.Logger)
	logger.Info("Request tracing initialized")

	// Initialize service registry
	serviceRegistry := service.NewRegistry()

	logger.Info("Registering service providers...")
	registerProviders(serviceRegistry)

	// Reflect registry contents in the gauges
	services := serviceRegistry.List(nil)
	toolCount := 0
	for _, svc := range services {
		toolCount += len(svc.Tools)
	}
	metrics.SetRegistryServices(len(services))
	metrics.SetRegistryTools(toolCount)

	logger.Info("Service registry ready",
		zap.Int("services", len(services)),
		zap.Int("tools", toolCount),
	)

	// Create router
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	router.Use(middleware.BodyLimit(cfg.Eval.MaxBodyBytes))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	// Create handlers
	handlers := http.NewHandlers(serviceRegistry, metrics, cfg)
	wsHandler := ws.NewHandler(serviceRegistry, metrics, cfg, logger)

	// Register routes
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Service management
	router.GET("/services", handlers.ListServices)
	router.POST("/services/discover", handlers.DiscoverServices)
	router.POST("/services/execute", handlers.ExecuteService)

	// WebSocket
	router.GET("/stream", wsHandler.HandleConnection)

	// Prometheus exposition
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	logger.Info("Server initialized successfully")

	return &Server{
		router:   router,
		registry: serviceRegistry,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
		tracer:   tracer,
	}, nil
}

// Run starts the HTTP server
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Router exposes the HTTP handler, mainly for serving through test servers
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Close gracefully shuts down the server
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")

	// Sync logger before exit
	s.logger.Sync()

	return nil
}

func registerProviders(registry *service.Registry) {
	// Numeric provider
	numProvider := numericprovider.NewProvider()
	if err := registry.Register(numProvider); err != nil {
		fmt.Printf("Warning: Failed to register numeric provider: %v\n", err)
	}
}
