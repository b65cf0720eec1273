package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/container"
	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/editor"
	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/errors"
	hubhttp "github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/http"
	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/infrastructure/config"
	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/infrastructure/monitoring"
	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/logging"
	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/mathapi"
	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/middleware"
	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/preview"
	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/storage"
	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/ws"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	cfg        *config.Config
	log        *logging.Logger
	router     *gin.Engine
	httpServer *http.Server

	components *container.FactoryContainer
	metrics    *monitoring.Metrics
}

// NewServer creates a new server instance. The whole application hangs
// off one service container, one factory registry, and one error
// handler, composed into a single factory-enabled container here.
func NewServer(cfg *config.Config) (*Server, error) {
	log, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		OutputPaths: []string{"stdout"},
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	metrics := monitoring.NewMetrics()
	errHandler := errors.NewHandler(log.Logger, errors.WithRecorder(metrics))

	// Storage backend
	store, err := newStore(cfg.Storage)
	if err != nil {
		return nil, err
	}
	log.Info("storage ready",
		zap.String("backend", cfg.Storage.Backend),
		zap.String("path", cfg.Storage.Path))

	// Domain services
	documents := editor.NewService(store, errHandler)
	renderer := preview.NewRenderer(cfg.Preview.Sandbox, errHandler)
	prober := mathapi.NewProber(errHandler, time.Duration(cfg.MathAPI.ProbeTimeoutMS)*time.Millisecond)
	wsHandler := ws.NewHandler(log.Logger, errHandler, metrics)

	// Compose the container
	services := container.NewServiceContainer()
	factories := container.NewFactoryRegistry()
	components := container.NewFactoryContainer(services, factories, errHandler)

	components.Register("storage", store)
	components.Register("documents", documents)
	components.Register("renderer", renderer)
	components.Register("prober", prober)
	components.Register("stream", wsHandler)

	if err := components.RegisterFactory(mathapi.NewDesmosFactory(cfg.MathAPI.DesmosAPIKey)); err != nil {
		return nil, fmt.Errorf("register desmos factory: %w", err)
	}
	if err := components.RegisterFactory(mathapi.NewGeoGebraFactory()); err != nil {
		return nil, fmt.Errorf("register geogebra factory: %w", err)
	}
	log.Info("component factories registered", zap.Any("stats", components.Stats()))

	registerRecovery(errHandler, cfg)

	// Optional startup reachability check for the math script CDNs
	if cfg.MathAPI.ProbeOnStartup {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		results := prober.Probe(ctx)
		cancel()
		log.Info("math api probe complete", zap.Any("results", results))
	}

	// Router
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	}
	router.Use(middleware.Metrics(metrics))

	handlers := hubhttp.NewHandlers(documents, components, renderer, wsHandler, metrics)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Documents
	router.GET("/documents", handlers.ListDocuments)
	router.POST("/documents", handlers.CreateDocument)
	router.POST("/documents/import", handlers.ImportDocument)
	router.GET("/documents/:id", handlers.GetDocument)
	router.PUT("/documents/:id", handlers.UpdateDocument)
	router.DELETE("/documents/:id", handlers.DeleteDocument)

	// Preview
	router.GET("/documents/:id/preview", handlers.PreviewDocument)
	router.POST("/documents/:id/preview", handlers.PreviewDocumentWithWidgets)

	// Components
	router.GET("/components", handlers.ListComponents)
	router.POST("/components/create", handlers.CreateComponent)

	// WebSocket
	router.GET("/stream", wsHandler.HandleConnection)

	// Metrics
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	return &Server{
		cfg:        cfg,
		log:        log,
		router:     router,
		components: components,
		metrics:    metrics,
	}, nil
}

// Run starts the server and blocks until it stops.
func (s *Server) Run() error {
	addr := s.cfg.Server.Host + ":" + s.cfg.Server.Port
	s.log.Info("starting content hub", zap.String("addr", addr))

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down")
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Container exposes the composed container, mainly for tests.
func (s *Server) Container() *container.FactoryContainer {
	return s.components
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func newStore(cfg config.StorageConfig) (storage.Store, error) {
	switch cfg.Backend {
	case "memory":
		return storage.NewMemoryStore(), nil
	case "file":
		return storage.NewFileStore(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// registerRecovery wires category-specific recovery strategies into the
// error handler.
func registerRecovery(h *errors.Handler, cfg *config.Config) {
	// A storage failure is often a missing root directory.
	h.RegisterRecovery(errors.CategoryStorage, func(ctx map[string]any) error {
		if cfg.Storage.Backend != "file" {
			return nil
		}
		return os.MkdirAll(cfg.Storage.Path, 0o755)
	})
}
