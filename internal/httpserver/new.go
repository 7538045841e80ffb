package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"preference-service/internal/inventory"
	"preference-service/pkg/daypart"
	"preference-service/pkg/log"
	"preference-service/pkg/metrics"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	srv         *http.Server
	l           log.Logger
	port        int
	mode        string
	environment string
	rateLimit   int
	metrics     *metrics.Collector

	// Inventory domain
	inventoryCacheSize int
	defaultStrategy    inventory.Strategy

	// Display domain
	clock daypart.Provider
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// RateLimitPerMin applies per client IP to domain routes; 0 disables it.
	RateLimitPerMin int

	// Inventory domain
	InventoryCacheSize int
	DefaultStrategy    inventory.Strategy

	// Display domain
	Clock daypart.Provider
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                  logger,
		gin:                gin.New(),
		port:               cfg.Port,
		mode:               cfg.Mode,
		environment:        cfg.Environment,
		rateLimit:          cfg.RateLimitPerMin,
		metrics:            metrics.New("preference_service"),
		inventoryCacheSize: cfg.InventoryCacheSize,
		defaultStrategy:    cfg.DefaultStrategy,
		clock:              cfg.Clock,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.clock == nil {
		return errors.New("clock is required")
	}
	if !srv.defaultStrategy.IsValid() {
		return errors.New("default strategy is invalid")
	}
	return nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}
