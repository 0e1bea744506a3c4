package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/learnloop/academy/internal/config"
	"github.com/learnloop/academy/internal/server/middlewares"
)

const (
	apiPrefix         = "/api/v1"
	readHeaderTimeout = 10 * time.Second
)

type Server struct {
	srv  *http.Server
	log  *zap.SugaredLogger
	mode string
}

// NewServer builds the gin engine. registerHandlerFn receives the /api/v1
// group.
func NewServer(cfg *config.Configuration, registerHandlerFn func(router *gin.RouterGroup)) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("configuration is required")
	}

	if cfg.Server.ServerMode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(
		middlewares.RequestID(),
		middlewares.Logger(),
		ginzap.RecoveryWithZap(zap.L(), true),
		middlewares.CORS(cfg.Server.CORSOrigins),
		middlewares.RateLimit(cfg.Server.RateLimit),
	)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	registerHandlerFn(engine.Group(apiPrefix))

	return &Server{
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Server.HTTPPort),
			Handler:           engine,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		log:  zap.S().Named("server"),
		mode: cfg.Server.ServerMode,
	}, nil
}

// Handler exposes the engine for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Start blocks until the server stops. Request contexts derive from ctx.
// It returns http.ErrServerClosed after Stop.
func (s *Server) Start(ctx context.Context) error {
	s.srv.BaseContext = func(net.Listener) context.Context { return ctx }
	s.log.Infow("starting http server", "addr", s.srv.Addr, "mode", s.mode)
	return s.srv.ListenAndServe()
}

// Stop waits for in-flight requests until ctx expires.
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("stopping http server")
	return s.srv.Shutdown(ctx)
}
