package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"proof-timeline/internal/middleware"
	recognitionHTTP "proof-timeline/internal/recognition/delivery/http"
	settlementHTTP "proof-timeline/internal/settlement/delivery/http"
	timelineHTTP "proof-timeline/internal/timeline/delivery/http"
	verificationHTTP "proof-timeline/internal/verification/delivery/http"
	"proof-timeline/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	mw              middleware.Middleware

	// Domains
	timelineHandler     timelineHTTP.Handler
	verificationHandler verificationHTTP.Handler
	settlementHandler   settlementHTTP.Handler
	recognitionHandler  recognitionHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	Middleware      middleware.Middleware

	// Domains, nil handlers are skipped.
	TimelineHandler     timelineHTTP.Handler
	VerificationHandler verificationHTTP.Handler
	SettlementHandler   settlementHTTP.Handler
	RecognitionHandler  recognitionHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                   logger,
		gin:                 gin.New(),
		port:                cfg.Port,
		mode:                cfg.Mode,
		environment:         cfg.Environment,
		shutdownTimeout:     cfg.ShutdownTimeout,
		mw:                  cfg.Middleware,
		timelineHandler:     cfg.TimelineHandler,
		verificationHandler: cfg.VerificationHandler,
		settlementHandler:   cfg.SettlementHandler,
		recognitionHandler:  cfg.RecognitionHandler,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
