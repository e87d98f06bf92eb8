// Package web provides the HTTP server of the starrep API: routing,
// middleware, controllers and background job scheduling.
package web

import (
	"context"
	"io"
	"net"
	"net/http"
	"strconv"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"github.com/starrep/starrep/config"
	"github.com/starrep/starrep/logger"
	"github.com/starrep/starrep/stellar"
	"github.com/starrep/starrep/util/common"
	"github.com/starrep/starrep/web/controller"
	"github.com/starrep/starrep/web/job"
	"github.com/starrep/starrep/web/middleware"
	"github.com/starrep/starrep/web/service"
)

// Server is the API server: the http listener, its controllers and the cron
// scheduler.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	auth       *controller.AuthController
	user       *controller.UserController
	reputation *controller.ReputationController
	wallet     *controller.WalletController
	contract   *controller.ContractController

	horizon *stellar.Client

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new server instance with a cancellable context.
func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

// initRouter initializes Gin, registers middleware and controllers and
// returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(middleware.Cors())
	engine.Use(middleware.RequestId())

	s.horizon = stellar.NewClient(config.GetHorizonURL())

	authService := service.NewAuthService()
	walletService := service.NewWalletService(s.horizon)
	tokenAuth := middleware.TokenAuth(authService)

	s.auth = controller.NewAuthController(engine.Group("/auth"), authService)
	s.user = controller.NewUserController(engine.Group("/user", tokenAuth))
	s.reputation = controller.NewReputationController(engine.Group("/reputation", tokenAuth))
	s.wallet = controller.NewWalletController(engine.Group("/wallet", tokenAuth), walletService)
	s.contract = controller.NewContractController(engine.Group("/contract", tokenAuth), s.horizon)

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine, nil
}

// startTask schedules background jobs.
func (s *Server) startTask() {
	s.cron.AddJob("@hourly", job.NewCheckpointJob())
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.cron = cron.New()
	s.cron.Start()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(config.GetListen(), strconv.Itoa(config.GetPort()))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("web server running HTTP on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		_ = s.httpServer.Serve(listener)
	}()

	s.startTask()

	return nil
}

// Stop gracefully shuts down the web server and its cron jobs.
func (s *Server) Stop() error {
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}
	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}

// GetCtx returns the server's context.
func (s *Server) GetCtx() context.Context { return s.ctx }

// GetCron returns the server's cron scheduler instance.
func (s *Server) GetCron() *cron.Cron { return s.cron }
