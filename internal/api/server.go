package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ipay-report-api/internal/api/handler"
	"github.com/vfg2006/ipay-report-api/internal/api/handler/router"
	"github.com/vfg2006/ipay-report-api/internal/config"
	"github.com/vfg2006/ipay-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/ipay-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ipay-report-api/pkg/middleware"
)

const defaultShutdownTimeout = 15 * time.Second

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

// Dependencies reúne os serviços expostos pela API
type Dependencies struct {
	Database       handler.Pinger
	Reporter       reporting.Reporter
	Authenticator  authenticating.Authenticator
	DatasetRefresh handler.ManualJob
}

// NewHandler monta o roteador com a cadeia global de middlewares
func NewHandler(cfg *config.Config, deps Dependencies) http.Handler {
	cronServices := handler.CronJobServices{
		DatasetRefreshService: deps.DatasetRefresh,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(deps.Database)...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Authentication(deps.Authenticator)...),
		router.WithRoutes(handler.Reports(deps.Reporter)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.AuthMiddleware(deps.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, deps Dependencies) (*Server, error) {
	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, deps),
			ReadHeaderTimeout: 2 * time.Second,
		},
		shutdownTimeout: shutdownTimeout,
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": s.shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
