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
	"github.com/vfg2006/retail-insights-api/internal/api/handler"
	"github.com/vfg2006/retail-insights-api/internal/api/handler/router"
	"github.com/vfg2006/retail-insights-api/internal/config"
	"github.com/vfg2006/retail-insights-api/internal/scheduler"
	"github.com/vfg2006/retail-insights-api/internal/usecases/dashboard"
	"github.com/vfg2006/retail-insights-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	db handler.Pinger,
	analytics dashboard.Analytics,
	digestService *scheduler.StrategicDigestService,
) (*Server, error) {
	if analytics == nil {
		return nil, fmt.Errorf("serviço de análise não informado")
	}

	cronServices := handler.CronJobServices{
		StrategicDigestService: digestService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(db)...),
		router.WithRoutes(handler.Dashboard(analytics)...),
		router.WithRoutes(handler.Strategic(analytics)...),
		router.WithRoutes(handler.Filters(analytics)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
			ReadTimeout:       config.Server.ReadTimeout,
			WriteTimeout:      config.Server.WriteTimeout,
			IdleTimeout:       config.Server.IdleTimeout,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
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

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
