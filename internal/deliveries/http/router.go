package http

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/catebi/go-tax-declaration/internal/common/graceful"
	"github.com/catebi/go-tax-declaration/internal/config"
	"github.com/catebi/go-tax-declaration/internal/deliveries/http/health"
	"github.com/catebi/go-tax-declaration/internal/services"

	v1session "github.com/catebi/go-tax-declaration/internal/deliveries/http/v1/session"
)

type svc struct {
	e               *echo.Echo
	log             *zap.Logger
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		return s.e.Start(s.addr)
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		if err != nil {
			s.log.Error("[SHUTDOWN] HTTP server error", zap.Error(err))
		} else {
			s.log.Info("[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

// NewHTTPServer wires the echo router: health, prometheus metrics and the
// v1 session endpoints.
func NewHTTPServer(
	conf config.Config,
	log *zap.Logger,
	registry *prometheus.Registry,
	sessionSrv services.SessionService,
) graceful.ProcessStartStopper {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = conf.App.HTTPTimeout
	e.Server.WriteTimeout = conf.App.HTTPTimeout

	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.Recover())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "taxdecl",
		Registerer: registry,
	}))

	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: registry,
	}))

	health.New(e.Group("/health"))

	v1Group := e.Group("/api/v1")
	v1session.New(v1Group, sessionSrv)

	return &svc{
		e:               e,
		log:             log,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}
}
