// Package web serves the random string http api.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/GoRandomString/GoRandomString/internal/config"
	accesslog "github.com/GoRandomString/GoRandomString/internal/logger/adapter/fiber"
	"github.com/GoRandomString/GoRandomString/internal/logger/adapter/stdlogger"
	"github.com/GoRandomString/GoRandomString/internal/metrics"
	"github.com/GoRandomString/GoRandomString/internal/web/handler"
	"github.com/GoRandomString/GoRandomString/internal/web/handler/health"
	"github.com/GoRandomString/GoRandomString/internal/web/handler/presets"
	"github.com/GoRandomString/GoRandomString/internal/web/handler/random"
)

// MetricsPath is the Prometheus scrape path.
const MetricsPath = handler.RootPath + "metrics"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Start listens on addr until the fiber app is shut down.
func (s *Service) Start(addr string) error {
	if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err //nolint:wrapcheck
	}

	return nil
}

// WaitShutdown blocks until SIGINT or SIGTERM and shuts the service down.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	defer signal.Stop(irqSig)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown drains and stops the http server. While draining, check alive answers 503
// so load balancers can remove this instance.
func (s *Service) Shutdown() {
	s.alive.Store(false)

	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates the web service. Generation metrics are registered with reg and served
// on MetricsPath together with the default registry.
func New(cfg *config.Config, reg *prometheus.Registry) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if reg == nil {
		panic("registry cannot be nil")
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: cfg.Webserver.ReadBufferSize,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
		},
	)

	app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	app.Use(accesslog.New(accesslog.Config{
		Config:        cfg.Log,
		CheckAliveURI: health.Path,
		KindLocalsKey: handler.LocalsErrorKind,
	}))

	service := &Service{
		App:          app,
		cfg:          cfg,
		fastShutDown: cfg.Webserver.FastShutDown,
	}
	service.alive.Store(true)

	deps := &handler.Deps{
		Config:  cfg,
		Metrics: metrics.NewRecorder(reg),
		Alive:   &service.alive,
	}

	for _, h := range []handler.Service{&health.Service{}, &presets.Service{}, &random.Service{}} {
		h.Init(app, deps)
	}

	gatherer := prometheus.Gatherers{prometheus.DefaultGatherer, reg}
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{
		ErrorLog: stdlogger.New("metrics"),
	})))

	if cfg.DevMode {
		log.Warn().Msg("dev mode enabled")
	}

	return service
}
