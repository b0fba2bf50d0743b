// Package daemon wires configuration, logging and the web service.
package daemon

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/GoRandomString/GoRandomString/internal/config"
	"github.com/GoRandomString/GoRandomString/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Addr returns the listen address.
func (d *Daemon) Addr() string {
	return ":" + strconv.Itoa(d.cfg.Webserver.Port)
}

// Start serves the web service until SIGINT or SIGTERM.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	log.Info().Str("addr", d.Addr()).Str("url", d.cfg.Webserver.URL).Msg("starting web service")

	return d.webService.Start(d.Addr())
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, prometheus.NewRegistry()),
	}
}
