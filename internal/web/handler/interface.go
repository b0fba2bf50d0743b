package handler

import (
	"sync/atomic"

	"github.com/gofiber/fiber/v2"

	"github.com/GoRandomString/GoRandomString/internal/config"
	"github.com/GoRandomString/GoRandomString/internal/metrics"
)

// Deps bundles what handlers need from the web service.
type Deps struct {
	Config  *config.Config
	Metrics *metrics.Recorder
	Alive   *atomic.Bool // false while the service drains before shutdown
}

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, deps *Deps)
}
