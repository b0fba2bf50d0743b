// Package health serves the load balancer check alive endpoint.
package health

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoRandomString/GoRandomString/internal/web/handler"
)

// Path is the check alive path.
const Path = handler.RootPath + "checkalive"

// Service is the check alive handler service.
type Service struct {
	deps *handler.Deps
}

// Init registers the check alive route.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) {
	if app == nil || deps == nil || deps.Alive == nil {
		log.Fatal().Msg(handler.ErrNilACFatalLogMsg)
		return
	}

	s.deps = deps

	app.Get(Path, s.Get)
}

// Get answers OK, or 503 while the service drains.
func (s *Service) Get(c *fiber.Ctx) error {
	if !s.deps.Alive.Load() {
		return c.Status(fiber.StatusServiceUnavailable).SendString("shutting down")
	}

	return c.SendString("OK")
}
