// Package presets lists the named character sets.
package presets

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoRandomString/GoRandomString/internal/generator"
	"github.com/GoRandomString/GoRandomString/internal/web/handler"
)

// Path is the presets listing path.
const Path = handler.APIPath + "/presets"

// Response lists presets by name and the configured default.
type Response struct {
	Success bool              `json:"success"`
	Default string            `json:"default"`
	Presets map[string]string `json:"presets"`
}

// Service is the presets handler service.
type Service struct {
	deps *handler.Deps
}

// Init registers the presets route.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) {
	if app == nil || deps == nil || deps.Config == nil {
		log.Fatal().Msg(handler.ErrNilACFatalLogMsg)
		return
	}

	s.deps = deps

	app.Get(Path, s.Get)
}

// Get returns all presets.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.JSON(Response{
		Success: true,
		Default: s.deps.Config.Generator.DefaultPreset,
		Presets: generator.Presets(),
	})
}
