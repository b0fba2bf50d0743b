// Package random serves random string generation over http.
package random

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoRandomString/GoRandomString/internal/generator"
	"github.com/GoRandomString/GoRandomString/internal/metrics"
	"github.com/GoRandomString/GoRandomString/internal/secret"
	"github.com/GoRandomString/GoRandomString/internal/web/handler"
)

// Path is the generation path.
const Path = handler.APIPath + "/random"

type (
	// Request is the generation request for GET (query) and POST (json body).
	// Unset Characters, Length and IgnoreDuplicates fall back to the configured defaults.
	Request struct {
		Characters       *string `json:"characters" validate:"omitempty,max=65536"`
		Preset           string  `json:"preset" validate:"omitempty,max=32"`
		Length           *int    `json:"length"`
		IgnoreDuplicates *bool   `json:"ignoreDuplicates"`
		Count            int     `json:"count" validate:"gte=0"`
		Hash             string  `json:"hash" validate:"omitempty,oneof=argon2id bcrypt"`
	}

	// Response is the body of a successful generation.
	Response struct {
		Success     bool     `json:"success"`
		Values      []string `json:"values"`
		Hashes      []string `json:"hashes,omitempty"`
		Length      int      `json:"length"`
		CharsetSize int      `json:"charsetSize"`
	}
)

// Service is the random string handler service.
type Service struct {
	deps      *handler.Deps
	validator *validator.Validate
}

// Init registers the generation routes.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) {
	if app == nil || deps == nil || deps.Config == nil || deps.Metrics == nil {
		log.Fatal().Msg(handler.ErrNilACFatalLogMsg)
		return
	}

	s.deps = deps
	s.validator = validator.New()

	app.Get(Path, s.Get)
	app.Post(Path, s.Post)
}

// Get handles generation from query parameters.
func (s *Service) Get(c *fiber.Ctx) error {
	req := Request{
		Preset: c.Query("preset"),
		Hash:   c.Query("hash"),
	}

	// an empty characters parameter is passed on and rejected by the generator.
	if c.Context().QueryArgs().Has("characters") {
		chars := c.Query("characters")
		req.Characters = &chars
	}

	if raw := c.Query("length"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return s.reject(c, "length must be an integer")
		}

		req.Length = &n
	}

	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return s.reject(c, "count must be an integer")
		}

		req.Count = n
	}

	if raw := c.Query("ignoreDuplicates"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return s.reject(c, "ignoreDuplicates must be a boolean")
		}

		req.IgnoreDuplicates = &b
	}

	return s.generate(c, req)
}

// Post handles generation from a json body.
func (s *Service) Post(c *fiber.Ctx) error {
	var req Request

	if err := c.BodyParser(&req); err != nil {
		log.Debug().Err(err).Msg("failed to parse generation request")

		return s.reject(c, "invalid request body")
	}

	return s.generate(c, req)
}

func (s *Service) generate(c *fiber.Ctx, req Request) error {
	opts := s.deps.Config.Generator

	if fields, err := validateStruct(s.validator, req); err != nil {
		log.Debug().Err(err).Msg("validation failed for generation request")

		return s.reject(c, "request validation failed", fields...)
	}

	genReq, err := s.toGeneratorRequest(req)
	if err != nil {
		return s.fail(c, err)
	}

	count := req.Count
	if count == 0 {
		count = 1
	}

	switch {
	case count > opts.MaxCount:
		return s.reject(c, "count exceeds the limit of "+strconv.Itoa(opts.MaxCount))
	case req.Hash != "" && count > opts.MaxHashCount:
		return s.reject(c, "count exceeds the limit of "+strconv.Itoa(opts.MaxHashCount)+" for hashed values")
	case genReq.Length > opts.MaxLength:
		return s.reject(c, "length exceeds the limit of "+strconv.Itoa(opts.MaxLength))
	}

	cs, err := genReq.Validate()
	if err != nil {
		return s.fail(c, err)
	}

	algo := secret.Algorithm(req.Hash)
	if req.Hash != "" {
		if err := secret.CheckLength(algo, cs.MaxBytes(genReq.Length)); err != nil {
			return s.reject(c, err.Error())
		}
	}

	resp := Response{
		Success:     true,
		Values:      make([]string, count),
		Length:      genReq.Length,
		CharsetSize: len(cs),
	}

	for i := range resp.Values {
		if resp.Values[i], err = generator.FromCharset(cs, genReq.Length); err != nil {
			return s.fail(c, err)
		}
	}

	if req.Hash != "" {
		if resp.Hashes, err = hashAll(resp.Values, algo); err != nil {
			log.Error().Err(err).Str("hash", req.Hash).Msg("failed to hash generated values")
			s.deps.Metrics.Rejected(metrics.SourceHTTP, generator.KindInternal)

			return handler.SendError(c, fiber.StatusInternalServerError, generator.KindInternal, "failed to hash generated values")
		}
	}

	s.deps.Metrics.Generated(metrics.SourceHTTP, genReq.Length, count)

	return c.JSON(resp)
}

// toGeneratorRequest applies presets and configured defaults.
func (s *Service) toGeneratorRequest(req Request) (generator.Request, error) {
	opts := s.deps.Config.Generator

	genReq := generator.Request{
		Length:           opts.DefaultLength,
		IgnoreDuplicates: opts.IgnoreDuplicates,
	}

	preset := req.Preset
	if preset == "" && req.Characters == nil {
		preset = opts.DefaultPreset
	}

	switch {
	case preset == "" && req.Characters != nil:
		genReq.Characters = *req.Characters
	case preset != "":
		chars, err := generator.PresetChars(preset)
		if err != nil {
			return genReq, err
		}

		genReq.Characters = chars
	}

	if req.Length != nil {
		genReq.Length = *req.Length
	}

	if req.IgnoreDuplicates != nil {
		genReq.IgnoreDuplicates = *req.IgnoreDuplicates
	}

	return genReq, nil
}

// reject answers 400 invalid_request for requests refused before generation.
func (s *Service) reject(c *fiber.Ctx, message string, fields ...handler.FieldError) error {
	s.deps.Metrics.Rejected(metrics.SourceHTTP, handler.KindInvalidRequest)

	return handler.SendError(c, fiber.StatusBadRequest, handler.KindInvalidRequest, message, fields...)
}

// fail reports a generator error. Input errors answer 400, everything else 500.
func (s *Service) fail(c *fiber.Ctx, err error) error {
	s.deps.Metrics.Failed(metrics.SourceHTTP, err)

	kind := generator.Kind(err)

	if generator.IsInputError(err) {
		return handler.SendError(c, fiber.StatusBadRequest, kind, err.Error())
	}

	log.Error().Err(err).Msg("random string generation failed")

	return handler.SendError(c, fiber.StatusInternalServerError, kind, "random string generation failed")
}

func hashAll(values []string, algo secret.Algorithm) ([]string, error) {
	hashes := make([]string, len(values))

	for i, v := range values {
		h, err := secret.Hash(v, algo)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		hashes[i] = h
	}

	return hashes, nil
}
