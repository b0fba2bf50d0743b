// Package fiber provides a zerolog access log middleware for fiber.
package fiber

import (
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/GoRandomString/GoRandomString/internal/logger"
)

// HeaderResponseTime carries the handler duration in seconds.
const HeaderResponseTime = "X-Response-Time"

// Config implements the middleware config.
type Config struct {
	// Next defines a function to skip this middleware when returned true.
	//
	// Optional. Default: nil
	Next func(c *fiber.Ctx) bool

	// Config of the logger.
	Config logger.Log

	// CacheControlError is sent when the error handler itself fails.
	CacheControlError string

	// CheckAliveURI is not logged if Config.DisableCheckAlive is set.
	CheckAliveURI string

	// KindLocalsKey names the fiber local holding the error kind of a failed
	// generation. The kind is added to the access log line when set.
	KindLocalsKey string
}

// ConfigDefault is the default config.
var ConfigDefault = Config{ //nolint:gochecknoglobals
	CacheControlError: "no-store",
}

func configDefault(config ...Config) Config {
	if len(config) < 1 {
		return ConfigDefault
	}

	cfg := config[0]
	if cfg.CacheControlError == "" {
		cfg.CacheControlError = ConfigDefault.CacheControlError
	}

	return cfg
}

// New creates a fiber access logging middleware using zerolog.
func New(config ...Config) fiber.Handler {
	cfg := configDefault(config...)
	accessLogger := newAccessLogger(cfg.Config)

	var (
		once       sync.Once
		errHandler fiber.ErrorHandler
	)

	return func(ctx *fiber.Ctx) error {
		if cfg.Next != nil && cfg.Next(ctx) {
			return ctx.Next()
		}

		once.Do(func() {
			errHandler = ctx.App().ErrorHandler
		})

		start := time.Now()

		chainErr := ctx.Next()
		if chainErr != nil && errHandler(ctx, chainErr) != nil {
			_ = ctx.SendStatus(fiber.StatusInternalServerError) //nolint:errcheck
			ctx.Response().Header.Set(fiber.HeaderCacheControl, cfg.CacheControlError)
		}

		elapsed := time.Since(start).Seconds()
		ctx.Response().Header.Set(HeaderResponseTime, strconv.FormatFloat(elapsed, 'f', 6, 64))

		if cfg.Config.DisableCheckAlive && ctx.Path() == cfg.CheckAliveURI {
			return nil
		}

		// RequestURI is what the client sent, Path is normalized by fasthttp.
		event := accessLogger.Log().
			Str("ip", ctx.IP()).
			Str("method", ctx.Method()).
			Bytes("host", ctx.Request().Host()).
			Bytes("uri", ctx.Request().RequestURI()).
			Int("status", ctx.Response().StatusCode()).
			Float64("duration", elapsed).
			Str("forwarded_for", ctx.Get(fiber.HeaderXForwardedFor)).
			Str("user_agent", ctx.Get(fiber.HeaderUserAgent))

		if cfg.KindLocalsKey != "" {
			if kind, ok := ctx.Locals(cfg.KindLocalsKey).(string); ok && kind != "" {
				event.Str("kind", kind)
			}
		}

		if chainErr != nil {
			event.Err(chainErr)
		}

		event.Send()

		return nil
	}
}

// newAccessLogger writes to the access file and, if enabled, the console.
// Without any target it discards everything.
func newAccessLogger(cfg logger.Log) zerolog.Logger {
	var writers []io.Writer

	if cfg.File.Enabled {
		if w := newRollingAccessFile(cfg.File); w != nil {
			writers = append(writers, w)
		}
	}

	if cfg.Console.Enabled && cfg.EnableAccessLogToConsole {
		if cfg.Console.UseConsoleWriter {
			writers = append(writers, zerolog.ConsoleWriter{
				Out:          os.Stdout,
				TimeFormat:   zerolog.TimeFieldFormat,
				PartsExclude: []string{zerolog.LevelFieldName},
			})
		} else {
			writers = append(writers, os.Stdout)
		}
	}

	if len(writers) == 0 {
		return zerolog.Nop()
	}

	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Logger().
		Level(zerolog.NoLevel)
}

func newRollingAccessFile(cfg logger.LogFile) io.Writer {
	if cfg.Path != "" {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil { //nolint:mnd
			log.Error().Err(err).Str("path", cfg.Path).Msg("can't create log directory")

			return nil
		}
	}

	return logger.NewRollingFile(cfg.Path, cfg.Access)
}
