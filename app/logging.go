package app

import (
	"github.com/GoRandomString/GoRandomString/internal/logger"
)

// initCLILogger configures human readable console logging for one-shot commands.
func initCLILogger() error {
	return logger.Init(logger.Log{
		LogLevel:    logLevel,
		AppName:     "go-randomstring",
		ServiceName: "randomstring-cli",
		Console: logger.Console{
			Enabled:          true,
			UseConsoleWriter: true,
		},
	})
}
