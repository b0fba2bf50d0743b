package config

import (
	"github.com/spf13/viper"

	"github.com/GoRandomString/GoRandomString/internal/generator"
)

const (
	defaultPort         = 8080
	defaultShutDownTime = 5 // seconds
	defaultReadBuffer   = 8192
	defaultMaxLength    = 4096
	defaultMaxCount     = 100
	defaultMaxHashCount = 5
)

// setDefaults registers every key, so environment overrides work without a config file entry.
func setDefaults(v *viper.Viper) {
	v.SetDefault("devMode", false)
	v.SetDefault("title", "go-randomstring")

	v.SetDefault("log.logLevel", "info")
	v.SetDefault("log.enableAccessLogToConsole", false)
	v.SetDefault("log.reportCaller", false)
	v.SetDefault("log.disableCheckAlive", true)
	v.SetDefault("log.appName", "go-randomstring")
	v.SetDefault("log.serviceName", "randomstring")
	v.SetDefault("log.console.enabled", true)
	v.SetDefault("log.console.useConsoleWriter", false)
	v.SetDefault("log.file.enabled", false)
	v.SetDefault("log.file.path", "./log")

	for _, name := range []string{"access", "error", "info", "trace", "warn"} {
		v.SetDefault("log.file."+name+".name", name+".log")
		v.SetDefault("log.file."+name+".maxSize", 100)   //nolint:mnd
		v.SetDefault("log.file."+name+".maxBackups", 3) //nolint:mnd
		v.SetDefault("log.file."+name+".maxAge", 28)    //nolint:mnd
	}

	v.SetDefault("webserver.port", defaultPort)
	v.SetDefault("webserver.url", "http://localhost:8080")
	v.SetDefault("webserver.shutDownTime", defaultShutDownTime)
	v.SetDefault("webserver.fastShutDown", false)
	v.SetDefault("webserver.readBufferSize", defaultReadBuffer)

	v.SetDefault("generator.defaultLength", generator.StdLen)
	v.SetDefault("generator.defaultPreset", generator.PresetAlphanumeric)
	v.SetDefault("generator.ignoreDuplicates", true)
	v.SetDefault("generator.maxLength", defaultMaxLength)
	v.SetDefault("generator.maxCount", defaultMaxCount)
	v.SetDefault("generator.maxHashCount", defaultMaxHashCount)
}

// Default returns the configuration built from defaults only.
func Default() Config {
	v := viper.New()
	setDefaults(v)

	var c Config

	_ = v.Unmarshal(&c) //nolint:errcheck // defaults always decode

	return c
}
