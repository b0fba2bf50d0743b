package config

import (
	"github.com/GoRandomString/GoRandomString/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool          `mapstructure:"devMode" toml:"devMode" json:"devMode"` // enable dev mode for development
	Title     string        `mapstructure:"title" toml:"title" json:"title"`
	Log       logger.Log    `mapstructure:"log" toml:"log" json:"log"`
	Webserver Webserver     `mapstructure:"webserver" toml:"webserver" json:"webserver"`
	Generator GeneratorOpts `mapstructure:"generator" toml:"generator" json:"generator"`
}

// Webserver implements webserver settings.
type Webserver struct {
	Port           int    `mapstructure:"port" toml:"port" json:"port"`                               // listening port for the webserver
	URL            string `mapstructure:"url" toml:"url" json:"url"`                                  // base url for the webserver
	ShutDownTime   int    `mapstructure:"shutDownTime" toml:"shutDownTime" json:"shutDownTime"`       // seconds to answer 503 before shutdown
	FastShutDown   bool   `mapstructure:"fastShutDown" toml:"fastShutDown" json:"fastShutDown"`       // skip the 503 drain window
	ReadBufferSize int    `mapstructure:"readBufferSize" toml:"readBufferSize" json:"readBufferSize"` // fiber read buffer size
}

// GeneratorOpts implements the defaults and limits of the generation endpoints.
type GeneratorOpts struct {
	DefaultLength    int    `mapstructure:"defaultLength" toml:"defaultLength" json:"defaultLength"`
	DefaultPreset    string `mapstructure:"defaultPreset" toml:"defaultPreset" json:"defaultPreset"`
	IgnoreDuplicates bool   `mapstructure:"ignoreDuplicates" toml:"ignoreDuplicates" json:"ignoreDuplicates"`
	MaxLength        int    `mapstructure:"maxLength" toml:"maxLength" json:"maxLength"`
	MaxCount         int    `mapstructure:"maxCount" toml:"maxCount" json:"maxCount"`
	MaxHashCount     int    `mapstructure:"maxHashCount" toml:"maxHashCount" json:"maxHashCount"` // count limit when hashes are requested
}
