package logger

// Console implements a console based logger.
type Console struct {
	Enabled          bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	UseConsoleWriter bool `mapstructure:"useConsoleWriter" toml:"useConsoleWriter" json:"useConsoleWriter"`
}

// RollingFile configures one lumberjack rotated log file.
type RollingFile struct {
	Name       string `mapstructure:"name" toml:"name" json:"name"`
	MaxSize    int    `mapstructure:"maxSize" toml:"maxSize" json:"maxSize"` // megabytes
	MaxBackups int    `mapstructure:"maxBackups" toml:"maxBackups" json:"maxBackups"`
	MaxAge     int    `mapstructure:"maxAge" toml:"maxAge" json:"maxAge"` // days
}

// LogFile implements a file based logger with one file per level group.
type LogFile struct {
	Enabled bool   `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	Path    string `mapstructure:"path" toml:"path" json:"path"`

	Access RollingFile `mapstructure:"access" toml:"access" json:"access"`
	Error  RollingFile `mapstructure:"error" toml:"error" json:"error"`
	Info   RollingFile `mapstructure:"info" toml:"info" json:"info"`
	Trace  RollingFile `mapstructure:"trace" toml:"trace" json:"trace"`
	Warn   RollingFile `mapstructure:"warn" toml:"warn" json:"warn"`
}

// Log implements the logger config.
type Log struct {
	LogLevel string `mapstructure:"logLevel" toml:"logLevel" json:"logLevel"` // trace, debug, info, warn, error.

	// EnableAccessLogToConsole writes the http access log to the console.
	// Does not overrule Console.Enabled.
	EnableAccessLogToConsole bool `mapstructure:"enableAccessLogToConsole" toml:"enableAccessLogToConsole" json:"enableAccessLogToConsole"` //nolint:lll
	ReportCaller             bool `mapstructure:"reportCaller" toml:"reportCaller" json:"reportCaller"`
	DisableCheckAlive        bool `mapstructure:"disableCheckAlive" toml:"disableCheckAlive" json:"disableCheckAlive"` // do not log /checkalive calls

	AppName     string `mapstructure:"appName" toml:"appName" json:"appName"`
	ServiceName string `mapstructure:"serviceName" toml:"serviceName" json:"serviceName"`

	// Console used mainly for docker, dev and the cli.
	Console Console `mapstructure:"console" toml:"console" json:"console"`

	File LogFile `mapstructure:"file" toml:"file" json:"file"`
}
