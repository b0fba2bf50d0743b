// Package config reads etc/main.toml with environment overrides.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/GoRandomString/GoRandomString/internal/generator"
)

const (
	// EnvPrefix prefixes environment overrides of single keys, e.g. GO_RANDOMSTRING_WEBSERVER_PORT.
	EnvPrefix = "GO_RANDOMSTRING"

	// EnvConfigJSON holds a JSON document merged over the file configuration.
	EnvConfigJSON = EnvPrefix + "_CONFIG_JSON"

	// FileName is the main configuration file inside the config path.
	FileName = "main.toml"
)

// ReadConfig from path + main.toml. An empty path defaults to ./etc/.
func ReadConfig(path string) (Config, error) {
	var c Config

	if path == "" {
		path = "./etc/"
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(filepath.Join(path, FileName))
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode main config file")
	}

	if configAsJSON := os.Getenv(EnvConfigJSON); configAsJSON != "" {
		var err error
		if c, err = decodeAndMergeConfig(c, configAsJSON); err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	if err := json.Unmarshal([]byte(configAsJSON), &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode "+EnvConfigJSON)
	}

	return c, nil
}

// DumpConfig config as TOML string.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer

	enc := toml.NewEncoder(&buffer)
	enc.SetIndentTables(true)

	if err := enc.Encode(c); err != nil {
		return "", err //nolint:wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON string.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer

	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint:wrapcheck
	}

	return buffer.String(), nil
}

// validate the settings the daemon and the generator depend on.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.Generator.DefaultLength < 1 {
		return errors.Wrap(ErrDefaultLengthTooSmall, invalidErrMessage)
	}

	if c.Generator.MaxLength < c.Generator.DefaultLength {
		return errors.Wrap(ErrMaxLengthTooSmall, invalidErrMessage)
	}

	if c.Generator.MaxCount < 1 {
		return errors.Wrap(ErrMaxCountTooSmall, invalidErrMessage)
	}

	if c.Generator.MaxHashCount < 1 || c.Generator.MaxHashCount > c.Generator.MaxCount {
		return errors.Wrap(ErrMaxHashCountOutOfRange, invalidErrMessage)
	}

	if _, err := generator.PresetChars(c.Generator.DefaultPreset); err != nil {
		return errors.Wrap(ErrUnknownDefaultPreset, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	return nil
}
