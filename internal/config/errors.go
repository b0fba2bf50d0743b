package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.url is empty.
	ErrEmptyURL = errors.New("config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("config webserver.port listening port can not be 0")

	// ErrDefaultLengthTooSmall error if config generator.defaultLength is smaller than 1.
	ErrDefaultLengthTooSmall = errors.New("config generator.defaultLength must be at least 1")

	// ErrMaxLengthTooSmall error if config generator.maxLength is smaller than generator.defaultLength.
	ErrMaxLengthTooSmall = errors.New("config generator.maxLength can not be smaller than generator.defaultLength")

	// ErrMaxCountTooSmall error if config generator.maxCount is smaller than 1.
	ErrMaxCountTooSmall = errors.New("config generator.maxCount must be at least 1")

	// ErrMaxHashCountOutOfRange error if config generator.maxHashCount is not within 1 and generator.maxCount.
	ErrMaxHashCountOutOfRange = errors.New("config generator.maxHashCount must be between 1 and generator.maxCount")

	// ErrUnknownDefaultPreset error if config generator.defaultPreset is not a known preset.
	ErrUnknownDefaultPreset = errors.New("config generator.defaultPreset is not a known preset")
)
