package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrConfigNotLoaded is returned when attempting to access a config that hasn't been loaded
	ErrConfigNotLoaded = errors.New("configuration has not been loaded")

	// ErrNilPointer is returned when a nil pointer is provided to Load
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrInvalidField is returned when a field configuration fails validation
	// or cannot be turned into an engine.
	ErrInvalidField = errors.New("invalid field configuration")

	// ErrReadingProfiles is returned when a profiles file cannot be opened.
	ErrReadingProfiles = errors.New("failed to read profiles")

	// ErrParsingProfiles is returned when a profiles document is not valid YAML.
	ErrParsingProfiles = errors.New("failed to parse profiles")

	// ErrUnknownField is returned when a profile name is not defined.
	ErrUnknownField = errors.New("unknown field")
)
