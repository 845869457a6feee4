package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("config: failed to parse environment variables")

	// ErrLoadingEnvFile is returned when an explicitly requested .env file cannot be read
	ErrLoadingEnvFile = errors.New("config: failed to load env file")

	// ErrConfigNotLoaded is returned when a config type could not be served from the cache after parsing
	ErrConfigNotLoaded = errors.New("config: configuration has not been loaded")

	// ErrNilPointer is returned when a nil pointer is provided to Load
	ErrNilPointer = errors.New("config: nil pointer provided to loader")
)
