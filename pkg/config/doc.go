// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for parsing struct tags:
//
//	type Config struct {
//	    Capacity int        `env:"LRU_CAPACITY" envDefault:"128"`
//	    LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Load reads the default .env file once (if it exists) and parses each
// configuration type only once; later calls for the same type are served
// from memory. LoadEnv loads explicit .env files and fails if one is missing.
// ResetCache clears the memoised values between tests.
//
// Errors are sentinels to be checked with errors.Is: ErrParsingConfig,
// ErrLoadingEnvFile, ErrConfigNotLoaded and ErrNilPointer.
package config
