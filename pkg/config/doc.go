// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files (default: `.env` in the working
//     directory) into the process environment.
//   - Load parses the environment into any struct using `env` tags and caches
//     the result per type, so each config is parsed once per process.
//   - Types implementing Validator are validated before they are cached.
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/i18nliner/pkg/callhelpers"
//	    "github.com/dmitrymomot/i18nliner/pkg/config"
//	)
//
//	var cfg callhelpers.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//	n := callhelpers.NewNormalizer(callhelpers.WithConfig(cfg))
//
// # Error Handling
//
//   - ErrParsingConfig – env vars could not be parsed into the struct.
//   - ErrInvalidConfig – the parsed struct failed Validate.
//   - ErrLoadingEnvFile – a .env file could not be read.
//   - ErrNilPointer – nil pointer passed to Load.
//
// # Testing Helpers
//
// ResetCache clears every cached config; ForceReloadConfig re-parses one type
// after the environment changed.
package config
