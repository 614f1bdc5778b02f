package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Validator is implemented by config structs that check their own values
// after parsing.
type Validator interface {
	Validate() error
}

// configCache stores parsed configs keyed by type name.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
}

var (
	globalCache = &configCache{values: make(map[string]any)}

	defaultEnvMu     sync.Mutex
	defaultEnvLoaded bool
)

// LoadEnv loads .env files into the process environment. Without paths it
// loads ".env" from the working directory. Variables already present in
// the environment are not overridden.
func LoadEnv(paths ...string) error {
	defaultEnvMu.Lock()
	defer defaultEnvMu.Unlock()
	defaultEnvLoaded = true

	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}

// Load parses environment variables into v. Each config type is parsed once
// and served from cache afterwards. If the type implements Validator, the
// parsed value must pass validation before it is cached.
//
// Example:
//
//	var cfg callhelpers.Config
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	loadDefaultEnv()

	typeName := getTypeName[T]()

	globalCache.mu.RLock()
	cached, ok := globalCache.values[typeName]
	globalCache.mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	// Another goroutine may have parsed it while we waited for the lock.
	if cached, ok := globalCache.values[typeName]; ok {
		*v = cached.(T)
		return nil
	}

	parsed, err := parse[T]()
	if err != nil {
		return err
	}
	globalCache.values[typeName] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// ForceReloadConfig parses v again, replacing any cached value.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	parsed, err := parse[T]()
	if err != nil {
		return err
	}

	globalCache.mu.Lock()
	globalCache.values[getTypeName[T]()] = parsed
	globalCache.mu.Unlock()

	*v = parsed
	return nil
}

// ResetCache drops every cached config.
func ResetCache() {
	globalCache.mu.Lock()
	globalCache.values = make(map[string]any)
	globalCache.mu.Unlock()
}

func parse[T any]() (T, error) {
	var out T
	if err := env.Parse(&out); err != nil {
		return out, errors.Join(ErrParsingConfig, err)
	}
	if vv, ok := any(out).(Validator); ok {
		if err := vv.Validate(); err != nil {
			return out, errors.Join(ErrInvalidConfig, err)
		}
	}
	return out, nil
}

func loadDefaultEnv() {
	defaultEnvMu.Lock()
	defer defaultEnvMu.Unlock()
	if defaultEnvLoaded {
		return
	}
	defaultEnvLoaded = true
	// The .env file is optional.
	_ = godotenv.Load()
}

// getTypeName returns a string identifier for the generic type T
func getTypeName[T any]() string {
	t := reflect.TypeFor[T]()
	return t.PkgPath() + "." + t.String()
}
