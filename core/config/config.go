package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig is returned when Load receives anything but a non-nil
// pointer to a struct.
var ErrInvalidConfig = errors.New("config: target must be a non-nil struct pointer")

var (
	mu    sync.Mutex
	cache = make(map[reflect.Type]any)

	dotenvOnce sync.Once
)

// Load parses environment variables into cfg using its `env` struct tags.
// A .env file in the working directory is loaded once per process before
// the first parse. Each configuration type is parsed only once; subsequent
// calls for the same type return the cached value.
func Load(cfg any) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return ErrInvalidConfig
	}

	// Missing .env files are expected; real env vars still apply.
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	t := v.Elem().Type()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[t]; ok {
		v.Elem().Set(reflect.ValueOf(cached))
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", t, err)
	}

	cache[t] = v.Elem().Interface()
	return nil
}

// MustLoad is Load that panics on failure, for use during startup.
func MustLoad(cfg any) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
