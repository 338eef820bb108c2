// Package config provides type-safe environment variable loading with
// per-type caching. A .env file is loaded automatically on first use and
// the caarlos0/env library parses environment variables into struct fields.
//
//	type ServerConfig struct {
//		Addr string `env:"SERVER_ADDR" envDefault:":8000"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Each configuration type is loaded once per process; later Load calls for
// the same type return the cached value, so independently constructed
// components see identical configuration.
package config
