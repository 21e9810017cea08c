package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadOption adjusts a single Load call.
type LoadOption func(*loadConfig)

type loadConfig struct {
	files     []string
	prefix    string
	overrides map[string]string
	osEnv     bool
}

// WithFiles reads dotenv files before parsing. Missing files are skipped.
// Process variables win over file values.
func WithFiles(paths ...string) LoadOption {
	return func(c *loadConfig) { c.files = append(c.files, paths...) }
}

// WithPrefix only considers variables starting with prefix; the prefix is
// stripped before matching field tags.
func WithPrefix(prefix string) LoadOption {
	return func(c *loadConfig) { c.prefix = prefix }
}

// WithValues sets variables that take precedence over files and the process
// environment.
func WithValues(values map[string]string) LoadOption {
	return func(c *loadConfig) {
		if c.overrides == nil {
			c.overrides = make(map[string]string, len(values))
		}
		maps.Copy(c.overrides, values)
	}
}

// WithoutProcessEnv ignores os.Environ. Useful in tests.
func WithoutProcessEnv() LoadOption {
	return func(c *loadConfig) { c.osEnv = false }
}

// Load parses the environment into a new T using `env` struct tags.
//
// Example:
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	cfg, err := config.Load[ServerConfig](config.WithFiles(".env"))
func Load[T any](opts ...LoadOption) (T, error) {
	var cfg T

	lc := loadConfig{osEnv: true}
	for _, opt := range opts {
		opt(&lc)
	}

	environment, err := lc.environment()
	if err != nil {
		return cfg, err
	}

	if err := env.ParseWithOptions(&cfg, env.Options{
		Environment: environment,
		Prefix:      lc.prefix,
	}); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad is like Load but panics on failure. Use it for configuration the
// process cannot start without.
func MustLoad[T any](opts ...LoadOption) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}

func (c loadConfig) environment() (map[string]string, error) {
	out := make(map[string]string)
	for _, path := range c.files {
		values, err := godotenv.Read(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, errors.Join(ErrReadingEnvFile, fmt.Errorf("%s: %w", path, err))
		}
		maps.Copy(out, values)
	}
	if c.osEnv {
		for _, kv := range os.Environ() {
			if k, v, ok := strings.Cut(kv, "="); ok {
				out[k] = v
			}
		}
	}
	maps.Copy(out, c.overrides)
	return out, nil
}
