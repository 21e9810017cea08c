// Package config loads typed configuration from environment variables.
//
// Values are assembled from three layers, lowest precedence first: dotenv
// files read with github.com/joho/godotenv, the process environment, and
// explicit values passed with WithValues. The merged map is parsed into a
// struct by github.com/caarlos0/env/v11, so `env`, `envDefault` and
// `envSeparator` tags work as usual.
//
//	type Config struct {
//		Addr     string `env:"HTTP_ADDR" envDefault:":8080"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	cfg, err := config.Load[Config](config.WithFiles(".env"))
//
// The process environment is never modified.
package config
