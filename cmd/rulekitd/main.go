package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/rulekit/modules/sample"
	"github.com/dmitrymomot/rulekit/pkg/config"
	"github.com/dmitrymomot/rulekit/pkg/httpserver"
	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/requestid"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	HTTP      httpserver.Config
	Validator validator.Config
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "rulekitd: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load[appConfig](config.WithFiles(".env"))
	if err != nil {
		return err
	}

	logOpts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "rulekitd"),
		logger.WithContextExtractors(requestid.Extractor()),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		logOpts = append(logOpts, logger.WithLevel(level))
	}
	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return err
		}
		logOpts = append(logOpts, logger.WithFormat(format))
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	vopts, err := cfg.Validator.Options()
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Get("/health", httpserver.HealthHandler())
	r.Mount("/", sample.Router(sample.RouterOptions{
		Logger:      log,
		Development: cfg.Env == "development",
		Validator:   vopts,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return httpserver.New(cfg.HTTP, r, httpserver.WithLogger(log)).Run(ctx)
}
