package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/config"
)

type appConfig struct {
	Name     string   `env:"NAME" envDefault:"rulekit"`
	Port     int      `env:"PORT" envDefault:"8080"`
	Tags     []string `env:"TAGS" envSeparator:","`
	Shadowed string   `env:"SHADOWED"`
}

type requiredConfig struct {
	Secret string `env:"RULEKIT_TEST_SECRET,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.Load[appConfig](config.WithoutProcessEnv())
		require.NoError(t, err)
		assert.Equal(t, "rulekit", cfg.Name)
		assert.Equal(t, 8080, cfg.Port)
		assert.Empty(t, cfg.Tags)
	})

	t.Run("file with prefix", func(t *testing.T) {
		cfg, err := config.Load[appConfig](
			config.WithoutProcessEnv(),
			config.WithFiles("testdata/app.env"),
			config.WithPrefix("APP_"),
		)
		require.NoError(t, err)
		assert.Equal(t, "from_file", cfg.Name)
		assert.Equal(t, 9000, cfg.Port)
		assert.Equal(t, []string{"a", "b", "c"}, cfg.Tags)
		assert.Equal(t, "file", cfg.Shadowed)
	})

	t.Run("process env wins over file", func(t *testing.T) {
		t.Setenv("APP_SHADOWED", "process")
		cfg, err := config.Load[appConfig](
			config.WithFiles("testdata/app.env"),
			config.WithPrefix("APP_"),
		)
		require.NoError(t, err)
		assert.Equal(t, "process", cfg.Shadowed)
	})

	t.Run("explicit values win over everything", func(t *testing.T) {
		t.Setenv("APP_SHADOWED", "process")
		cfg, err := config.Load[appConfig](
			config.WithFiles("testdata/app.env"),
			config.WithPrefix("APP_"),
			config.WithValues(map[string]string{"APP_SHADOWED": "explicit"}),
		)
		require.NoError(t, err)
		assert.Equal(t, "explicit", cfg.Shadowed)
	})

	t.Run("missing file is skipped", func(t *testing.T) {
		cfg, err := config.Load[appConfig](
			config.WithoutProcessEnv(),
			config.WithFiles("testdata/does-not-exist.env"),
		)
		require.NoError(t, err)
		assert.Equal(t, "rulekit", cfg.Name)
	})

	t.Run("parse error", func(t *testing.T) {
		_, err := config.Load[appConfig](
			config.WithoutProcessEnv(),
			config.WithValues(map[string]string{"PORT": "not-a-number"}),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("required variable missing", func(t *testing.T) {
		_, err := config.Load[requiredConfig](config.WithoutProcessEnv())
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		config.MustLoad[requiredConfig](config.WithoutProcessEnv())
	})

	assert.NotPanics(t, func() {
		cfg := config.MustLoad[requiredConfig](
			config.WithoutProcessEnv(),
			config.WithValues(map[string]string{"RULEKIT_TEST_SECRET": "s3cr3t"}),
		)
		assert.Equal(t, "s3cr3t", cfg.Secret)
	})
}
