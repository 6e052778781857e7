package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bruce-pain/authkit/pkg/config"
)

type testConfig struct {
	Name    string        `env:"LOADER_TEST_NAME" envDefault:"fallback"`
	Port    int           `env:"LOADER_TEST_PORT" envDefault:"8080"`
	Timeout time.Duration `env:"LOADER_TEST_TIMEOUT" envDefault:"5s"`
}

type requiredConfig struct {
	Secret string `env:"LOADER_TEST_SECRET,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults applied when env unset", func(t *testing.T) {
		config.Reset()

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "fallback", cfg.Name)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("reads values from environment", func(t *testing.T) {
		config.Reset()
		t.Setenv("LOADER_TEST_NAME", "authkit")
		t.Setenv("LOADER_TEST_PORT", "9090")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "authkit", cfg.Name)
		assert.Equal(t, 9090, cfg.Port)
	})

	t.Run("caches parsed config per type", func(t *testing.T) {
		config.Reset()
		t.Setenv("LOADER_TEST_NAME", "first")

		var first testConfig
		require.NoError(t, config.Load(&first))
		require.Equal(t, "first", first.Name)

		// Mutating the environment after the first Load has no effect.
		t.Setenv("LOADER_TEST_NAME", "second")

		var second testConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first", second.Name)
	})

	t.Run("reset forces re-parse", func(t *testing.T) {
		config.Reset()
		t.Setenv("LOADER_TEST_NAME", "before")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		require.Equal(t, "before", cfg.Name)

		config.Reset()
		t.Setenv("LOADER_TEST_NAME", "after")

		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "after", cfg.Name)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		config.Reset()

		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer rejected", func(t *testing.T) {
		config.Reset()

		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics when loading fails", func(t *testing.T) {
		config.Reset()

		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("succeeds with valid environment", func(t *testing.T) {
		config.Reset()
		t.Setenv("LOADER_TEST_SECRET", "s3cret")

		var cfg requiredConfig
		assert.NotPanics(t, func() {
			config.MustLoad(&cfg)
		})
		assert.Equal(t, "s3cret", cfg.Secret)
	})
}
