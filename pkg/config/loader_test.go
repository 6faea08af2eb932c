package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/comments/pkg/config"
)

type limits struct {
	Required  bool `env:"REQUIRED"`
	MaxLength int  `env:"MAX_LENGTH"`
}

type testConfig struct {
	Name  limits   `envPrefix:"NAME_"`
	Tags  []string `env:"TAGS" envSeparator:","`
	Title string   `env:"TITLE" envDefault:"untitled"`
}

func TestLoad_KeepsPresetValues(t *testing.T) {
	cfg := testConfig{Name: limits{Required: true, MaxLength: 64}}

	err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
	require.NoError(t, err)

	assert.True(t, cfg.Name.Required)
	assert.Equal(t, 64, cfg.Name.MaxLength)
	assert.Equal(t, "untitled", cfg.Title)
}

func TestLoad_OverridesFromEnvironment(t *testing.T) {
	cfg := testConfig{Name: limits{Required: true, MaxLength: 64}}

	err := config.Load(&cfg,
		config.WithPrefix("APP_"),
		config.WithEnvironment(map[string]string{
			"APP_NAME_REQUIRED":   "false",
			"APP_NAME_MAX_LENGTH": "10",
			"APP_TAGS":            "p,a,em",
		}),
	)
	require.NoError(t, err)

	assert.False(t, cfg.Name.Required)
	assert.Equal(t, 10, cfg.Name.MaxLength)
	assert.Equal(t, []string{"p", "a", "em"}, cfg.Tags)
}

func TestLoad_InvalidValue(t *testing.T) {
	var cfg testConfig
	err := config.Load(&cfg, config.WithEnvironment(map[string]string{"NAME_MAX_LENGTH": "many"}))
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *testConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestMustLoad_Panics(t *testing.T) {
	var cfg testConfig
	assert.Panics(t, func() {
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{"NAME_REQUIRED": "maybe"}))
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("missing files are ignored", func(t *testing.T) {
		assert.NoError(t, config.LoadEnv(filepath.Join(t.TempDir(), "absent.env")))
	})

	t.Run("loads variables from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("CONFIG_LOADENV_TEST=loaded\n"), 0o600))
		t.Setenv("CONFIG_LOADENV_TEST", "")
		require.NoError(t, os.Unsetenv("CONFIG_LOADENV_TEST"))

		require.NoError(t, config.LoadEnv(path))
		assert.Equal(t, "loaded", os.Getenv("CONFIG_LOADENV_TEST"))
	})
}
