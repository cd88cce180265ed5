package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/hyperpm/internal/testutil"
)

func TestLoader_Load_YAML(t *testing.T) {
	t.Parallel()

	path := testutil.WriteTempFile(t, "hyperpm.yaml", `
refresh:
  extension: ms-python.python
  install_timeout: 5m
log:
  level: debug
  format: json
  color: false
`)

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ms-python.python", cfg.Refresh.Extension)
	assert.Equal(t, 30*time.Second, cfg.Refresh.ListTimeout.Std(), "unset fields keep defaults")
	assert.Equal(t, 5*time.Minute, cfg.Refresh.InstallTimeout.Std())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, FormatJSON, cfg.Log.Format)
	assert.False(t, cfg.Log.Color)
}

func TestLoader_Load_TOML(t *testing.T) {
	t.Parallel()

	path := testutil.WriteTempFile(t, "hyperpm.toml", `
[refresh]
extension = "golang.go"
list_timeout = "10s"

[log]
level = "warn"
`)

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "golang.go", cfg.Refresh.Extension)
	assert.Equal(t, 10*time.Second, cfg.Refresh.ListTimeout.Std())
	assert.Equal(t, 120*time.Second, cfg.Refresh.InstallTimeout.Std())
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, FormatText, cfg.Log.Format)
}

func TestLoader_Load_EmptyFile(t *testing.T) {
	t.Parallel()

	path := testutil.WriteTempFile(t, "hyperpm.yaml", "")

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoader_Load_DefaultPathMissing(t *testing.T) {
	t.Parallel()

	loader := &Loader{readFile: func(name string) ([]byte, error) {
		assert.Equal(t, DefaultPath, name)
		return nil, os.ErrNotExist
	}}

	cfg, err := loader.Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoader_Load_ExplicitPathMissing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := NewLoader().Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, &UserError{Code: ErrCodeConfigNotFound}))
}

func TestLoader_Load_ReadError(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"", "hyperpm.yaml"} {
		loader := &Loader{readFile: func(string) ([]byte, error) { return nil, fs.ErrPermission }}

		_, err := loader.Load(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrPermission)
		assert.True(t, errors.Is(err, &UserError{Code: ErrCodeConfigRead}))
		assert.False(t, errors.Is(err, &UserError{Code: ErrCodeConfigNotFound}))
	}
}

func TestLoader_Load_ParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		file           string
		content        string
		wantSuggestion string
	}{
		{
			name:           "bad yaml",
			file:           "hyperpm.yaml",
			content:        "refresh: [unterminated",
			wantSuggestion: "YAML",
		},
		{
			name:           "unknown yaml key",
			file:           "hyperpm.yaml",
			content:        "refresh:\n  extensions: [a.b]\n",
			wantSuggestion: "unknown key",
		},
		{
			name:           "bad duration",
			file:           "hyperpm.yaml",
			content:        "refresh:\n  list_timeout: 30\n",
			wantSuggestion: "Durations",
		},
		{
			name:           "bad toml",
			file:           "hyperpm.toml",
			content:        "[refresh\nextension = 1",
			wantSuggestion: "TOML",
		},
		{
			name:           "unknown toml key",
			file:           "hyperpm.toml",
			content:        "[refresh]\nforce = true\n",
			wantSuggestion: "unknown key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := testutil.WriteTempFile(t, tt.file, tt.content)

			_, err := NewLoader().Load(path)
			require.Error(t, err)

			var userErr *UserError
			require.True(t, errors.As(err, &userErr))
			assert.Equal(t, ErrCodeConfigParse, userErr.Code)
			assert.Equal(t, path, userErr.Context)
			assert.Contains(t, userErr.Suggestion, tt.wantSuggestion)
			assert.NotNil(t, userErr.Unwrap())
		})
	}
}

func TestLoader_Load_ValidationError(t *testing.T) {
	t.Parallel()

	path := testutil.WriteTempFile(t, "hyperpm.yaml", "log:\n  format: xml\n")

	_, err := NewLoader().Load(path)
	require.Error(t, err)

	var userErr *UserError
	require.True(t, errors.As(err, &userErr))
	assert.Equal(t, ErrCodeValidationFailed, userErr.Code)
	assert.Equal(t, path+": log.format", userErr.Context)
}

func TestLoader_Load_BuilderRoundTrip(t *testing.T) {
	t.Parallel()

	builder := testutil.NewConfigBuilder().
		WithExtension("golang.go").
		WithListTimeout(15 * time.Second).
		WithInstallTimeout(3 * time.Minute).
		WithLogLevel("error").
		WithLogFormat(FormatJSON).
		WithColor(false)

	for name, content := range map[string]string{
		"hyperpm.yaml": builder.ToYAML(),
		"hyperpm.toml": builder.ToTOML(),
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg, err := NewLoader().Load(testutil.WriteTempFile(t, name, content))
			require.NoError(t, err)

			assert.Equal(t, &Config{
				Refresh: RefreshConfig{
					Extension:      "golang.go",
					ListTimeout:    Duration(15 * time.Second),
					InstallTimeout: Duration(3 * time.Minute),
				},
				Log: LogConfig{Level: "error", Format: FormatJSON, Color: false},
			}, cfg)
		})
	}
}
