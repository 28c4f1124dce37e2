package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vidbox.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
catalog:
  sources:
    - type: file
      display_name: local
      settings:
        path: videos.txt
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Not supplied", cfg.Moderation.DefaultFlagReason)
	assert.Equal(t, "vidbox> ", cfg.Shell.Prompt)
	assert.Equal(t, 1, cfg.Shell.MaxSuggestions)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.Equal(t, uint64(0), cfg.Playback.RandomSeed)
	assert.Equal(t, []string{"file"}, cfg.SourceTypes())
}

func TestLoad_FileValues(t *testing.T) {
	path := writeConfig(t, `
catalog:
  sources:
    - type: http
      display_name: remote
      settings:
        url: http://localhost/videos
    - type: inline
      display_name: builtin
      settings:
        videos:
          - id: "1"
            title: Amazing Cat Video
playback:
  random_seed: 42
moderation:
  default_flag_reason: Unspecified
shell:
  prompt: "YT> "
  max_suggestions: 3
log:
  level: debug
  output: stdout
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"http", "inline"}, cfg.SourceTypes())
	assert.Equal(t, uint64(42), cfg.Playback.RandomSeed)
	assert.Equal(t, "Unspecified", cfg.Moderation.DefaultFlagReason)
	assert.Equal(t, "YT> ", cfg.Shell.Prompt)
	assert.Equal(t, 3, cfg.Shell.MaxSuggestions)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		config string
		errMsg string
	}{
		{
			name:   "no sources",
			config: `playback: {random_seed: 1}`,
			errMsg: "Sources",
		},
		{
			name: "unknown source type",
			config: `
catalog:
  sources:
    - type: ftp
      display_name: x
      settings: {path: a}
`,
			errMsg: "Type",
		},
		{
			name: "missing settings",
			config: `
catalog:
  sources:
    - type: file
      display_name: x
`,
			errMsg: "Settings",
		},
		{
			name: "invalid log level",
			config: `
catalog:
  sources:
    - type: file
      display_name: x
      settings: {path: a}
log:
  level: verbose
`,
			errMsg: "Level",
		},
		{
			name: "too many suggestions",
			config: `
catalog:
  sources:
    - type: file
      display_name: x
      settings: {path: a}
shell:
  max_suggestions: 50
`,
			errMsg: "MaxSuggestions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.config))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_Options(t *testing.T) {
	cfg, err := Load("", WithCatalogFile("videos.txt"), WithRandomSeed(7), WithLogLevel("debug"))
	require.NoError(t, err)

	require.Len(t, cfg.Catalog.Sources, 1)
	assert.Equal(t, "file", cfg.Catalog.Sources[0].Type)
	assert.Equal(t, "videos.txt", cfg.Catalog.Sources[0].Settings["path"])
	assert.Equal(t, uint64(7), cfg.Playback.RandomSeed)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("VIDBOX_CATALOG", "from-env.txt")
	t.Setenv("VIDBOX_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Len(t, cfg.Catalog.Sources, 1)
	assert.Equal(t, "from-env.txt", cfg.Catalog.Sources[0].Settings["path"])
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_EnvAPIKey(t *testing.T) {
	t.Setenv("VIDBOX_REMOTE_API_KEY", "secret")

	path := writeConfig(t, `
catalog:
  sources:
    - type: http
      display_name: remote
      settings:
        url: http://localhost/videos
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.Catalog.Sources[0].Settings["api_key"])
}

func TestLoad_OptionBeatsEnv(t *testing.T) {
	t.Setenv("VIDBOX_CATALOG", "from-env.txt")

	cfg, err := Load("", WithCatalogFile("from-flag.txt"))
	require.NoError(t, err)
	assert.Equal(t, "from-flag.txt", cfg.Catalog.Sources[0].Settings["path"])
}
