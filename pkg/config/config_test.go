package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	require.Equal(t, Default(), cfg)
	require.Equal(t, "kimne78kx3ncx6brgo4mv6wki5h1ko", cfg.Twitch.ClientID)
	require.Equal(t, "https://usher.ttvnw.net", cfg.Twitch.Endpoints.Usher)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, 1.0, cfg.Sentry.TracesSampleRate)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
twitch:
  client_id: my-client
  endpoints:
    helix: http://127.0.0.1:8080/helix
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "my-client", cfg.Twitch.ClientID)
	require.Equal(t, "http://127.0.0.1:8080/helix", cfg.Twitch.Endpoints.Helix)
	require.Equal(t, "https://gql.twitch.tv/gql", cfg.Twitch.Endpoints.GQL)
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "twitch: [unterminated"))
	require.ErrorContains(t, err, "failed to parse YAML config")
}

func TestLoadValidationFailure(t *testing.T) {
	_, err := Load(writeConfig(t, "log:\n  level: loud\n"))
	require.ErrorContains(t, err, "failed to validate config")

	_, err = Load(writeConfig(t, "twitch:\n  endpoints:\n    tmi: not a url\n"))
	require.ErrorContains(t, err, "failed to validate config")
}
