package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTempDirs(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("TEMP_DIR", filepath.Join(dir, "tmp"))
	t.Setenv("LOG_DIR", filepath.Join(dir, "logs"))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	setTempDirs(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendFS, cfg.StorageBackend)
	assert.Equal(t, 500*time.Millisecond, cfg.InterCallDelay)
	assert.Equal(t, 300*time.Millisecond, cfg.SearchInterCallDelay)
	assert.Equal(t, 60*time.Second, cfg.Discovery.Timeout)
	assert.Equal(t, "yt-dlp", cfg.YtDlp.Path)
	assert.Equal(t, []string{"en"}, cfg.YtDlp.Languages)
	assert.Equal(t, TranscriptsAPI, cfg.TranscriptBackend)
	assert.Empty(t, cfg.DBPath)
}

func TestLoadConfig(t *testing.T) {
	dir := setTempDirs(t)
	t.Setenv("KB_ROOT", filepath.Join(dir, "kb"))
	t.Setenv("INTER_CALL_DELAY", "1s")
	t.Setenv("SEARCH_INTER_CALL_DELAY", "250ms")
	t.Setenv("DISCOVERY_TIMEOUT", "30s")
	t.Setenv("DISCOVERY_RATE_LIMIT", "3")
	t.Setenv("TRANSCRIPT_LANGUAGES", "en, en-US ,")
	t.Setenv("DB_PATH", filepath.Join(dir, "data", "runs.db"))
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TRANSCRIPT_BACKEND", "YtDlp")

	cfg, err := Load()
	require.NoError(t, err)

	if cfg.InterCallDelay != time.Second {
		t.Errorf("expected 1s, got %s", cfg.InterCallDelay)
	}
	if cfg.SearchInterCallDelay != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %s", cfg.SearchInterCallDelay)
	}
	if cfg.Discovery.Timeout != 30*time.Second {
		t.Errorf("expected 30s, got %s", cfg.Discovery.Timeout)
	}
	if cfg.Discovery.RateLimit != 3 {
		t.Errorf("expected 3, got %d", cfg.Discovery.RateLimit)
	}
	assert.Equal(t, []string{"en", "en-US"}, cfg.YtDlp.Languages)
	assert.Equal(t, TranscriptsYtDlp, cfg.TranscriptBackend)

	_, err = os.Stat(filepath.Join(dir, "data"))
	assert.NoError(t, err, "database directory should be created")
}

func TestInvalidValuesFallBackToDefaults(t *testing.T) {
	setTempDirs(t)
	t.Setenv("INTER_CALL_DELAY", "soon")
	t.Setenv("DISCOVERY_RATE_LIMIT", "many")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, cfg.InterCallDelay)
	assert.Equal(t, 1, cfg.Discovery.RateLimit)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown backend", map[string]string{"STORAGE_BACKEND": "ftp"}},
		{"spaces without bucket", map[string]string{"STORAGE_BACKEND": "spaces"}},
		{"spaces without credentials", map[string]string{"STORAGE_BACKEND": "spaces", "SPACES_BUCKET": "b", "SPACES_ENDPOINT": "https://nyc3.digitaloceanspaces.com"}},
		{"negative delay", map[string]string{"INTER_CALL_DELAY": "-1s"}},
		{"zero timeout", map[string]string{"DISCOVERY_TIMEOUT": "0s"}},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}},
		{"unknown transcript backend", map[string]string{"TRANSCRIPT_BACKEND": "whisper"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setTempDirs(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestSpacesBackend(t *testing.T) {
	setTempDirs(t)
	t.Setenv("STORAGE_BACKEND", "Spaces")
	t.Setenv("SPACES_BUCKET", "kb")
	t.Setenv("SPACES_ACCESS_KEY", "key")
	t.Setenv("SPACES_SECRET_KEY", "secret")
	t.Setenv("SPACES_ENDPOINT", "https://nyc3.digitaloceanspaces.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendSpaces, cfg.StorageBackend)
	assert.Equal(t, "knowledge-base", cfg.Spaces.Prefix)
}

func TestLoadEnvFile(t *testing.T) {
	dir := setTempDirs(t)
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("YTDLP_PATH=/opt/bin/yt-dlp\nDB_PATH="+filepath.Join(dir, "db", "x.db")+"\n"), 0o644))

	t.Setenv("YTDLP_PATH", "")
	os.Unsetenv("YTDLP_PATH")
	t.Setenv("DB_PATH", "")
	os.Unsetenv("DB_PATH")

	require.NoError(t, LoadEnvFile(path))
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/opt/bin/yt-dlp", cfg.YtDlp.Path)
	assert.Equal(t, filepath.Join(dir, "db", "x.db"), cfg.DBPath)

	assert.NoError(t, LoadEnvFile(""))
	assert.Error(t, LoadEnvFile(filepath.Join(dir, "missing.env")))
}
