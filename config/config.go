package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	BackendFS     = "fs"
	BackendSpaces = "spaces"

	TranscriptsAPI   = "api"
	TranscriptsYtDlp = "ytdlp"
)

type Config struct {
	// Knowledge base layout
	Root           string
	StorageBackend string
	Spaces         SpacesConfig

	// Pacing
	InterCallDelay       time.Duration
	SearchInterCallDelay time.Duration

	// TranscriptBackend picks the transcript source: api or ytdlp.
	TranscriptBackend string
	Discovery         DiscoveryConfig
	YtDlp             YtDlpConfig

	// Application paths
	TempDir  string
	DBPath   string
	LogDir   string
	LogLevel string
}

type SpacesConfig struct {
	AccessKey string
	SecretKey string
	Region    string
	Endpoint  string
	Bucket    string
	Prefix    string
}

type DiscoveryConfig struct {
	Timeout           time.Duration
	RateLimit         int
	RateLimitInterval time.Duration
}

type YtDlpConfig struct {
	Path      string
	Languages []string
}

// LoadEnvFile preloads variables from a dotenv file. Variables already set in
// the environment win.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "failed to load env file %s", path)
	}
	return nil
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Root:           getEnv("KB_ROOT", "./knowledge-base"),
		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", BackendFS)),
		Spaces: SpacesConfig{
			AccessKey: getEnv("SPACES_ACCESS_KEY", ""),
			SecretKey: getEnv("SPACES_SECRET_KEY", ""),
			Region:    getEnv("SPACES_REGION", "us-east-1"),
			Endpoint:  getEnv("SPACES_ENDPOINT", ""),
			Bucket:    getEnv("SPACES_BUCKET", ""),
			Prefix:    getEnv("SPACES_PREFIX", "knowledge-base"),
		},

		InterCallDelay:       getEnvAsDuration("INTER_CALL_DELAY", 500*time.Millisecond),
		SearchInterCallDelay: getEnvAsDuration("SEARCH_INTER_CALL_DELAY", 300*time.Millisecond),

		TranscriptBackend: strings.ToLower(getEnv("TRANSCRIPT_BACKEND", TranscriptsAPI)),
		Discovery: DiscoveryConfig{
			Timeout:           getEnvAsDuration("DISCOVERY_TIMEOUT", 60*time.Second),
			RateLimit:         getEnvAsInt("DISCOVERY_RATE_LIMIT", 1),
			RateLimitInterval: getEnvAsDuration("DISCOVERY_RATE_INTERVAL", time.Second),
		},
		YtDlp: YtDlpConfig{
			Path:      getEnv("YTDLP_PATH", "yt-dlp"),
			Languages: getEnvAsStringSlice("TRANSCRIPT_LANGUAGES", []string{"en"}),
		},

		TempDir:  getEnv("TEMP_DIR", filepath.Join(os.TempDir(), "yt-kb")),
		DBPath:   getEnv("DB_PATH", ""),
		LogDir:   getEnv("LOG_DIR", "./logs"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validateStorage(c); err != nil {
		return err
	}
	if err := validateTimings(c); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	return validatePaths(c)
}

func validateStorage(c *Config) error {
	switch c.StorageBackend {
	case BackendFS:
		if c.Root == "" {
			return errors.New("knowledge base root is required")
		}
	case BackendSpaces:
		if c.Spaces.Bucket == "" {
			return errors.New("spaces bucket is required")
		}
		if c.Spaces.AccessKey == "" || c.Spaces.SecretKey == "" {
			return errors.New("spaces credentials are required")
		}
		if c.Spaces.Endpoint == "" {
			return errors.New("spaces endpoint is required")
		}
	default:
		return errors.Errorf("unknown storage backend %q", c.StorageBackend)
	}
	return nil
}

func validateTimings(c *Config) error {
	if c.InterCallDelay < 0 || c.SearchInterCallDelay < 0 {
		return errors.New("inter-call delay must not be negative")
	}
	if c.Discovery.Timeout <= 0 {
		return errors.New("discovery timeout must be positive")
	}
	if c.Discovery.RateLimit <= 0 {
		return errors.New("discovery rate limit must be positive")
	}
	if c.Discovery.RateLimitInterval <= 0 {
		return errors.New("discovery rate interval must be positive")
	}
	if c.TranscriptBackend != TranscriptsAPI && c.TranscriptBackend != TranscriptsYtDlp {
		return errors.Errorf("unknown transcript backend %q", c.TranscriptBackend)
	}
	if len(c.YtDlp.Languages) == 0 {
		return errors.New("at least one transcript language is required")
	}
	return nil
}

func validatePaths(c *Config) error {
	paths := []struct {
		path string
		name string
	}{
		{c.LogDir, "log directory"},
		{c.TempDir, "temp directory"},
	}
	if c.DBPath != "" {
		paths = append(paths, struct {
			path string
			name string
		}{filepath.Dir(c.DBPath), "database directory"})
	}

	for _, p := range paths {
		if p.path == "" {
			continue
		}
		if err := os.MkdirAll(p.path, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create %s", p.name)
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		logrus.WithFields(logrus.Fields{
			"key":          key,
			"value":        value,
			"defaultValue": defaultValue,
		}).Warn("Invalid duration, using default")
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
		logrus.WithFields(logrus.Fields{
			"key":          key,
			"value":        value,
			"defaultValue": defaultValue,
		}).Warn("Invalid integer, using default")
	}
	return defaultValue
}

func getEnvAsStringSlice(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
