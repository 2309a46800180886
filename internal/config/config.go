package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the persisted application configuration.
type Config struct {
	ListenAddr          string `yaml:"listen_addr"`
	QlooBaseURL         string `yaml:"qloo_base_url"`
	QlooAPIKey          string `yaml:"qloo_api_key,omitempty"`
	SpotifyClientID     string `yaml:"spotify_client_id,omitempty"`
	SpotifyClientSecret string `yaml:"spotify_client_secret,omitempty"`
	StatePath           string `yaml:"state_path"`
	CacheDir            string `yaml:"cache_dir"`
	LogPath             string `yaml:"log_path,omitempty"`
	RequestTimeoutSec   int    `yaml:"request_timeout_seconds"`
	PrefetchWorkers     int    `yaml:"prefetch_workers"`
	PrefetchQueueSize   int    `yaml:"prefetch_queue_size"`
}

// Defaults returns the baseline configuration used on first run.
func Defaults() Config {
	return Config{
		ListenAddr:        ":8080",
		QlooBaseURL:       "https://hackathon.api.qloo.com",
		StatePath:         "suurai.db",
		CacheDir:          filepath.Join(os.TempDir(), "suurai-previews"),
		RequestTimeoutSec: 10,
		PrefetchWorkers:   2,
		PrefetchQueueSize: 100,
	}
}

// Load reads configuration from disk, falling back to defaults when the file
// does not exist. Environment variables override the file in either case.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// First run: defaults plus environment.
	default:
		return Config{}, err
	}

	applyEnv(&cfg)

	if strings.TrimSpace(cfg.ListenAddr) == "" {
		cfg.ListenAddr = Defaults().ListenAddr
	}
	if cfg.RequestTimeoutSec <= 0 {
		cfg.RequestTimeoutSec = Defaults().RequestTimeoutSec
	}
	if cfg.PrefetchWorkers <= 0 {
		cfg.PrefetchWorkers = Defaults().PrefetchWorkers
	}
	if cfg.PrefetchQueueSize <= 0 {
		cfg.PrefetchQueueSize = Defaults().PrefetchQueueSize
	}

	return cfg, nil
}

// Save writes configuration back to disk.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	temp := path + ".tmp"
	if err := os.WriteFile(temp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(temp, path)
}

// RequestTimeout returns the bounded timeout applied to upstream API calls.
func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSec) * time.Second
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("SUURAI_LISTEN_ADDR")); v != "" {
		cfg.ListenAddr = v
	}
	if v := strings.TrimSpace(os.Getenv("QLOO_API_URI")); v != "" {
		cfg.QlooBaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("QLOO_API_KEY")); v != "" {
		cfg.QlooAPIKey = v
	}
	if v := strings.TrimSpace(os.Getenv("SPOTIFY_CLIENT_ID")); v != "" {
		cfg.SpotifyClientID = v
	}
	if v := strings.TrimSpace(os.Getenv("SPOTIFY_CLIENT_SECRET")); v != "" {
		cfg.SpotifyClientSecret = v
	}
	if v := strings.TrimSpace(os.Getenv("SUURAI_STATE_PATH")); v != "" {
		cfg.StatePath = v
	}
	if v := strings.TrimSpace(os.Getenv("SUURAI_CACHE_DIR")); v != "" {
		cfg.CacheDir = v
	}
	if v := strings.TrimSpace(os.Getenv("SUURAI_LOG_PATH")); v != "" {
		cfg.LogPath = v
	}
	if v := strings.TrimSpace(os.Getenv("SUURAI_REQUEST_TIMEOUT_SECONDS")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			cfg.RequestTimeoutSec = parsed
		}
	}
}
