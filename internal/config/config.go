package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything cadence needs to reach the server and run its
// pollers.
type Config struct {
	ServerURL    string
	EmotionPoll  time.Duration
	RefreshEvery time.Duration
	LogDir       string
	LogLevel     string
}

const (
	defaultConfigPath   = "~/.config/cadence/config.toml"
	defaultLogDir       = "~/.local/share/cadence/logs"
	defaultServerURL    = "127.0.0.1:5000"
	defaultLogLevel     = "info"
	defaultEmotionPoll  = 500 * time.Millisecond
	defaultRefreshEvery = 30 * time.Second

	envServerURL = "CADENCE_SERVER_URL"
	envLogLevel  = "CADENCE_LOG_LEVEL"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		ServerURL:    defaultServerURL,
		EmotionPoll:  defaultEmotionPoll,
		RefreshEvery: defaultRefreshEvery,
		LogDir:       mustExpand(defaultLogDir),
		LogLevel:     defaultLogLevel,
	}
}

// Load locates and parses the config file, falling back to defaults when it
// is missing, then applies environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		ServerURL      string `toml:"server_url"`
		EmotionPollMS  int    `toml:"emotion_poll_ms"`
		RefreshSeconds int    `toml:"refresh_seconds"`
		LogDir         string `toml:"log_dir"`
		LogLevel       string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.ServerURL); v != "" {
		cfg.ServerURL = v
	}
	if raw.EmotionPollMS > 0 {
		cfg.EmotionPoll = time.Duration(raw.EmotionPollMS) * time.Millisecond
	}
	if raw.RefreshSeconds > 0 {
		cfg.RefreshEvery = time.Duration(raw.RefreshSeconds) * time.Second
	}
	if v := strings.TrimSpace(raw.LogDir); v != "" {
		cfg.LogDir = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	applyEnv(&cfg)
	return cfg, nil
}

// LogPath returns the path to the cadence log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/cadence.log")
	}
	return filepath.Join(c.LogDir, "cadence.log")
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(envServerURL)); v != "" {
		cfg.ServerURL = v
	}
	if v := strings.TrimSpace(os.Getenv(envLogLevel)); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
