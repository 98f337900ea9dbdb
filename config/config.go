package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the user-tunable settings.
type Config struct {
	LogPath    string `yaml:"log_path,omitempty"`
	TickMillis int    `yaml:"tick_millis,omitempty"`
}

// Default returns the built-in settings: an org log in the working
// directory and a render tick of 50ms.
func Default() Config {
	return Config{
		LogPath:    "done.org",
		TickMillis: 50,
	}
}

// TickEvery returns the render tick period, clamped to a 10ms floor so
// a misconfigured value cannot spin the event loop.
func (c Config) TickEvery() time.Duration {
	ms := c.TickMillis
	if ms < 10 {
		ms = 10
	}
	return time.Duration(ms) * time.Millisecond
}

func configPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "stopwatch", "config.yaml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "stopwatch", "config.yaml")
}

// Load reads the config file, falling back to defaults when the file
// is missing or malformed.
func Load() Config {
	cfg := Default()

	data, err := os.ReadFile(configPath())
	if err != nil {
		return cfg
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default()
	}
	if cfg.LogPath == "" {
		cfg.LogPath = Default().LogPath
	}

	return cfg
}
