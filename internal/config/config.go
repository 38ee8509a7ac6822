package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = "~/.config/nexusflow/nexusflow.yaml"

type Config struct {
	Port       int    `yaml:"port"`
	HostKeyDir string `yaml:"host_key_dir"`

	// ScrollThreshold is the viewport offset, in rows, past which the
	// navigation bar switches to its compact treatment.
	ScrollThreshold int `yaml:"scroll_threshold"`
	FrameIntervalMS int `yaml:"frame_interval_ms"`

	ContentPath     string `yaml:"content_path"`
	ContentPollSecs int    `yaml:"content_poll_secs"`

	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
}

func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		Port:            2222,
		HostKeyDir:      filepath.Join(home, ".ssh"),
		ScrollThreshold: 2,
		FrameIntervalMS: 30,
		ContentPollSecs: 2,
		LogLevel:        "info",
	}
}

// FrameInterval is the delay between overlay animation frames.
func (c Config) FrameInterval() time.Duration {
	return time.Duration(c.FrameIntervalMS) * time.Millisecond
}

// ContentPollInterval is how often sessions check for reloaded content.
func (c Config) ContentPollInterval() time.Duration {
	return time.Duration(c.ContentPollSecs) * time.Second
}

func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

func Load(path string) (Config, error) {
	cfg := Default()

	resolved := expandPath(path)
	data, err := os.ReadFile(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", resolved, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", resolved, err)
	}

	cfg.HostKeyDir = expandPath(cfg.HostKeyDir)
	cfg.ContentPath = expandPath(cfg.ContentPath)
	cfg.LogFile = expandPath(cfg.LogFile)

	if err := Validate(cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks cfg for out-of-range values.
func Validate(cfg Config) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("port %d out of range (1-65535)", cfg.Port)
	}

	if cfg.ScrollThreshold < 0 {
		return fmt.Errorf("scroll_threshold must be >= 0")
	}
	if cfg.FrameIntervalMS < 1 {
		return fmt.Errorf("frame_interval_ms must be >= 1")
	}
	if cfg.ContentPollSecs < 1 {
		return fmt.Errorf("content_poll_secs must be >= 1")
	}

	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	return nil
}
