package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Port != 2222 {
		t.Errorf("expected port 2222, got %d", cfg.Port)
	}
	if cfg.ScrollThreshold != 2 {
		t.Errorf("expected scroll threshold 2, got %d", cfg.ScrollThreshold)
	}
	if cfg.FrameIntervalMS != 30 {
		t.Errorf("expected frame interval 30, got %d", cfg.FrameIntervalMS)
	}
	if cfg.ContentPollSecs != 2 {
		t.Errorf("expected content poll 2, got %d", cfg.ContentPollSecs)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected log level info, got %s", cfg.LogLevel)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestDurations(t *testing.T) {
	cfg := Default()
	if got := cfg.FrameInterval(); got != 30*time.Millisecond {
		t.Errorf("FrameInterval() = %v, want 30ms", got)
	}
	if got := cfg.ContentPollInterval(); got != 2*time.Second {
		t.Errorf("ContentPollInterval() = %v, want 2s", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load("/nonexistent/path/nexusflow.yaml")
	if err != nil {
		t.Fatalf("missing file should return defaults, got error: %v", err)
	}
	if cfg.Port != 2222 {
		t.Errorf("expected default port 2222, got %d", cfg.Port)
	}
}

func TestLoadValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nexusflow.yaml")

	data := []byte(`port: 3333
host_key_dir: /tmp/keys
scroll_threshold: 5
frame_interval_ms: 16
content_path: /tmp/site.yaml
content_poll_secs: 10
log_file: /tmp/nexusflow.log
log_level: debug
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 3333 {
		t.Errorf("expected port 3333, got %d", cfg.Port)
	}
	if cfg.HostKeyDir != "/tmp/keys" {
		t.Errorf("expected host_key_dir /tmp/keys, got %s", cfg.HostKeyDir)
	}
	if cfg.ScrollThreshold != 5 {
		t.Errorf("expected scroll_threshold 5, got %d", cfg.ScrollThreshold)
	}
	if cfg.FrameIntervalMS != 16 {
		t.Errorf("expected frame_interval_ms 16, got %d", cfg.FrameIntervalMS)
	}
	if cfg.ContentPath != "/tmp/site.yaml" {
		t.Errorf("expected content_path /tmp/site.yaml, got %s", cfg.ContentPath)
	}
	if cfg.ContentPollSecs != 10 {
		t.Errorf("expected content_poll_secs 10, got %d", cfg.ContentPollSecs)
	}
	if cfg.LogFile != "/tmp/nexusflow.log" {
		t.Errorf("expected log_file /tmp/nexusflow.log, got %s", cfg.LogFile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log_level debug, got %s", cfg.LogLevel)
	}
}

func TestLoadPartialYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nexusflow.yaml")

	data := []byte(`port: 4444
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 4444 {
		t.Errorf("expected port 4444, got %d", cfg.Port)
	}
	if cfg.ScrollThreshold != 2 {
		t.Errorf("expected default scroll threshold 2, got %d", cfg.ScrollThreshold)
	}
}

func TestLoadValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"port too large", "port: 99999\n"},
		{"port zero", "port: 0\n"},
		{"negative threshold", "scroll_threshold: -1\n"},
		{"zero frame interval", "frame_interval_ms: 0\n"},
		{"zero content poll", "content_poll_secs: 0\n"},
		{"unknown log level", "log_level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nexusflow.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Fatalf("expected validation error for %q", tt.yaml)
			}
		})
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nexusflow.yaml")

	data := []byte(`{{{not yaml`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected parse error for invalid YAML")
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input    string
		expected string
	}{
		{"~/foo", filepath.Join(home, "foo")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"", ""},
	}

	for _, tt := range tests {
		got := expandPath(tt.input)
		if got != tt.expected {
			t.Errorf("expandPath(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
