package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultMatchesHTTPProfile(t *testing.T) {
	cfg := Default()
	if cfg.HTTP.MaxPages != 100 {
		t.Errorf("MaxPages = %d, want 100", cfg.HTTP.MaxPages)
	}
	if cfg.HTTP.MaxBytes != 10*1<<20 {
		t.Errorf("MaxBytes = %d, want 10MiB", cfg.HTTP.MaxBytes)
	}
	if cfg.AutoPipelineThreshold != 1_000_000 {
		t.Errorf("AutoPipelineThreshold = %d, want 1,000,000", cfg.AutoPipelineThreshold)
	}
}

func TestLoadFromYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := "port: 9090\nstopwordsFile: /etc/lexifreq/stopwords.txt\nautoPipelineThreshold: 524288\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.StopwordsFile != "/etc/lexifreq/stopwords.txt" {
		t.Errorf("StopwordsFile = %q", cfg.StopwordsFile)
	}
	if cfg.AutoPipelineThreshold != 524288 {
		t.Errorf("AutoPipelineThreshold = %d, want 524288", cfg.AutoPipelineThreshold)
	}
	if cfg.HTTP.MaxPages != 100 {
		t.Errorf("HTTP limits should retain default, got MaxPages=%d", cfg.HTTP.MaxPages)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("port: 9090\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("PORT", "7070")
	t.Setenv("STOPWORDS_FILE", "/tmp/stops.txt")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Port != 7070 {
		t.Errorf("Port = %d, want env override 7070", cfg.Port)
	}
	if cfg.StopwordsFile != "/tmp/stops.txt" {
		t.Errorf("StopwordsFile = %q, want env override", cfg.StopwordsFile)
	}
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want default 8080", cfg.Port)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}
