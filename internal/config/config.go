// Package config loads the service/CLI configuration: a YAML file layered
// under a handful of environment variable overrides, the way
// config.Loader composed multiple YAML config files into one Components
// struct in the system this one descends from.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Limits bounds one request profile's input sizes (§6.1). A zero field
// means "unlimited" — the Batch/CLI profile's zero-value Limits.
type Limits struct {
	MaxPages      int   `yaml:"maxPages"`
	MaxBytes      int64 `yaml:"maxBytes"`
	MaxTotalChars int64 `yaml:"maxTotalChars"`
	MaxPageChars  int64 `yaml:"maxPageChars"`
}

// HTTPLimits is the default HTTP profile from §6.1: 100 pages, 10 MiB body,
// 2 MiB combined text, 512 KiB per page.
func HTTPLimits() Limits {
	return Limits{
		MaxPages:      100,
		MaxBytes:      10 * 1 << 20,
		MaxTotalChars: 2 * 1 << 20,
		MaxPageChars:  512 * 1 << 10,
	}
}

// Config is the top-level service/CLI configuration.
type Config struct {
	Port                  int    `yaml:"port"`
	StopwordsFile         string `yaml:"stopwordsFile"`
	AutoPipelineThreshold int64  `yaml:"autoPipelineThreshold"`
	HTTP                  Limits `yaml:"httpLimits"`
}

// Default returns the configuration used when no file is supplied: HTTP
// limits per §6.1 and a 1,000,000-byte auto-pipeline threshold (§4.8), just
// under 1,000 KiB; a config file may declare a different value.
func Default() Config {
	return Config{
		Port:                  8080,
		StopwordsFile:         "",
		AutoPipelineThreshold: 1_000_000,
		HTTP:                  HTTPLimits(),
	}
}

// Load reads path as YAML over the Default configuration, then applies
// environment variable overrides (PORT, STOPWORDS_FILE per §6.4). An empty
// path skips the file and only applies env overrides and defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse PORT env var %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("STOPWORDS_FILE"); v != "" {
		cfg.StopwordsFile = v
	}

	return cfg, nil
}
