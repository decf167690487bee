package config

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Extract  ExtractConfig  `toml:"extract"`
	Observer ObserverConfig `toml:"observer"`
}

type ServerConfig struct {
	Addr           string `toml:"addr"`
	MaxUploadBytes int64  `toml:"max_upload_bytes"`
}

type DatabaseConfig struct {
	Driver string `toml:"driver"` // "sqlite" or "postgres"
	Path   string `toml:"path"`   // sqlite file path
	DSN    string `toml:"dsn"`    // postgres connection string
}

type ExtractConfig struct {
	MaxKeywords         int `toml:"max_keywords"`
	MaxSummarySentences int `toml:"max_summary_sentences"`
}

type ObserverConfig struct {
	Enabled bool `toml:"enabled"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Server:   ServerConfig{Addr: ":8080", MaxUploadBytes: 200 << 20},
		Database: DatabaseConfig{Driver: "sqlite", Path: "metasift.db"},
		Extract:  ExtractConfig{MaxKeywords: 10, MaxSummarySentences: 3},
	}
}

// Load reads config: defaults -> TOML file -> env vars (env wins).
func Load(path string) Config {
	cfg := Default()

	if path == "" {
		path = "metasift.toml"
	}

	if data, err := os.ReadFile(path); err == nil {
		_ = toml.Unmarshal(data, &cfg)
	}

	// Env overrides
	if v := os.Getenv("METASIFT_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("METASIFT_MAX_UPLOAD_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.Server.MaxUploadBytes = n
		}
	}
	if v := os.Getenv("METASIFT_DB_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := os.Getenv("METASIFT_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("METASIFT_DB_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if os.Getenv("METASIFT_OBSERVER_ENABLED") == "true" || os.Getenv("METASIFT_OBSERVER_ENABLED") == "1" {
		cfg.Observer.Enabled = true
	}

	// Fallbacks
	if cfg.Extract.MaxKeywords <= 0 {
		cfg.Extract.MaxKeywords = 10
	}
	if cfg.Extract.MaxSummarySentences <= 0 {
		cfg.Extract.MaxSummarySentences = 3
	}

	return cfg
}
