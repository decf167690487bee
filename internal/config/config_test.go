package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected :8080, got %s", cfg.Server.Addr)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("expected sqlite, got %s", cfg.Database.Driver)
	}
	if cfg.Extract.MaxKeywords != 10 {
		t.Errorf("expected 10, got %d", cfg.Extract.MaxKeywords)
	}
	if cfg.Server.MaxUploadBytes != 200<<20 {
		t.Errorf("expected 200 MB, got %d", cfg.Server.MaxUploadBytes)
	}
}

func TestLoadFromTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.toml")
	os.WriteFile(path, []byte(`
[server]
addr = ":9090"

[extract]
max_keywords = 5
`), 0644)

	cfg := Load(path)
	if cfg.Server.Addr != ":9090" {
		t.Errorf("expected :9090, got %s", cfg.Server.Addr)
	}
	if cfg.Extract.MaxKeywords != 5 {
		t.Errorf("expected 5, got %d", cfg.Extract.MaxKeywords)
	}
	// Defaults preserved
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("default should be preserved, got %s", cfg.Database.Driver)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("METASIFT_ADDR", ":7070")
	t.Setenv("METASIFT_DB_DRIVER", "postgres")
	t.Setenv("METASIFT_DB_DSN", "postgres://localhost/metasift")

	cfg := Load("/nonexistent/path.toml")
	if cfg.Server.Addr != ":7070" {
		t.Errorf("expected :7070, got %s", cfg.Server.Addr)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("expected postgres, got %s", cfg.Database.Driver)
	}
	if cfg.Database.DSN != "postgres://localhost/metasift" {
		t.Errorf("unexpected dsn: %s", cfg.Database.DSN)
	}
}

func TestEnvOverrideBeatsTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.toml")
	os.WriteFile(path, []byte("[server]\naddr = \":9090\"\n"), 0644)
	t.Setenv("METASIFT_ADDR", ":6060")

	cfg := Load(path)
	if cfg.Server.Addr != ":6060" {
		t.Errorf("env should win, got %s", cfg.Server.Addr)
	}
}

func TestLimitFallbacks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.toml")
	os.WriteFile(path, []byte("[extract]\nmax_keywords = -1\nmax_summary_sentences = 0\n"), 0644)

	cfg := Load(path)
	if cfg.Extract.MaxKeywords != 10 {
		t.Errorf("expected fallback 10, got %d", cfg.Extract.MaxKeywords)
	}
	if cfg.Extract.MaxSummarySentences != 3 {
		t.Errorf("expected fallback 3, got %d", cfg.Extract.MaxSummarySentences)
	}
}
