package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != defaultPort {
		t.Errorf("Port = %d, want %d", cfg.Port, defaultPort)
	}
	if cfg.MongoDB != defaultMongoDB {
		t.Errorf("MongoDB = %q, want %q", cfg.MongoDB, defaultMongoDB)
	}
	if !cfg.IsDev() {
		t.Error("default env should be development")
	}
}

func TestLoadYAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	body := "port: 8080\nenv: production\nmongo_db: uniondb\ncontent_dir: /srv/content\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("SENDIKA_MONGO_DB", "overridden")
	t.Setenv("SENDIKA_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.IsDev() {
		t.Error("env production should not be dev")
	}
	if cfg.MongoDB != "overridden" {
		t.Errorf("MongoDB = %q, env override lost", cfg.MongoDB)
	}
	if cfg.ContentDir != "/srv/content" {
		t.Errorf("ContentDir = %q", cfg.ContentDir)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("port: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
