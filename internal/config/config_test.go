package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
app:
  name: "apacheair"
  environment: "test"
database:
  path: "bookings.db"
cache:
  enabled: true
  backend: "memory"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Database.Path != "bookings.db" {
		t.Errorf("expected database path bookings.db, got %s", cfg.Database.Path)
	}
	if cfg.Cache.TTLSeconds != 30 {
		t.Errorf("expected default cache ttl 30, got %d", cfg.Cache.TTLSeconds)
	}
	if cfg.Exports.Path != "exports" {
		t.Errorf("expected default exports path, got %s", cfg.Exports.Path)
	}
}

func TestLoadConfigExpandsEnv(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	t.Setenv("APACHEAIR_DB_PATH", "/tmp/env.db")
	yamlContent := "database:\n  path: \"${APACHEAIR_DB_PATH}\"\n"
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Database.Path != "/tmp/env.db" {
		t.Errorf("expected expanded path, got %s", cfg.Database.Path)
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "valid config",
			cfg:     Config{Database: DatabaseConfig{Path: "bookings.db"}},
			wantErr: false,
		},
		{
			name:    "missing database path",
			cfg:     Config{},
			wantErr: true,
		},
		{
			name: "unknown cache backend",
			cfg: Config{
				Database: DatabaseConfig{Path: "bookings.db"},
				Cache:    CacheConfig{Enabled: true, Backend: "memcached"},
			},
			wantErr: true,
		},
		{
			name: "redis backend without address",
			cfg: Config{
				Database: DatabaseConfig{Path: "bookings.db"},
				Cache:    CacheConfig{Enabled: true, Backend: "redis"},
			},
			wantErr: true,
		},
		{
			name: "backup without storage path",
			cfg: Config{
				Database: DatabaseConfig{Path: "bookings.db"},
				Backup:   BackupConfig{Enabled: true},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
