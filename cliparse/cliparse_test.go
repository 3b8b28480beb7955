// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFlags_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.Port)
	}
	if cfg.StoreType != StoreFile {
		t.Errorf("expected file store, got %q", cfg.StoreType)
	}
	if cfg.DataFile != "managersData.json" {
		t.Errorf("expected managersData.json, got %q", cfg.DataFile)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected info log level, got %q", cfg.LogLevel)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_TYPE", "sqlite")
	t.Setenv("DATABASE_URL", "file:test.db")
	t.Setenv("OVERRIDE_PIN", "0220")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.StoreType != StoreSQLite || cfg.DatabaseURL != "file:test.db" {
		t.Errorf("unexpected store settings: %+v", cfg)
	}
	if cfg.OverridePIN != "0220" {
		t.Errorf("expected PIN from env, got %q", cfg.OverridePIN)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_TYPE", "redis")

	cfg, err := ParseFlags([]string{"-p", "8080", "-t", "memory"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.StoreType != StoreMemory {
		t.Errorf("CLI should override env: expected memory, got %q", cfg.StoreType)
	}
}

func TestParseFlags_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("STORE_TYPE=badger\nBADGER_DIR=/tmp/raffle\n"), 0o600)
	if err != nil {
		t.Fatal(err)
	}
	// Real environment wins over .env
	t.Setenv("BADGER_DIR", "/var/lib/raffle")
	// godotenv sets STORE_TYPE through os.Setenv; register it for cleanup
	t.Setenv("STORE_TYPE", "")
	os.Unsetenv("STORE_TYPE")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.StoreType != StoreBadger {
		t.Errorf("expected store type from .env, got %q", cfg.StoreType)
	}
	if cfg.BadgerDir != "/var/lib/raffle" {
		t.Errorf("environment should win over .env, got %q", cfg.BadgerDir)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"unknown store", []string{"-t", "mongo"}, nil},
		{"port out of range", []string{"-p", "70000"}, nil},
		{"missing database url", []string{"-t", "postgres"}, nil},
		{"s3 without bucket", []string{"-t", "s3"}, nil},
		{"bad log level", []string{"-log-level", "loud"}, nil},
		{"bad port env", nil, map[string]string{"PORT": "abc"}},
		{"bad s3 endpoint", []string{"-t", "s3", "-s3-bucket", "b", "-s3-endpoint", "not a url"}, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(tc.args); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
