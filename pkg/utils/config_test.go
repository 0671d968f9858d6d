package utils

import (
	"os"
	"path/filepath"
	"testing"
)

// clearEnv blanks keys that could leak in from the host; viper treats empty
// variables as unset.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t, "PORT", "DB_DRIVER", "REVIEW_MIN_RATING", "REVIEW_LIST_LIMIT", "REVIEW_MAX_RATING", "VIEW_DIR")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.App.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.App.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Driver = %q, want sqlite", cfg.Database.Driver)
	}
	want := ReviewConfig{MinRating: 3, ListLimit: 10, MaxRating: 5}
	if cfg.Review != want {
		t.Errorf("Review = %+v, want %+v", cfg.Review, want)
	}
	if cfg.View.Dir != "" {
		t.Errorf("View.Dir = %q, want embedded", cfg.View.Dir)
	}
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	clearEnv(t, "APP_NAME", "DB_DRIVER", "DB_MAX_CONNS", "REVIEW_LIST_LIMIT", "VIEW_RELOAD")
	t.Setenv("REVIEW_MIN_RATING", "4")

	path := filepath.Join(t.TempDir(), "test.env")
	content := "APP_NAME=Burger Reviews\n" +
		"DB_DRIVER=postgres\n" +
		"DB_MAX_CONNS=25\n" +
		"REVIEW_MIN_RATING=2\n" +
		"REVIEW_LIST_LIMIT=20\n" +
		"VIEW_RELOAD=true\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.App.Name != "Burger Reviews" {
		t.Errorf("Name = %q", cfg.App.Name)
	}
	if cfg.Database.Driver != "postgres" || cfg.Database.MaxConns != 25 {
		t.Errorf("Database = %+v", cfg.Database)
	}
	if cfg.Review.MinRating != 4 {
		t.Errorf("MinRating = %d, want environment value 4", cfg.Review.MinRating)
	}
	if cfg.Review.ListLimit != 20 {
		t.Errorf("ListLimit = %d, want 20", cfg.Review.ListLimit)
	}
	if !cfg.View.Reload {
		t.Error("View.Reload = false, want true")
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.env")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() on a directory succeeded, want error")
	}
}
