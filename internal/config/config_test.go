package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.AppName != "newsfetch" {
		t.Errorf("app_name = %q", cfg.AppName)
	}
	if cfg.CromEndpoint != "https://api.crom.avn.sh/" {
		t.Errorf("crom_endpoint = %q", cfg.CromEndpoint)
	}
	if cfg.SourceID != "scp-wiki" {
		t.Errorf("source_id = %q", cfg.SourceID)
	}
	if cfg.PageSize != 100 {
		t.Errorf("page_size = %d", cfg.PageSize)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("http_timeout = %v", cfg.HTTPTimeout)
	}
	if cfg.OutputDir != "./output" {
		t.Errorf("output_dir = %q", cfg.OutputDir)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PAGE_SIZE", "25")
	t.Setenv("SOURCE_ID", "scp-int")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PageSize != 25 {
		t.Errorf("page_size = %d, want 25", cfg.PageSize)
	}
	if cfg.SourceID != "scp-int" {
		t.Errorf("source_id = %q, want scp-int", cfg.SourceID)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("http_timeout = %v, want 5s", cfg.HTTPTimeout)
	}
}

func TestLoadRejectsInvalidPageSize(t *testing.T) {
	t.Setenv("PAGE_SIZE", "0")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for page_size 0")
	}

	t.Setenv("PAGE_SIZE", "500")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for page_size above the API ceiling")
	}
}

func TestLoadRejectsInvalidTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT_SECONDS", "-1")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative timeout")
	}
}
