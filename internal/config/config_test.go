package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigOperations(t *testing.T) {
	// Setup temp home dir
	tmpHome, err := os.MkdirTemp("", "healthcheck-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpHome)

	// Save original HOME
	origHome := os.Getenv("HOME")
	defer os.Setenv("HOME", origHome)

	os.Setenv("HOME", tmpHome)

	// Test InitConfig
	err = InitConfig(false)
	if err != nil {
		t.Errorf("InitConfig failed: %v", err)
	}

	// Verify file exists
	configPath := filepath.Join(tmpHome, ".config", "healthcheck", "config.yml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}

	// Test LoadConfig
	cfg, err := LoadConfig()
	if err != nil {
		t.Errorf("LoadConfig failed: %v", err)
	}
	if cfg == nil {
		t.Fatal("Config is nil")
	}
	if cfg.TimeoutSeconds != DefaultTimeoutSeconds {
		t.Errorf("Expected default timeout %d, got %d", DefaultTimeoutSeconds, cfg.TimeoutSeconds)
	}

	// Test AddSite
	err = cfg.AddSite(Site{Name: "test-site", URL: "http://example.com"})
	if err != nil {
		t.Errorf("AddSite failed: %v", err)
	}

	if len(cfg.Sites) != 2 { // Default config has 1 site
		t.Errorf("Expected 2 sites, got %d", len(cfg.Sites))
	}

	// Duplicate names are rejected
	err = cfg.AddSite(Site{Name: "test-site", URL: "http://other.example.com"})
	if err == nil {
		t.Error("Expected duplicate site name to be rejected")
	}

	// Test SaveConfig
	err = SaveConfig(cfg)
	if err != nil {
		t.Errorf("SaveConfig failed: %v", err)
	}

	// Reload and verify
	cfg2, err := LoadConfig()
	if err != nil {
		t.Errorf("LoadConfig failed: %v", err)
	}
	if len(cfg2.Sites) != 2 {
		t.Errorf("Expected 2 sites after reload, got %d", len(cfg2.Sites))
	}

	// Test URLs ordering
	urls := cfg2.URLs()
	if len(urls) != 2 || urls[1] != "http://example.com" {
		t.Errorf("URLs() should preserve config order, got %v", urls)
	}

	// Test RemoveSite
	err = cfg.RemoveSite("test-site")
	if err != nil {
		t.Errorf("RemoveSite failed: %v", err)
	}
	if len(cfg.Sites) != 1 {
		t.Errorf("Expected 1 site after remove, got %d", len(cfg.Sites))
	}

	// Removing an unknown site fails
	if err := cfg.RemoveSite("missing"); err == nil {
		t.Error("Expected error removing unknown site")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	tmpHome, err := os.MkdirTemp("", "healthcheck-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpHome)

	origHome := os.Getenv("HOME")
	defer os.Setenv("HOME", origHome)
	os.Setenv("HOME", tmpHome)

	configDir := filepath.Join(tmpHome, ".config", "healthcheck")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	// A config that sets nothing but a site list
	content := "sites:\n  - name: only\n    url: https://example.com\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.TimeoutSeconds != DefaultTimeoutSeconds {
		t.Errorf("Expected default timeout, got %d", cfg.TimeoutSeconds)
	}
	if cfg.Concurrency != DefaultConcurrency {
		t.Errorf("Expected default concurrency, got %d", cfg.Concurrency)
	}
	if cfg.NoRedirects {
		t.Error("Expected redirects enabled by default")
	}
}
