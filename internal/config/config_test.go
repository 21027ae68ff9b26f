package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != DefaultPort {
		t.Errorf("expected default port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.EchoPrefix != "Echo: " {
		t.Errorf("expected default echo_prefix %q, got %q", "Echo: ", cfg.EchoPrefix)
	}
	if cfg.ApologyText == "" {
		t.Error("expected a default apology_text")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.echobot.yml")

	original := DefaultConfig()
	original.AppID = "app-123"
	original.AppSecret = "secret"
	original.Port = 8080
	original.EchoPrefix = "You said: "
	original.AllowAllOrigins = true

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.AppID != original.AppID {
		t.Errorf("app_id: got %q, want %q", loaded.AppID, original.AppID)
	}
	if loaded.AppSecret != original.AppSecret {
		t.Errorf("app_secret: got %q, want %q", loaded.AppSecret, original.AppSecret)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.EchoPrefix != original.EchoPrefix {
		t.Errorf("echo_prefix: got %q, want %q", loaded.EchoPrefix, original.EchoPrefix)
	}
	if !loaded.AllowAllOrigins {
		t.Error("allow_all_origins: got false, want true")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("expected default port %d, got %d", DefaultPort, cfg.Port)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("ECHOBOT_ECHO_PREFIX", "Heard: ")
	t.Setenv("ECHOBOT_APP_ID", "env-app")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.EchoPrefix != "Heard: " {
		t.Errorf("echo_prefix: got %q, want %q", cfg.EchoPrefix, "Heard: ")
	}
	if cfg.AppID != "env-app" {
		t.Errorf("app_id: got %q, want %q", cfg.AppID, "env-app")
	}
}

func TestValidateRejections(t *testing.T) {
	bad := DefaultConfig()
	bad.Port = 0
	if err := bad.Validate(); err == nil {
		t.Error("expected error for port 0")
	}

	bad = DefaultConfig()
	bad.AppSecret = "secret"
	if err := bad.Validate(); err == nil {
		t.Error("expected error for app_secret without app_id")
	}

	bad = DefaultConfig()
	bad.ApologyText = ""
	if err := bad.Validate(); err == nil {
		t.Error("expected error for empty apology_text")
	}

	bad = DefaultConfig()
	bad.SendTimeoutSeconds = -1
	if err := bad.Validate(); err == nil {
		t.Error("expected error for negative send_timeout_seconds")
	}
}
