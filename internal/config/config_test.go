package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "PORT", "TEXT_MODEL", "IMAGE_MODEL",
		"ROUND_TIMEOUT", "SESSION_TTL", "SWEEP_INTERVAL",
		"RATE_EVERY", "RATE_BURST", "WEB_DIR",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.RoundTimeout != 60*time.Second {
		t.Errorf("expected default round timeout 60s, got %s", cfg.RoundTimeout)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("expected default session TTL 30m, got %s", cfg.SessionTTL)
	}
	if cfg.RateBurst != 5 {
		t.Errorf("expected default rate burst 5, got %d", cfg.RateBurst)
	}
	if cfg.TextModel == "" || cfg.ImageModel == "" {
		t.Error("expected model names to have defaults")
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ROUND_TIMEOUT", "15s")
	t.Setenv("RATE_BURST", "2")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.RoundTimeout != 15*time.Second {
		t.Errorf("expected round timeout 15s, got %s", cfg.RoundTimeout)
	}
	if cfg.RateBurst != 2 {
		t.Errorf("expected rate burst 2, got %d", cfg.RateBurst)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("ROUND_TIMEOUT", "sixty seconds")
	t.Setenv("RATE_BURST", "lots")

	cfg := Load()

	if cfg.RoundTimeout != 60*time.Second {
		t.Errorf("malformed duration should fall back to 60s, got %s", cfg.RoundTimeout)
	}
	if cfg.RateBurst != 5 {
		t.Errorf("malformed int should fall back to 5, got %d", cfg.RateBurst)
	}
}
