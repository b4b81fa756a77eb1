package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.App.Port)
	}
	if cfg.Store.WhatsAppNumber != "919494719306" {
		t.Fatalf("unexpected WhatsApp number %q", cfg.Store.WhatsAppNumber)
	}
	if cfg.Payment.UPIVPA != "9494719306@ybl" {
		t.Fatalf("unexpected UPI VPA %q", cfg.Payment.UPIVPA)
	}
	if got := cfg.Delivery.Charge(); got.IntPart() != 20 {
		t.Fatalf("expected delivery charge 20, got %s", got)
	}
	if cfg.Delivery.FreeThreshold().IntPart() != 100 {
		t.Fatalf("expected free threshold 100, got %s", cfg.Delivery.FreeThreshold())
	}
	if cfg.Location.Timeout != 10*time.Second {
		t.Fatalf("expected location timeout 10s, got %v", cfg.Location.Timeout)
	}
	if cfg.Redis.Enabled() {
		t.Fatal("expected Redis disabled when no endpoint configured")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(EnvAppEnv, "prod")
	t.Setenv(EnvRedisURL, "redis://localhost:6379/1")
	t.Setenv(EnvDBDriver, "postgres")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if !cfg.App.IsProd() {
		t.Fatalf("expected IsProd true for %q", cfg.App.Env)
	}
	if !cfg.Redis.Enabled() {
		t.Fatal("expected Redis enabled once URL is set")
	}
	if cfg.DB.Driver != "postgres" {
		t.Fatalf("unexpected driver %q", cfg.DB.Driver)
	}
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "prod"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
	if prodConfig.IsDev() {
		t.Fatalf("expected IsDev false for %q", prodConfig.Env)
	}
}
