package config

import (
	"os"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfig_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.HTTP.Addr)
	}
	if cfg.Postgres.Host != "localhost" {
		t.Errorf("expected default db host localhost, got %q", cfg.Postgres.Host)
	}
	if cfg.Auth.AdminSessionTTL != 24*time.Hour {
		t.Errorf("expected admin session TTL 24h, got %v", cfg.Auth.AdminSessionTTL)
	}
	if !cfg.Auth.TrustCachedRole {
		t.Error("expected TrustCachedRole to default to true")
	}
}

func TestAppConfig_RequiresSessionSecret(t *testing.T) {
	// t.Setenv registers the restore; unset so the variable is truly absent.
	t.Setenv("SESSION_SECRET", "placeholder")
	os.Unsetenv("SESSION_SECRET")

	var cfg AppConfig
	if err := env.Parse(&cfg); err == nil {
		t.Fatal("expected error when SESSION_SECRET is unset")
	}
}

func TestAppConfig_DevModeFromAppEnv(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("APP_ENV", "development")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if !cfg.IsDev {
		t.Error("expected IsDev=true when APP_ENV=development")
	}
}

func TestAuthConfig_SanitizeClampsTTL(t *testing.T) {
	a := AuthConfig{AdminSessionTTL: -time.Hour}
	a.Sanitize()
	if a.AdminSessionTTL != 24*time.Hour {
		t.Errorf("expected clamped TTL 24h, got %v", a.AdminSessionTTL)
	}
}
