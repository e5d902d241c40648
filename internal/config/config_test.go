package config

import (
	"testing"
	"time"
)

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "secret")

	_, err := Load()
	if err == nil {
		t.Error("expected error when DATABASE_URL is missing")
	}
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/fintrack")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	if err == nil {
		t.Error("expected error when JWT_SECRET is missing")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/fintrack")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Auth.TokenDuration != 7*24*time.Hour {
		t.Errorf("expected default token duration 168h, got %v", cfg.Auth.TokenDuration)
	}
	if cfg.Auth.BcryptCost != 10 {
		t.Errorf("expected default bcrypt cost 10, got %d", cfg.Auth.BcryptCost)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("expected rate limiting disabled by default, got redis addr %s", cfg.Redis.Addr)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/fintrack")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("TOKEN_DURATION", "24h")
	t.Setenv("DB_MAX_CONNS", "50")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.Auth.TokenDuration != 24*time.Hour {
		t.Errorf("expected token duration 24h, got %v", cfg.Auth.TokenDuration)
	}
	if cfg.Database.MaxConns != 50 {
		t.Errorf("expected max conns 50, got %d", cfg.Database.MaxConns)
	}
}

func TestGetEnvAsDuration_Invalid(t *testing.T) {
	t.Setenv("SOME_DURATION", "not-a-duration")

	d := getEnvAsDuration("SOME_DURATION", time.Minute)
	if d != time.Minute {
		t.Errorf("expected fallback to default, got %v", d)
	}
}
