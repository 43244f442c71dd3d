package config

import (
	"context"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "development")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ADMIN_EMAIL", "admin@hotel.local")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %q", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected development env, got %q", cfg.Env)
	}
	if cfg.JWTSecret != devJWTSecret {
		t.Fatalf("expected dev secret fallback, got %q", cfg.JWTSecret)
	}
	if cfg.Admin.Email != "admin@hotel.local" {
		t.Fatalf("unexpected admin default: %q", cfg.Admin.Email)
	}
}

func TestValidate_RejectsDevSecretOutsideDevelopment(t *testing.T) {
	cfg := &Config{Env: "production", JWTSecret: devJWTSecret}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validation failure for dev secret in production")
	}

	cfg.JWTSecret = "an-explicit-deployment-secret"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("explicit secret should pass: %v", err)
	}
}

func TestValidate_AllowsDevSecretInDevelopment(t *testing.T) {
	cfg := &Config{Env: "development", JWTSecret: devJWTSecret}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("dev secret should be allowed in development: %v", err)
	}
}

func TestLoad_ExplicitEnvOverrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "s3cr3t-key")
	t.Setenv("MONGO_DB", "bookings_test")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Env != "production" || cfg.JWTSecret != "s3cr3t-key" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.Mongo.Database != "bookings_test" {
		t.Fatalf("mongo override not applied: %q", cfg.Mongo.Database)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
