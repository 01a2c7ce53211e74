package config

import (
	"context"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:8081" {
		t.Fatalf("base url = %q", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Fatalf("timeout = %v", cfg.RequestTimeout)
	}
	if cfg.SessionStore != "file" {
		t.Fatalf("session store = %q", cfg.SessionStore)
	}
	if cfg.Server.Port != "8081" || cfg.Server.TokenTTL != 24*time.Hour {
		t.Fatalf("server config: %+v", cfg.Server)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("REPOMARKET_API_URL", "https://api.repomarket.example")
	t.Setenv("REPOMARKET_SESSION_STORE", "redis")
	t.Setenv("REPOMARKET_TIMEOUT", "5s")
	t.Setenv("REDIS_ADDR", "redis:6380")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIBaseURL != "https://api.repomarket.example" {
		t.Fatalf("base url = %q", cfg.APIBaseURL)
	}
	if cfg.SessionStore != "redis" || cfg.RequestTimeout != 5*time.Second {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Redis.Addr != "redis:6380" {
		t.Fatalf("redis addr = %q", cfg.Redis.Addr)
	}
}
