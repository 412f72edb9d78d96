package config

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Name == "" || cfg.Server.HTTPPort == 0 {
		t.Fatalf("server defaults incomplete: %+v", cfg.Server)
	}
	if cfg.Database.Driver != "mysql" {
		t.Fatalf("expected mysql driver default, got %q", cfg.Database.Driver)
	}
	if cfg.Auth.JWTSecret != "" {
		t.Fatalf("default config must not ship a jwt secret")
	}
	if !cfg.Auth.Enabled {
		t.Fatalf("auth should be enabled by default")
	}
	if cfg.Cron.PruneSchedule == "" || cfg.Cron.RefreshSchedule == "" {
		t.Fatalf("cron defaults incomplete: %+v", cfg.Cron)
	}
	if cfg.RateLimit.Kind != "token_bucket" {
		t.Fatalf("expected token_bucket as default limiter kind, got %q", cfg.RateLimit.Kind)
	}
	if cfg.RateLimit.Capacity <= 0 || cfg.RateLimit.RefillRate <= 0 {
		t.Fatalf("rate limit defaults incomplete: %+v", cfg.RateLimit)
	}
}
