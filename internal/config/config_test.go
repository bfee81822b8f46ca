package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.APIBaseURL == "" {
		t.Fatalf("expected default api base url")
	}
	if cfg.HTTPTimeout <= 0 {
		t.Fatalf("expected default http timeout")
	}
	if cfg.LogLevel == "" {
		t.Fatalf("expected default log level")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TRAILHEAD_API_URL", "http://backend:9000/api-root")
	t.Setenv("TRAILHEAD_SESSION_FILE", "/tmp/session.json")
	t.Setenv("TRAILHEAD_HTTP_TIMEOUT", "30")
	t.Setenv("TRAILHEAD_MOCK", "true")

	cfg := Load()
	if cfg.APIBaseURL != "http://backend:9000/api-root" {
		t.Fatalf("expected override api url")
	}
	if cfg.SessionFile != "/tmp/session.json" {
		t.Fatalf("expected override session file")
	}
	if cfg.HTTPTimeout != 30 {
		t.Fatalf("expected override timeout")
	}
	if !cfg.MockMode {
		t.Fatalf("expected mock mode on")
	}
}
