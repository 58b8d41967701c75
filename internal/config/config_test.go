package config

import "testing"

// TestLoad_Defaults tests that a bare environment yields usable defaults.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.APIBaseURL != "http://localhost:5000/api/v1" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.SessionDBPath != "smartevents.db" {
		t.Errorf("SessionDBPath = %q", cfg.SessionDBPath)
	}
	if cfg.IsProduction() {
		t.Error("default env should not be production")
	}
}

// TestLoad_Overrides tests env var overrides.
func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SMARTEVENTS_ENV", "production")
	t.Setenv("SMARTEVENTS_ADDR", ":9000")
	t.Setenv("SMARTEVENTS_API_URL", "https://api.smartevents.campus/api/v1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.IsProduction() {
		t.Error("expected production")
	}
	if cfg.Addr != ":9000" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.APIBaseURL != "https://api.smartevents.campus/api/v1" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
}
