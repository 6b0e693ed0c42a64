package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_DSN", "APP_ENV", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("unexpected port %q", cfg.Port)
	}
	if cfg.DatabaseDSN != "sqlite://inventory.db" {
		t.Fatalf("unexpected dsn %q", cfg.DatabaseDSN)
	}
	if cfg.Env != "development" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	cfg := Load()
	if cfg.Port != "9090" || cfg.Env != "production" {
		t.Fatalf("env vars not honored: %+v", cfg)
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		name  string
		value string
		def   bool
		want  bool
	}{
		{"unset keeps default", "", true, true},
		{"one is true", "1", false, true},
		{"true is true", "true", false, true},
		{"zero is false", "0", true, false},
		{"false is false", "false", true, false},
		{"garbage keeps default", "yep", false, false},
		{"garbage keeps true default", "yep", true, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tc.value)
			if got := ParseBool("TEST_BOOL", tc.def); got != tc.want {
				t.Fatalf("ParseBool(%q, %v) = %v, want %v", tc.value, tc.def, got, tc.want)
			}
		})
	}
}
