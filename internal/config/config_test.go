package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "foo=bar, uptrace-dsn='https://token@api.uptrace.dev'")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.WMFLTimeout != 15*time.Second {
		t.Fatalf("expected WMFL timeout 15s, got %s", cfg.WMFLTimeout)
	}
	if cfg.WMFLURLTemplate != DefaultWMFLURLTemplate {
		t.Fatalf("unexpected WMFL url template: %q", cfg.WMFLURLTemplate)
	}
	if cfg.DefaultTournamentID != DefaultTournamentID {
		t.Fatalf("unexpected default tournament id: %d", cfg.DefaultTournamentID)
	}
	if cfg.DefaultSeason != DefaultSeason {
		t.Fatalf("unexpected default season: %q", cfg.DefaultSeason)
	}
	if cfg.SyncMaxWorkers != 1 {
		t.Fatalf("expected sequential sync by default, got workers=%d", cfg.SyncMaxWorkers)
	}
	if cfg.SyncLogLimit != 50 {
		t.Fatalf("expected sync log limit 50, got %d", cfg.SyncLogLimit)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected CORS origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "template without placeholder", key: "WMFL_URL_TEMPLATE", value: "https://wmfl.ru/standings"},
		{name: "negative timeout", key: "WMFL_TIMEOUT", value: "-1s"},
		{name: "zero workers", key: "SYNC_MAX_WORKERS", value: "0"},
		{name: "non numeric tournament", key: "DEFAULT_TOURNAMENT_ID", value: "abc"},
		{name: "invalid bool", key: "WMFL_INSECURE_TLS", value: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv("UPTRACE_ENABLED", "false")
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestSplitCSV(t *testing.T) {
	got := splitCSV(" https://a.example.com, ,https://b.example.com ")
	if len(got) != 2 || got[0] != "https://a.example.com" || got[1] != "https://b.example.com" {
		t.Fatalf("unexpected split result: %v", got)
	}
}
