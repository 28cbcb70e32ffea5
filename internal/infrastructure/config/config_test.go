package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "depannel.yaml")
	body := "port: 9090\npoll_interval: 10s\nview_store: dynamodb\ninterventions_table: iv\neta_offset: 45m\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("DEPANNEL_CONFIG", path)
	t.Setenv("POLL_INTERVAL", "5s")
	t.Setenv("SERVICE_TOKEN", "svc")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if cfg.Port != 9090 || cfg.ViewStore != ViewStoreDynamoDB || cfg.InterventionTable != "iv" {
		t.Fatalf("file overrides not applied: %+v", cfg)
	}
	if cfg.PollInterval != 5*time.Second {
		t.Fatalf("expected env to win, got %s", cfg.PollInterval)
	}
	if cfg.ArrivalOffset != 45*time.Minute {
		t.Fatalf("unexpected eta offset: %s", cfg.ArrivalOffset)
	}
	if !cfg.PollingEnabled() {
		t.Fatalf("expected polling enabled with service token")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]struct {
		key, value, want string
	}{
		"bad port":       {"PORT", "http", "PORT"},
		"bad duration":   {"POLL_INTERVAL", "soon", "POLL_INTERVAL"},
		"bad view store": {"VIEW_STORE", "postgres", "view_store"},
		"relative url":   {"DEPANNEL_API_URL", "/api", "api_base_url"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("DEPANNEL_CONFIG", "")
			t.Setenv(tc.key, tc.value)
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %s error, got %v", tc.want, err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("DEPANNEL_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
	if _, err := Load(); err == nil {
		t.Fatalf("expected read error")
	}
}
