package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.League.ILCapacity != 3 {
		t.Errorf("expected IL capacity default 3, got %d", cfg.League.ILCapacity)
	}
	if cfg.League.LowRankThreshold != 60 {
		t.Errorf("expected low rank threshold default 60, got %d", cfg.League.LowRankThreshold)
	}
	if cfg.League.WaiverRankCeiling != 96 {
		t.Errorf("expected waiver ceiling default 96, got %d", cfg.League.WaiverRankCeiling)
	}
	if cfg.Cron.Daily != "0 0 2 * * *" {
		t.Errorf("unexpected cron default: %q", cfg.Cron.Daily)
	}
	if cfg.Email.SMTPPort != 587 {
		t.Errorf("expected SMTP port default 587, got %d", cfg.Email.SMTPPort)
	}
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	path := writeConfig(t, `
platform:
  base_url: https://fantasy.example.com
  league_id: "12345"
  team_id: "7"
league:
  low_rank_threshold: 80
email:
  smtp_host: smtp.example.com
  from: bot@example.com
  to: me@example.com
`)
	t.Setenv("TEAM_ID", "9")
	t.Setenv("SMTP_PORT", "2525")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.League.LowRankThreshold != 80 {
		t.Errorf("yaml value not applied, got %d", cfg.League.LowRankThreshold)
	}
	if cfg.Platform.TeamID != "9" {
		t.Errorf("env override not applied, got %q", cfg.Platform.TeamID)
	}
	if cfg.Email.SMTPPort != 2525 {
		t.Errorf("env SMTP port not applied, got %d", cfg.Email.SMTPPort)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestValidate_MissingFields(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty platform settings")
	}
}
