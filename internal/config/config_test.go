package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	envVars := []string{
		"AIRSCORE_PORT", "AIRSCORE_METRICS_PORT", "AIRSCORE_RATE_LIMIT",
		"AIRSCORE_MAX_COMBINED_WEIGHT_LBS", "AIRSCORE_MAX_MISSION_TIME_SEC",
		"AIRSCORE_LOG_LEVEL", "AIRSCORE_LOG_FORMAT",
	}
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8700 {
		t.Errorf("expected port 8700, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected metrics port 8701, got %d", cfg.Server.MetricsPort)
	}
	if cfg.RateLimit.RequestsPerMinute != 120 {
		t.Errorf("expected rate limit 120, got %d", cfg.RateLimit.RequestsPerMinute)
	}
	if cfg.Rules.MaxCombinedWeightLbs != 3.5 {
		t.Errorf("expected weight limit 3.5, got %f", cfg.Rules.MaxCombinedWeightLbs)
	}
	if cfg.Rules.MaxMissionTimeSec != 240 {
		t.Errorf("expected mission window 240, got %f", cfg.Rules.MaxMissionTimeSec)
	}
	if cfg.Rules.Autonomous.PayloadCapture != 12 {
		t.Errorf("expected autonomous capture multiplier 12, got %f", cfg.Rules.Autonomous.PayloadCapture)
	}
	if cfg.Rules.Manual.PayloadCapture != 2 {
		t.Errorf("expected manual capture multiplier 2, got %f", cfg.Rules.Manual.PayloadCapture)
	}
	if len(cfg.Rules.BonusTiers) != 3 {
		t.Fatalf("expected 3 bonus tiers, got %d", len(cfg.Rules.BonusTiers))
	}
	if cfg.Rules.BonusTiers[0].MaxSeconds != 120 || cfg.Rules.BonusTiers[0].Bonus != 2 {
		t.Errorf("unexpected first bonus tier: %+v", cfg.Rules.BonusTiers[0])
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format 'json', got '%s'", cfg.Logging.Format)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("AIRSCORE_PORT", "9100")
	t.Setenv("AIRSCORE_METRICS_PORT", "9101")
	t.Setenv("AIRSCORE_RATE_LIMIT", "30")
	t.Setenv("AIRSCORE_MAX_COMBINED_WEIGHT_LBS", "5.0")
	t.Setenv("AIRSCORE_MAX_MISSION_TIME_SEC", "300")
	t.Setenv("AIRSCORE_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("expected port 9100, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 9101 {
		t.Errorf("expected metrics port 9101, got %d", cfg.Server.MetricsPort)
	}
	if cfg.RateLimit.RequestsPerMinute != 30 {
		t.Errorf("expected rate limit 30, got %d", cfg.RateLimit.RequestsPerMinute)
	}
	if cfg.Rules.MaxCombinedWeightLbs != 5.0 {
		t.Errorf("expected weight limit 5.0, got %f", cfg.Rules.MaxCombinedWeightLbs)
	}
	if cfg.Rules.MaxMissionTimeSec != 300 {
		t.Errorf("expected mission window 300, got %f", cfg.Rules.MaxMissionTimeSec)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got '%s'", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	data := `
server:
  port: 8800
rules:
  max_combined_weight_lbs: 4.0
  bonus_tiers:
    - max_seconds: 100
      bonus: 3
    - max_seconds: 200
      bonus: 1
logging:
  level: warn
`
	path := filepath.Join(t.TempDir(), "airscore.yaml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8800 {
		t.Errorf("expected port 8800, got %d", cfg.Server.Port)
	}
	// Unset file fields keep defaults.
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected default metrics port, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Rules.MaxCombinedWeightLbs != 4.0 {
		t.Errorf("expected weight limit 4.0, got %f", cfg.Rules.MaxCombinedWeightLbs)
	}
	if len(cfg.Rules.BonusTiers) != 2 {
		t.Fatalf("expected file to replace bonus tiers, got %d", len(cfg.Rules.BonusTiers))
	}
	if cfg.Rules.BonusTiers[0].Bonus != 3 {
		t.Errorf("unexpected first tier: %+v", cfg.Rules.BonusTiers[0])
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level 'warn', got '%s'", cfg.Logging.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/airscore.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}
