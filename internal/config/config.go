package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Rules     RulesConfig     `yaml:"rules"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Port        int `yaml:"port"`
	MetricsPort int `yaml:"metrics_port"`
}

// RulesConfig mirrors scoring.RuleSet in yaml form so a season's rule
// changes need a config edit, not a rebuild.
type RulesConfig struct {
	Autonomous           MultipliersConfig `yaml:"autonomous_multipliers"`
	Manual               MultipliersConfig `yaml:"manual_multipliers"`
	BonusTiers           []BonusTierConfig `yaml:"bonus_tiers"`
	MaxCombinedWeightLbs float64           `yaml:"max_combined_weight_lbs"`
	MaxMissionTimeSec    float64           `yaml:"max_mission_time_sec"`
}

type MultipliersConfig struct {
	ConventionalTakeoff float64 `yaml:"conventional_takeoff"`
	PayloadRelease      float64 `yaml:"payload_release"`
	PayloadDelivery     float64 `yaml:"payload_delivery"`
	PayloadCapture      float64 `yaml:"payload_capture"`
	ReturnToBase        float64 `yaml:"return_to_base"`
}

type BonusTierConfig struct {
	MaxSeconds float64 `yaml:"max_seconds"`
	Bonus      float64 `yaml:"bonus"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8700,
			MetricsPort: 8701,
		},
		Rules: RulesConfig{
			Autonomous: MultipliersConfig{
				ConventionalTakeoff: 2,
				PayloadRelease:      3,
				PayloadDelivery:     8,
				PayloadCapture:      12,
				ReturnToBase:        3,
			},
			Manual: MultipliersConfig{
				ConventionalTakeoff: 1,
				PayloadRelease:      1,
				PayloadDelivery:     1,
				PayloadCapture:      2,
				ReturnToBase:        1,
			},
			BonusTiers: []BonusTierConfig{
				{MaxSeconds: 120, Bonus: 2},
				{MaxSeconds: 180, Bonus: 1},
				{MaxSeconds: 240, Bonus: 0},
			},
			MaxCombinedWeightLbs: 3.5,
			MaxMissionTimeSec:    240,
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 120,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("AIRSCORE_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("AIRSCORE_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("AIRSCORE_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimit.RequestsPerMinute = n
		}
	}
	if v := os.Getenv("AIRSCORE_MAX_COMBINED_WEIGHT_LBS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Rules.MaxCombinedWeightLbs = f
		}
	}
	if v := os.Getenv("AIRSCORE_MAX_MISSION_TIME_SEC"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Rules.MaxMissionTimeSec = f
		}
	}
	if v := os.Getenv("AIRSCORE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("AIRSCORE_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
