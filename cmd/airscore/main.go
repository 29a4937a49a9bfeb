package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redtail-aero/airscore/internal/api"
	"github.com/redtail-aero/airscore/internal/config"
	"github.com/redtail-aero/airscore/internal/scoring"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Logging)
	slog.SetDefault(logger)

	rules := ruleSetFromConfig(cfg.Rules)
	if err := rules.Validate(); err != nil {
		logger.Error("invalid scoring rules", "error", err)
		os.Exit(1)
	}
	scorer := scoring.NewScorer(rules, logger)

	router := api.NewRouter(scorer, cfg.RateLimit.RequestsPerMinute, logger)
	apiServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	metricsRouter := api.NewMetricsRouter()
	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler: metricsRouter,
	}

	go func() {
		logger.Info("API server starting", "port", cfg.Server.Port)
		if err := apiServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("API server error", "error", err)
		}
	}()

	go func() {
		logger.Info("metrics server starting", "port", cfg.Server.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = apiServer.Shutdown(shutdownCtx)
	_ = metricsServer.Shutdown(shutdownCtx)

	logger.Info("shutdown complete")
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func ruleSetFromConfig(rc config.RulesConfig) scoring.RuleSet {
	rules := scoring.RuleSet{
		Autonomous:           multipliersFromConfig(rc.Autonomous),
		Manual:               multipliersFromConfig(rc.Manual),
		MaxCombinedWeightLbs: rc.MaxCombinedWeightLbs,
		MaxMissionTimeSec:    rc.MaxMissionTimeSec,
	}
	for _, tier := range rc.BonusTiers {
		rules.BonusTiers = append(rules.BonusTiers, scoring.BonusTier{
			MaxSeconds: tier.MaxSeconds,
			Bonus:      tier.Bonus,
		})
	}
	return rules
}

func multipliersFromConfig(mc config.MultipliersConfig) scoring.SegmentMultipliers {
	return scoring.SegmentMultipliers{
		ConventionalTakeoff: mc.ConventionalTakeoff,
		PayloadRelease:      mc.PayloadRelease,
		PayloadDelivery:     mc.PayloadDelivery,
		PayloadCapture:      mc.PayloadCapture,
		ReturnToBase:        mc.ReturnToBase,
	}
}
