package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"HoopsSentinel/internal/collector"
	"HoopsSentinel/internal/config"
	"HoopsSentinel/internal/engine"
	"HoopsSentinel/internal/notifier"
	"HoopsSentinel/internal/recorder"
	"HoopsSentinel/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] HoopsSentinel starting...")

	if err := godotenv.Load(); err == nil {
		log.Println("[INFO] loaded .env")
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init providers
	platform := collector.NewPlatformClient(cfg.Platform.BaseURL, cfg.Platform.Token, cfg.Platform.LeagueID, cfg.Platform.TeamID, cfg.Proxy)
	rankings := collector.NewRankingsClient(cfg.Rankings.BaseURL, cfg.Rankings.APIKey, cfg.Rankings.CacheFile,
		time.Duration(cfg.Rankings.CacheTTL)*time.Hour, cfg.Proxy)
	schedule := collector.NewESPNSchedule(cfg.Schedule.BaseURL, cfg.Proxy)
	col := collector.NewCollector(platform, rankings, schedule, cfg.League.FreeAgentLimit)

	// Init engine
	eng := engine.New(engine.Config{
		ILCapacity:        cfg.League.ILCapacity,
		BenchSlots:        cfg.League.BenchSlots,
		LowRankThreshold:  cfg.League.LowRankThreshold,
		WaiverRankCeiling: cfg.League.WaiverRankCeiling,
		WaiverMinMPG:      cfg.League.WaiverMinMPG,
		WaiverMinGames:    cfg.League.WaiverMinGames,
	})

	// Init email notifier
	mailer := notifier.NewEmailNotifier(cfg.Email.SMTPHost, cfg.Email.SMTPPort,
		cfg.Email.Username, cfg.Email.Password, cfg.Email.From, cfg.Email.To)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, col, eng, mailer, rec, cfg.UntouchablesFile)
	if err := sched.RegisterAll(cfg.Cron.Daily, cfg.Cron.Weekly); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing daily task now")
		go sched.RunDailyNow()
	}

	log.Println("[INFO] HoopsSentinel is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] HoopsSentinel stopped")
}
