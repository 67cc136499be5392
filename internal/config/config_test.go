package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != ":8080" {
		t.Errorf("Server.Port = %q, want :8080", cfg.Server.Port)
	}
	if cfg.Scraper.Interval != 60*time.Minute {
		t.Errorf("Scraper.Interval = %s, want 60m", cfg.Scraper.Interval)
	}
	if cfg.Scraper.MaxJobsPerSource != 50 {
		t.Errorf("Scraper.MaxJobsPerSource = %d, want 50", cfg.Scraper.MaxJobsPerSource)
	}
	if cfg.Queue.Topic != "jobs.scraped" {
		t.Errorf("Queue.Topic = %q, want jobs.scraped", cfg.Queue.Topic)
	}
	if cfg.Redis.SeenTTL != 168*time.Hour {
		t.Errorf("Redis.SeenTTL = %s, want 168h", cfg.Redis.SeenTTL)
	}
	if cfg.Notifier.MinConfidence != 0.7 {
		t.Errorf("Notifier.MinConfidence = %v, want 0.7", cfg.Notifier.MinConfidence)
	}
	if len(cfg.Scraper.Sources) == 0 {
		t.Error("Scraper.Sources is empty")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("GENZJOBS_SERVER__PORT", ":9090")
	t.Setenv("GENZJOBS_SCRAPER__MAX_JOBS_PER_SOURCE", "10")
	t.Setenv("GENZJOBS_NOTIFIER__TELEGRAM_TOKEN", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != ":9090" {
		t.Errorf("Server.Port = %q, want :9090", cfg.Server.Port)
	}
	if cfg.Scraper.MaxJobsPerSource != 10 {
		t.Errorf("Scraper.MaxJobsPerSource = %d, want 10", cfg.Scraper.MaxJobsPerSource)
	}
	if cfg.Notifier.TelegramToken != "secret" {
		t.Errorf("Notifier.TelegramToken = %q, want secret", cfg.Notifier.TelegramToken)
	}
}
