package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"genzjobs/internal/config"
	"genzjobs/internal/queue"
	"genzjobs/internal/redis"
	"genzjobs/internal/scraper"
	"genzjobs/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	rdb, err := redis.New(cfg.Redis.Addr, cfg.Redis.SeenTTL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer rdb.Close()

	publisher, err := queue.NewKafka(cfg.Queue.Brokers, cfg.Queue.Topic)
	if err != nil {
		log.Fatalf("failed to create queue: %v", err)
	}
	defer publisher.Close()

	scrapers, err := scraper.FromConfig(cfg.Scraper)
	if err != nil {
		log.Fatalf("failed to build scrapers: %v", err)
	}

	w := worker.NewScrapeWorker(scrapers, publisher, rdb, cfg.Scraper.Interval)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go w.Start(ctx)

	log.Printf("scraper started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Printf("shutting down")
	cancel()
}
