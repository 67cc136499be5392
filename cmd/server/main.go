package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"genzjobs/internal/api"
	"genzjobs/internal/config"
	"genzjobs/internal/queue"
	"genzjobs/internal/redis"
	"genzjobs/internal/scraper"
	"genzjobs/internal/storage"
	"genzjobs/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	repo, err := storage.NewPostgres(cfg.Storage.DSN)
	if err != nil {
		log.Fatalf("failed to connect to storage: %v", err)
	}
	defer repo.Close()

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

	// No interval loop here: scrapes only run when triggered over the API.
	w := worker.NewScrapeWorker(scrapers, publisher, rdb, cfg.Scraper.Interval)

	server := api.NewServer(repo, rdb, w, cfg.Server.APIKey)

	go func() {
		log.Printf("server starting on %s", cfg.Server.Port)
		if err := server.Start(cfg.Server.Port); err != nil {
			log.Printf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Printf("shutting down")
	server.Shutdown()
}
