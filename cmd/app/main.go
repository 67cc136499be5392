package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"genzjobs/internal/api"
	"genzjobs/internal/config"
	"genzjobs/internal/notifier"
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
		log.Fatalf("failed to create producer: %v", err)
	}
	defer publisher.Close()

	consumer, err := queue.NewKafkaConsumer(cfg.Queue.Brokers, cfg.Queue.GroupID, cfg.Queue.Topic)
	if err != nil {
		log.Fatalf("failed to create consumer: %v", err)
	}
	defer consumer.Close()

	scrapers, err := scraper.FromConfig(cfg.Scraper)
	if err != nil {
		log.Fatalf("failed to build scrapers: %v", err)
	}

	var nt notifier.Notifier
	if cfg.Notifier.TelegramToken != "" {
		nt = notifier.NewTelegram(cfg.Notifier.TelegramToken, cfg.Notifier.TelegramChatIDs)
	}

	sw := worker.NewScrapeWorker(scrapers, publisher, rdb, cfg.Scraper.Interval)
	server := api.NewServer(repo, rdb, sw, cfg.Server.APIKey)
	cw := worker.NewClassifyWorker(consumer, repo, server, nt, cfg.Notifier.MinConfidence)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go sw.Start(ctx)

	go func() {
		if err := cw.Start(ctx); err != nil {
			log.Printf("consumer error: %v", err)
		}
	}()

	go func() {
		log.Printf("server starting on %s", cfg.Server.Port)
		if err := server.Start(cfg.Server.Port); err != nil {
			log.Printf("server error: %v", err)
		}
	}()

	log.Printf("app started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Printf("shutting down")
	cancel()
	server.Shutdown()
}
