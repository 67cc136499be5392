package worker

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"genzjobs/internal/domain"
	"genzjobs/internal/queue"
	"genzjobs/internal/scraper"
)

// ErrAlreadyRunning is returned when a scrape is requested while one is in flight.
var ErrAlreadyRunning = errors.New("scrape already running")

// SourceStore tracks disabled sources and seen job IDs between runs.
// Satisfied by redis.Client.
type SourceStore interface {
	SourceDisabled(ctx context.Context, source string) (bool, error)
	Seen(ctx context.Context, source, jobID string) (bool, error)
	MarkSeen(ctx context.Context, source, jobID string) error
}

// ScrapeWorker runs all registered scrapers on an interval, dedupes
// against the source store, and publishes new jobs to the queue.
type ScrapeWorker struct {
	scrapers  []scraper.Scraper
	publisher queue.Publisher
	store     SourceStore
	interval  time.Duration

	mu          sync.Mutex
	running     bool
	lastRun     time.Time
	lastResults []domain.ScrapeResult
	totalJobs   int
}

func NewScrapeWorker(scrapers []scraper.Scraper, publisher queue.Publisher, store SourceStore, interval time.Duration) *ScrapeWorker {
	return &ScrapeWorker{
		scrapers:  scrapers,
		publisher: publisher,
		store:     store,
		interval:  interval,
	}
}

// Start blocks, scraping immediately and then on every tick until ctx is done.
func (w *ScrapeWorker) Start(ctx context.Context) {
	log.Printf("[WORKER] starting scrape loop, interval=%s", w.interval)

	if err := w.RunAll(ctx); err != nil {
		log.Printf("[WORKER] initial scrape: %v", err)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[WORKER] scrape loop stopped")
			return
		case <-ticker.C:
			if err := w.RunAll(ctx); err != nil {
				log.Printf("[WORKER] scheduled scrape: %v", err)
			}
		}
	}
}

// RunAll scrapes every enabled source. Only one run may be active at a time.
func (w *ScrapeWorker) RunAll(ctx context.Context) error {
	if !w.begin() {
		return ErrAlreadyRunning
	}
	defer w.end()

	results := make([]domain.ScrapeResult, 0, len(w.scrapers))
	for _, s := range w.scrapers {
		results = append(results, w.scrapeOne(ctx, s))
	}

	w.record(results)
	return nil
}

// RunOne scrapes a single source by name.
func (w *ScrapeWorker) RunOne(ctx context.Context, source domain.Source) error {
	var target scraper.Scraper
	for _, s := range w.scrapers {
		if s.Name() == source {
			target = s
			break
		}
	}
	if target == nil {
		return fmt.Errorf("unknown source: %s", source)
	}

	if !w.begin() {
		return ErrAlreadyRunning
	}
	defer w.end()

	w.record([]domain.ScrapeResult{w.scrapeOne(ctx, target)})
	return nil
}

func (w *ScrapeWorker) scrapeOne(ctx context.Context, s scraper.Scraper) domain.ScrapeResult {
	source := s.Name()
	result := domain.ScrapeResult{Source: source}
	start := time.Now()

	disabled, err := w.store.SourceDisabled(ctx, string(source))
	if err != nil {
		log.Printf("[WORKER] %s: source store check failed: %v", source, err)
	}
	if disabled {
		log.Printf("[WORKER] %s: disabled, skipping", source)
		result.Duration = time.Since(start)
		return result
	}

	log.Printf("[WORKER] scraping %s", source)

	jobs, err := s.Fetch(ctx)
	if err != nil {
		log.Printf("[WORKER] %s: fetch failed: %v", source, err)
		result.Errors = append(result.Errors, err.Error())
		result.Duration = time.Since(start)
		return result
	}
	result.JobsFound = len(jobs)

	for _, job := range jobs {
		seen, err := w.store.Seen(ctx, string(source), job.ExternalID)
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
			continue
		}
		if seen {
			continue
		}

		job.ID = generateID(job.Source, job.ExternalID)
		if err := w.publisher.Publish(ctx, job); err != nil {
			log.Printf("[WORKER] %s: publish failed: %v", source, err)
			result.Errors = append(result.Errors, err.Error())
			continue
		}

		if err := w.store.MarkSeen(ctx, string(source), job.ExternalID); err != nil {
			result.Errors = append(result.Errors, err.Error())
		}
		result.JobsAdded++
	}

	result.Duration = time.Since(start)
	log.Printf("[WORKER] %s: found=%d added=%d errors=%d in %s",
		source, result.JobsFound, result.JobsAdded, len(result.Errors), result.Duration)
	return result
}

func (w *ScrapeWorker) begin() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return false
	}
	w.running = true
	return true
}

func (w *ScrapeWorker) end() {
	w.mu.Lock()
	w.running = false
	w.mu.Unlock()
}

func (w *ScrapeWorker) record(results []domain.ScrapeResult) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lastRun = time.Now()
	w.lastResults = results
	for _, r := range results {
		w.totalJobs += r.JobsAdded
	}
}

// Status reports the current worker state for the API.
type Status struct {
	Running     bool                  `json:"running"`
	LastRun     time.Time             `json:"last_run"`
	NextRun     time.Time             `json:"next_run"`
	TotalJobs   int                   `json:"total_jobs_added"`
	LastResults []domain.ScrapeResult `json:"last_results"`
}

func (w *ScrapeWorker) Status() Status {
	w.mu.Lock()
	defer w.mu.Unlock()

	st := Status{
		Running:     w.running,
		LastRun:     w.lastRun,
		TotalJobs:   w.totalJobs,
		LastResults: w.lastResults,
	}
	if !w.lastRun.IsZero() {
		st.NextRun = w.lastRun.Add(w.interval)
	}
	return st
}

// Sources lists the names of all registered scrapers.
func (w *ScrapeWorker) Sources() []domain.Source {
	names := make([]domain.Source, 0, len(w.scrapers))
	for _, s := range w.scrapers {
		names = append(names, s.Name())
	}
	return names
}

func generateID(source domain.Source, externalID string) string {
	sum := md5.Sum([]byte(string(source) + ":" + externalID))
	return hex.EncodeToString(sum[:])
}
