package worker

import (
	"context"
	"encoding/json"
	"log"

	"genzjobs/internal/classifier"
	"genzjobs/internal/domain"
	"genzjobs/internal/notifier"
	"genzjobs/internal/queue"
	"genzjobs/internal/storage"
)

// Broadcaster pushes classified jobs to live API subscribers.
type Broadcaster interface {
	Broadcast(data []byte)
}

// ClassifyWorker consumes scraped jobs, classifies them, persists the
// result, and fans out to subscribers and the notifier.
type ClassifyWorker struct {
	consumer      queue.Consumer
	repo          storage.JobRepository
	broadcaster   Broadcaster
	notifier      notifier.Notifier
	minConfidence float64
}

func NewClassifyWorker(consumer queue.Consumer, repo storage.JobRepository, b Broadcaster, n notifier.Notifier, minConfidence float64) *ClassifyWorker {
	return &ClassifyWorker{
		consumer:      consumer,
		repo:          repo,
		broadcaster:   b,
		notifier:      n,
		minConfidence: minConfidence,
	}
}

// Start blocks consuming from the queue until ctx is done.
func (w *ClassifyWorker) Start(ctx context.Context) error {
	log.Printf("[CONSUMER] starting classify loop")
	return w.consumer.Consume(ctx, func(job domain.Job) error {
		return w.process(ctx, job)
	})
}

func (w *ClassifyWorker) process(ctx context.Context, job domain.Job) error {
	result := classifySafe(job)

	job.ExperienceLevel = string(result.Level)
	job.AudienceTags = tagStrings(result.AudienceTags)
	job.Confidence = result.Confidence

	inserted, err := w.repo.Save(ctx, job)
	if err != nil {
		log.Printf("[CONSUMER] save %s: %v", job.ID, err)
		return err
	}
	if !inserted {
		return nil
	}

	log.Printf("[CONSUMER] classified %q as %s (%.2f)", job.Title, result.Level, result.Confidence)

	if w.broadcaster != nil {
		if data, err := json.Marshal(job); err == nil {
			w.broadcaster.Broadcast(data)
		}
	}

	if w.notifier != nil && w.shouldNotify(result) {
		if err := w.notifier.Notify(ctx, notifier.Notification{Job: job, Result: result}); err != nil {
			log.Printf("[CONSUMER] notify %s: %v", job.ID, err)
		}
	}

	return nil
}

func (w *ClassifyWorker) shouldNotify(result classifier.Result) bool {
	if result.Confidence < w.minConfidence {
		return false
	}
	for _, tag := range result.AudienceTags {
		if tag == classifier.AudienceGenZ {
			return true
		}
	}
	return false
}

// classifySafe guarantees one bad posting cannot take down the batch:
// a panic inside classification falls back to the default result.
func classifySafe(job domain.Job) (result classifier.Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[CONSUMER] classify panic on %s: %v", job.ID, r)
			result = classifier.Result{
				Level:        classifier.LevelMid,
				AudienceTags: []classifier.AudienceTag{classifier.AudienceMidCareer},
				Confidence:   0.3,
			}
		}
	}()
	return classifier.ClassifyJobWithCompany(job)
}

func tagStrings(tags []classifier.AudienceTag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = string(t)
	}
	return out
}
