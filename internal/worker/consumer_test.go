package worker

import (
	"context"
	"testing"

	"genzjobs/internal/classifier"
	"genzjobs/internal/domain"
	"genzjobs/internal/notifier"
)

type fakeRepo struct {
	saved    []domain.Job
	inserted bool
}

func (f *fakeRepo) Save(_ context.Context, job domain.Job) (bool, error) {
	f.saved = append(f.saved, job)
	return f.inserted, nil
}

func (f *fakeRepo) FindByID(_ context.Context, _ string) (*domain.Job, error) { return nil, nil }
func (f *fakeRepo) FindAll(_ context.Context, _, _ int) ([]domain.Job, error) { return nil, nil }
func (f *fakeRepo) FindByAudience(_ context.Context, _ string, _, _ int) ([]domain.Job, error) {
	return nil, nil
}
func (f *fakeRepo) Count(_ context.Context) (int, error)               { return 0, nil }
func (f *fakeRepo) Stats(_ context.Context) (map[string]int, error)    { return nil, nil }
func (f *fakeRepo) DeleteOlderThan(_ context.Context, _ int) (int, error) { return 0, nil }

type fakeBroadcaster struct {
	messages [][]byte
}

func (f *fakeBroadcaster) Broadcast(data []byte) {
	f.messages = append(f.messages, data)
}

type fakeNotifier struct {
	sent []notifier.Notification
}

func (f *fakeNotifier) Notify(_ context.Context, n notifier.Notification) error {
	f.sent = append(f.sent, n)
	return nil
}

func TestProcessClassifiesAndSaves(t *testing.T) {
	repo := &fakeRepo{inserted: true}
	bc := &fakeBroadcaster{}
	nt := &fakeNotifier{}
	w := NewClassifyWorker(nil, repo, bc, nt, 0.7)

	err := w.process(context.Background(), domain.Job{
		ID:     "abc",
		Title:  "VP of Engineering",
		Source: domain.SourceRemotive,
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	if len(repo.saved) != 1 {
		t.Fatalf("saved = %d, want 1", len(repo.saved))
	}
	got := repo.saved[0]
	if got.ExperienceLevel != "EXECUTIVE" {
		t.Errorf("ExperienceLevel = %s, want EXECUTIVE", got.ExperienceLevel)
	}
	if len(got.AudienceTags) != 1 || got.AudienceTags[0] != "executive" {
		t.Errorf("AudienceTags = %v, want [executive]", got.AudienceTags)
	}
	if got.Confidence != 0.9 {
		t.Errorf("Confidence = %v, want 0.9", got.Confidence)
	}

	if len(bc.messages) != 1 {
		t.Errorf("broadcasts = %d, want 1", len(bc.messages))
	}
	if len(nt.sent) != 0 {
		t.Errorf("notifications = %d, want 0 for executive posting", len(nt.sent))
	}
}

func TestProcessNotifiesOnEntryLevel(t *testing.T) {
	repo := &fakeRepo{inserted: true}
	nt := &fakeNotifier{}
	w := NewClassifyWorker(nil, repo, nil, nt, 0.7)

	err := w.process(context.Background(), domain.Job{
		ID:     "abc",
		Title:  "Junior Software Developer",
		Source: domain.SourceRemotive,
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	if len(nt.sent) != 1 {
		t.Fatalf("notifications = %d, want 1", len(nt.sent))
	}
	if nt.sent[0].Result.Level != classifier.LevelEntry {
		t.Errorf("notified level = %s, want ENTRY", nt.sent[0].Result.Level)
	}
}

func TestProcessSkipsDuplicates(t *testing.T) {
	repo := &fakeRepo{inserted: false}
	bc := &fakeBroadcaster{}
	nt := &fakeNotifier{}
	w := NewClassifyWorker(nil, repo, bc, nt, 0.7)

	err := w.process(context.Background(), domain.Job{
		ID:     "abc",
		Title:  "Junior Software Developer",
		Source: domain.SourceRemotive,
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	if len(bc.messages) != 0 {
		t.Errorf("broadcasts = %d, want 0 for duplicate", len(bc.messages))
	}
	if len(nt.sent) != 0 {
		t.Errorf("notifications = %d, want 0 for duplicate", len(nt.sent))
	}
}

func TestShouldNotify(t *testing.T) {
	w := NewClassifyWorker(nil, nil, nil, nil, 0.7)

	tests := []struct {
		name   string
		result classifier.Result
		want   bool
	}{
		{
			name: "genz above threshold",
			result: classifier.Result{
				AudienceTags: []classifier.AudienceTag{classifier.AudienceGenZ},
				Confidence:   0.9,
			},
			want: true,
		},
		{
			name: "genz below threshold",
			result: classifier.Result{
				AudienceTags: []classifier.AudienceTag{classifier.AudienceGenZ},
				Confidence:   0.5,
			},
			want: false,
		},
		{
			name: "mid career above threshold",
			result: classifier.Result{
				AudienceTags: []classifier.AudienceTag{classifier.AudienceMidCareer},
				Confidence:   0.9,
			},
			want: false,
		},
		{
			name: "dual tagged including genz",
			result: classifier.Result{
				AudienceTags: []classifier.AudienceTag{classifier.AudienceMidCareer, classifier.AudienceGenZ},
				Confidence:   0.8,
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.shouldNotify(tt.result); got != tt.want {
				t.Errorf("shouldNotify = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifySafeNormalPath(t *testing.T) {
	result := classifySafe(domain.Job{Title: "Senior Backend Engineer"})
	if result.Level != classifier.LevelSenior {
		t.Errorf("Level = %s, want SENIOR", result.Level)
	}
}
