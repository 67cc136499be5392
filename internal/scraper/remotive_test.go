package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"genzjobs/internal/domain"
)

const remotivePayload = `{
  "jobs": [
    {
      "id": 101,
      "title": "Junior Backend Developer",
      "company_name": "Acme",
      "company_logo": "https://example.com/logo.png",
      "candidate_required_location": "USA Only",
      "job_type": "full_time",
      "description": "Work with Go and PostgreSQL. No experience required.",
      "salary": "$55k - $65k",
      "url": "https://remotive.com/jobs/101",
      "publication_date": "2025-08-01T12:00:00"
    },
    {
      "id": 102,
      "title": "  ",
      "company_name": "Ghost Inc",
      "description": "untitled posting is dropped"
    },
    {
      "id": 103,
      "title": "Designer",
      "company_name": "Beta",
      "job_type": "contract",
      "description": "",
      "url": "https://remotive.com/jobs/103"
    }
  ]
}`

func TestRemotiveFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(remotivePayload))
	}))
	defer srv.Close()

	s := NewRemotive(50)
	s.url = srv.URL

	jobs, err := s.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs got %d", len(jobs))
	}

	first := jobs[0]
	if first.ExternalID != "remotive_101" {
		t.Fatalf("unexpected external id %q", first.ExternalID)
	}
	if first.Source != domain.SourceRemotive {
		t.Fatalf("unexpected source %q", first.Source)
	}
	if !first.Remote {
		t.Fatal("remotive jobs are always remote")
	}
	if first.SalaryMin == nil || *first.SalaryMin != 55000 {
		t.Fatalf("unexpected salary min %v", first.SalaryMin)
	}
	if first.SalaryMax == nil || *first.SalaryMax != 65000 {
		t.Fatalf("unexpected salary max %v", first.SalaryMax)
	}
	if first.JobType != domain.JobTypeFullTime {
		t.Fatalf("unexpected job type %q", first.JobType)
	}
	if first.PostedAt == nil {
		t.Fatal("expected posted_at")
	}

	if jobs[1].JobType != domain.JobTypeContract {
		t.Fatalf("unexpected job type %q", jobs[1].JobType)
	}
	if jobs[1].Location != "Remote" {
		t.Fatalf("expected Remote fallback location, got %q", jobs[1].Location)
	}
}

func TestRemotiveFetchCapsAtMax(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(remotivePayload))
	}))
	defer srv.Close()

	s := NewRemotive(1)
	s.url = srv.URL

	jobs, err := s.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job got %d", len(jobs))
	}
}

func TestRemotiveFetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s := NewRemotive(50)
	s.url = srv.URL

	if _, err := s.Fetch(context.Background()); err == nil {
		t.Fatal("expected error on HTTP 502")
	}
}
