package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"genzjobs/internal/domain"
)

func TestArbeitnowFetch(t *testing.T) {
	payload := `{
	  "data": [
	    {
	      "slug": "backend-engineer-berlin-42",
	      "title": "Backend Engineer",
	      "company_name": "Zeta GmbH",
	      "location": "Berlin",
	      "remote": false,
	      "tags": ["Go", "kubernetes", "beer"],
	      "description": "Ship services in Go. Docker experience helps.",
	      "url": "https://arbeitnow.com/jobs/backend-engineer-berlin-42",
	      "created_at": 1722470400
	    },
	    {
	      "slug": "",
	      "title": "No Slug",
	      "company_name": "Nope"
	    }
	  ]
	}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	s := NewArbeitnow(50)
	s.url = srv.URL

	jobs, err := s.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job got %d", len(jobs))
	}

	job := jobs[0]
	if job.ExternalID != "arbeitnow_backend-engineer-berlin-42" {
		t.Fatalf("unexpected external id %q", job.ExternalID)
	}
	if job.Source != domain.SourceArbeitnow {
		t.Fatalf("unexpected source %q", job.Source)
	}
	if job.PostedAt == nil {
		t.Fatal("expected posted_at from unix timestamp")
	}

	// Tag skills come first, then description hits, no duplicates, no
	// unknown tags.
	want := map[string]bool{"Go": true, "kubernetes": true, "docker": true}
	if len(job.Skills) != len(want) {
		t.Fatalf("unexpected skills %v", job.Skills)
	}
	for _, s := range job.Skills {
		if !want[s] {
			t.Fatalf("unexpected skill %q in %v", s, job.Skills)
		}
	}
}

func TestSplitWWRTitle(t *testing.T) {
	company, title := splitWWRTitle("Acme Corp: Senior Go Developer")
	if company != "Acme Corp" || title != "Senior Go Developer" {
		t.Fatalf("got %q / %q", company, title)
	}

	company, title = splitWWRTitle("Standalone Title")
	if company != "" || title != "Standalone Title" {
		t.Fatalf("got %q / %q", company, title)
	}
}
