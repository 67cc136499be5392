package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"genzjobs/internal/domain"
)

const apprenticeshipURL = "https://www.apprenticeship.gov/api/v1/apprenticeships"

var apprenticeshipOccupations = []string{
	"electrician", "plumber", "hvac", "carpenter", "welder",
	"machinist", "automotive", "construction", "sheet metal", "pipefitter",
}

type Apprenticeship struct {
	url     string
	client  *http.Client
	maxJobs int
	delay   time.Duration
}

func NewApprenticeship(maxJobs int, delay time.Duration) *Apprenticeship {
	return &Apprenticeship{
		url:     apprenticeshipURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		maxJobs: maxJobs,
		delay:   delay,
	}
}

func (a *Apprenticeship) Name() domain.Source { return domain.SourceApprenticeship }

// The API is loose about field names, so parse the union of the shapes seen
// in the wild.
type apprenticeshipProgram struct {
	ID              json.Number `json:"id"`
	ProgramID       string      `json:"program_id"`
	RapidsNumber    string      `json:"rapids_number"`
	OccupationTitle string      `json:"occupation_title"`
	Title           string      `json:"title"`
	SponsorName     string      `json:"sponsor_name"`
	EmployerName    string      `json:"employer_name"`
	Description     string      `json:"description"`
	City            string      `json:"city"`
	State           string      `json:"state"`
	URL             string      `json:"url"`
}

func (a *Apprenticeship) Fetch(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	seen := make(map[string]bool)

	for _, occupation := range apprenticeshipOccupations {
		if len(jobs) >= a.maxJobs {
			break
		}
		rateLimit(ctx, a.delay)
		if ctx.Err() != nil {
			return jobs, ctx.Err()
		}

		params := url.Values{
			"keyword":  {occupation},
			"page":     {"1"},
			"per_page": {"25"},
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.url+"?"+params.Encode(), nil)
		if err != nil {
			return jobs, err
		}

		resp, err := a.client.Do(req)
		if err != nil {
			log.Printf("[ERROR] apprenticeship %q: %v", occupation, err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			log.Printf("[WARN] apprenticeship: rate limited")
			break
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			log.Printf("[WARN] apprenticeship %q: HTTP %d", occupation, resp.StatusCode)
			continue
		}

		var payload struct {
			Data []apprenticeshipProgram `json:"data"`
		}
		err = json.NewDecoder(resp.Body).Decode(&payload)
		resp.Body.Close()
		if err != nil {
			log.Printf("[ERROR] apprenticeship %q: decode: %v", occupation, err)
			continue
		}

		for _, program := range payload.Data {
			if len(jobs) >= a.maxJobs {
				break
			}
			job, ok := a.parse(program)
			if !ok || seen[job.ExternalID] {
				continue
			}
			seen[job.ExternalID] = true
			jobs = append(jobs, job)
		}
	}

	return jobs, nil
}

func (a *Apprenticeship) parse(p apprenticeshipProgram) (domain.Job, bool) {
	id := p.ID.String()
	if id == "" || id == "0" {
		id = p.ProgramID
	}
	if id == "" {
		id = p.RapidsNumber
	}

	title := strings.TrimSpace(p.OccupationTitle)
	if title == "" {
		title = strings.TrimSpace(p.Title)
	}
	if id == "" || title == "" {
		return domain.Job{}, false
	}

	company := strings.TrimSpace(p.SponsorName)
	if company == "" {
		company = strings.TrimSpace(p.EmployerName)
	}
	if company == "" {
		company = "Registered Apprenticeship Sponsor"
	}

	description := p.Description
	if description == "" {
		description = fmt.Sprintf("Registered apprenticeship program for %s. No experience required, training provided.", title)
	}

	var location string
	switch {
	case p.City != "" && p.State != "":
		location = p.City + ", " + p.State
	case p.City != "":
		location = p.City
	case p.State != "":
		location = p.State
	}

	return domain.Job{
		ExternalID:  "apprenticeship_" + id,
		Source:      domain.SourceApprenticeship,
		Title:       title + " Apprentice",
		Company:     company,
		Location:    location,
		JobType:     domain.JobTypeFullTime,
		Description: description,
		Skills:      ExtractSkills(description+" "+title, tradesSkills),
		ApplyURL:    p.URL,
		ScrapedAt:   time.Now().UTC(),
	}, true
}
