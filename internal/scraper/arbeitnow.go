package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"genzjobs/internal/domain"
)

const arbeitnowURL = "https://www.arbeitnow.com/api/job-board-api"

type Arbeitnow struct {
	url     string
	client  *http.Client
	maxJobs int
}

func NewArbeitnow(maxJobs int) *Arbeitnow {
	return &Arbeitnow{
		url:     arbeitnowURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		maxJobs: maxJobs,
	}
}

func (a *Arbeitnow) Name() domain.Source { return domain.SourceArbeitnow }

type arbeitnowJob struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	CompanyName string   `json:"company_name"`
	Location    string   `json:"location"`
	Remote      bool     `json:"remote"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	CreatedAt   int64    `json:"created_at"`
}

func (a *Arbeitnow) Fetch(ctx context.Context) ([]domain.Job, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arbeitnow: HTTP %d", resp.StatusCode)
	}

	var payload struct {
		Data []arbeitnowJob `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	raw := payload.Data
	if len(raw) > a.maxJobs {
		raw = raw[:a.maxJobs]
	}

	jobs := make([]domain.Job, 0, len(raw))
	for _, aj := range raw {
		if job, ok := a.parse(aj); ok {
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

func (a *Arbeitnow) parse(aj arbeitnowJob) (domain.Job, bool) {
	title := strings.TrimSpace(aj.Title)
	company := strings.TrimSpace(aj.CompanyName)
	if aj.Slug == "" || title == "" || company == "" {
		return domain.Job{}, false
	}

	location := aj.Location
	if aj.Remote && location == "" {
		location = "Remote"
	}

	// Board tags that are known skills, then whatever the text mentions.
	skills := matchTags(aj.Tags, techSkills)
	for _, s := range ExtractSkills(aj.Description+" "+title, techSkills) {
		if !containsFold(skills, s) {
			skills = append(skills, s)
		}
	}

	var postedAt *time.Time
	if aj.CreatedAt > 0 {
		t := time.Unix(aj.CreatedAt, 0).UTC()
		postedAt = &t
	}

	return domain.Job{
		ExternalID:  "arbeitnow_" + aj.Slug,
		Source:      domain.SourceArbeitnow,
		Title:       title,
		Company:     company,
		Location:    location,
		JobType:     DetectJobType(title + " " + aj.Description),
		Description: aj.Description,
		Skills:      skills,
		Remote:      aj.Remote,
		ApplyURL:    aj.URL,
		PostedAt:    postedAt,
		ScrapedAt:   time.Now().UTC(),
	}, true
}

func matchTags(tags, skills []string) []string {
	var out []string
	for _, tag := range tags {
		if containsFold(skills, tag) && !containsFold(out, tag) {
			out = append(out, tag)
		}
	}
	return out
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
