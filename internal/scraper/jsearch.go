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

const jsearchURL = "https://api.openwebninja.com/jsearch/search"

// Broad entry-level queries; each returns roughly a page of postings.
var jsearchQueries = []string{
	"entry level software developer",
	"junior software engineer",
	"software engineer intern",
	"entry level data analyst",
	"junior web developer",
	"entry level IT support technician",
	"junior DevOps cloud engineer",
	"entry level QA tester",
	"junior cybersecurity analyst",
	"entry level UI UX designer",
}

type JSearch struct {
	url     string
	apiKey  string
	client  *http.Client
	maxJobs int
	delay   time.Duration
}

func NewJSearch(apiKey string, maxJobs int, delay time.Duration) *JSearch {
	return &JSearch{
		url:     jsearchURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
		maxJobs: maxJobs,
		delay:   delay,
	}
}

func (j *JSearch) Name() domain.Source { return domain.SourceJSearch }

type jsearchJob struct {
	JobID          string   `json:"job_id"`
	Title          string   `json:"job_title"`
	EmployerName   string   `json:"employer_name"`
	EmployerLogo   string   `json:"employer_logo"`
	City           string   `json:"job_city"`
	State          string   `json:"job_state"`
	Country        string   `json:"job_country"`
	IsRemote       bool     `json:"job_is_remote"`
	EmploymentType string   `json:"job_employment_type"`
	Description    string   `json:"job_description"`
	MinSalary      *float64 `json:"job_min_salary"`
	MaxSalary      *float64 `json:"job_max_salary"`
	SalaryCurrency string   `json:"job_salary_currency"`
	SalaryPeriod   string   `json:"job_salary_period"`
	ApplyLink      string   `json:"job_apply_link"`
	PostedAtUnix   int64    `json:"job_posted_at_timestamp"`
}

func (j *JSearch) Fetch(ctx context.Context) ([]domain.Job, error) {
	if j.apiKey == "" {
		log.Printf("[SKIP] jsearch: no API key configured")
		return nil, nil
	}

	var jobs []domain.Job
	seen := make(map[string]bool)

	for _, query := range jsearchQueries {
		if len(jobs) >= j.maxJobs {
			break
		}
		rateLimit(ctx, j.delay)
		if ctx.Err() != nil {
			return jobs, ctx.Err()
		}

		raw, err := j.search(ctx, query)
		if err != nil {
			log.Printf("[ERROR] jsearch %q: %v", query, err)
			continue
		}

		for _, jj := range raw {
			if len(jobs) >= j.maxJobs {
				break
			}
			job, ok := j.parse(jj)
			if !ok || seen[job.ExternalID] {
				continue
			}
			seen[job.ExternalID] = true
			jobs = append(jobs, job)
		}
	}

	return jobs, nil
}

func (j *JSearch) search(ctx context.Context, query string) ([]jsearchJob, error) {
	params := url.Values{
		"query":       {query},
		"page":        {"1"},
		"num_pages":   {"1"},
		"date_posted": {"week"},
		"country":     {"us"},
	}

	// One retry pass over transient failures (429s and 5xx).
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, j.url+"?"+params.Encode(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("x-api-key", j.apiKey)
		req.Header.Set("Accept", "application/json")

		resp, err := j.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			resp.Body.Close()
			lastErr = fmt.Errorf("jsearch: HTTP %d", resp.StatusCode)
			rateLimit(ctx, time.Second)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("jsearch: HTTP %d", resp.StatusCode)
		}

		var payload struct {
			Data []jsearchJob `json:"data"`
		}
		err = json.NewDecoder(resp.Body).Decode(&payload)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}
		return payload.Data, nil
	}

	return nil, lastErr
}

func (j *JSearch) parse(jj jsearchJob) (domain.Job, bool) {
	title := strings.TrimSpace(jj.Title)
	company := strings.TrimSpace(jj.EmployerName)
	if jj.JobID == "" || title == "" || company == "" {
		return domain.Job{}, false
	}

	var parts []string
	for _, p := range []string{jj.City, jj.State, jj.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	location := strings.Join(parts, ", ")
	switch {
	case jj.IsRemote && location == "":
		location = "Remote"
	case jj.IsRemote:
		location += " (Remote)"
	case location == "":
		location = "Unknown"
	}

	salaryMin, salaryMax := jsearchSalary(jj)

	var postedAt *time.Time
	if jj.PostedAtUnix > 0 {
		t := time.Unix(jj.PostedAtUnix, 0).UTC()
		postedAt = &t
	}

	currency := jj.SalaryCurrency
	if currency == "" {
		currency = "USD"
	}

	return domain.Job{
		ExternalID:     "jsearch_" + jj.JobID,
		Source:         domain.SourceJSearch,
		Title:          title,
		Company:        company,
		CompanyLogo:    jj.EmployerLogo,
		Location:       location,
		JobType:        jsearchJobType(jj.EmploymentType),
		Description:    jj.Description,
		SalaryMin:      salaryMin,
		SalaryMax:      salaryMax,
		SalaryCurrency: currency,
		Skills:         ExtractSkills(jj.Description+" "+title, techSkills),
		Remote:         jj.IsRemote,
		ApplyURL:       jj.ApplyLink,
		PostedAt:       postedAt,
		ScrapedAt:      time.Now().UTC(),
	}, true
}

// jsearchSalary converts hourly figures to yearly (40 hours x 52 weeks).
func jsearchSalary(jj jsearchJob) (*int, *int) {
	factor := 1.0
	if strings.EqualFold(jj.SalaryPeriod, "HOUR") {
		factor = 2080
	}

	var min, max *int
	if jj.MinSalary != nil {
		v := int(*jj.MinSalary * factor)
		min = &v
	}
	if jj.MaxSalary != nil {
		v := int(*jj.MaxSalary * factor)
		max = &v
	}
	return min, max
}

func jsearchJobType(employmentType string) domain.JobType {
	switch strings.ToUpper(employmentType) {
	case "PARTTIME":
		return domain.JobTypePartTime
	case "CONTRACTOR":
		return domain.JobTypeContract
	case "INTERN":
		return domain.JobTypeInternship
	case "TEMPORARY":
		return domain.JobTypeTemporary
	default:
		return domain.JobTypeFullTime
	}
}
