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

const remotiveURL = "https://remotive.com/api/remote-jobs"

type Remotive struct {
	url     string
	client  *http.Client
	maxJobs int
}

func NewRemotive(maxJobs int) *Remotive {
	return &Remotive{
		url:     remotiveURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		maxJobs: maxJobs,
	}
}

func (r *Remotive) Name() domain.Source { return domain.SourceRemotive }

type remotiveJob struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	CompanyLogo string `json:"company_logo"`
	Location    string `json:"candidate_required_location"`
	JobType     string `json:"job_type"`
	Description string `json:"description"`
	Salary      string `json:"salary"`
	URL         string `json:"url"`
	PubDate     string `json:"publication_date"`
}

func (r *Remotive) Fetch(ctx context.Context) ([]domain.Job, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remotive: HTTP %d", resp.StatusCode)
	}

	var payload struct {
		Jobs []remotiveJob `json:"jobs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	raw := payload.Jobs
	if len(raw) > r.maxJobs {
		raw = raw[:r.maxJobs]
	}

	jobs := make([]domain.Job, 0, len(raw))
	for _, rj := range raw {
		if job, ok := r.parse(rj); ok {
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

func (r *Remotive) parse(rj remotiveJob) (domain.Job, bool) {
	title := strings.TrimSpace(rj.Title)
	company := strings.TrimSpace(rj.CompanyName)
	if rj.ID == 0 || title == "" || company == "" {
		return domain.Job{}, false
	}

	location := rj.Location
	if location == "" {
		location = "Remote"
	}

	salaryMin, salaryMax := ParseSalaryString(rj.Salary)

	return domain.Job{
		ExternalID:     fmt.Sprintf("remotive_%d", rj.ID),
		Source:         domain.SourceRemotive,
		Title:          title,
		Company:        company,
		CompanyLogo:    rj.CompanyLogo,
		Location:       location,
		JobType:        remotiveJobType(rj.JobType),
		Description:    rj.Description,
		SalaryMin:      salaryMin,
		SalaryMax:      salaryMax,
		SalaryCurrency: "USD",
		Skills:         ExtractSkills(rj.Description+" "+title, techSkills),
		Remote:         true, // Remotive lists remote jobs only
		ApplyURL:       rj.URL,
		PostedAt:       parseTime(rj.PubDate),
		ScrapedAt:      time.Now().UTC(),
	}, true
}

func remotiveJobType(jobType string) domain.JobType {
	switch strings.ToLower(jobType) {
	case "part_time":
		return domain.JobTypePartTime
	case "contract":
		return domain.JobTypeContract
	case "freelance":
		return domain.JobTypeFreelance
	case "internship":
		return domain.JobTypeInternship
	default:
		return domain.JobTypeFullTime
	}
}
