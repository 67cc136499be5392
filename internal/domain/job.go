package domain

import "time"

// Job is a normalized posting from any source, plus the classification
// verdict once the consumer has processed it.
type Job struct {
	ID             string     `json:"id"`
	ExternalID     string     `json:"external_id"`
	Source         Source     `json:"source"`
	Title          string     `json:"title"`
	Company        string     `json:"company"`
	CompanyLogo    string     `json:"company_logo,omitempty"`
	Location       string     `json:"location,omitempty"`
	JobType        JobType    `json:"job_type,omitempty"`
	Description    string     `json:"description"`
	SalaryMin      *int       `json:"salary_min,omitempty"`
	SalaryMax      *int       `json:"salary_max,omitempty"`
	SalaryCurrency string     `json:"salary_currency,omitempty"`
	Skills         []string   `json:"skills,omitempty"`
	Remote         bool       `json:"remote"`
	ApplyURL       string     `json:"apply_url"`
	PostedAt       *time.Time `json:"posted_at,omitempty"`
	ScrapedAt      time.Time  `json:"scraped_at"`

	ExperienceLevel string   `json:"experience_level,omitempty"`
	AudienceTags    []string `json:"audience_tags,omitempty"`
	Confidence      float64  `json:"confidence,omitempty"`
}

type Source string

const (
	SourceRemotive       Source = "remotive"
	SourceArbeitnow      Source = "arbeitnow"
	SourceJSearch        Source = "jsearch"
	SourceUSAJobs        Source = "usajobs"
	SourceApprenticeship Source = "apprenticeship"
	SourceWWR            Source = "weworkremotely"
)

type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"
	JobTypeFreelance  JobType = "Freelance"
	JobTypeTemporary  JobType = "Temporary"
)

// ScrapeResult summarizes one run of one source.
type ScrapeResult struct {
	Source    Source        `json:"source"`
	JobsFound int           `json:"jobs_found"`
	JobsAdded int           `json:"jobs_added"`
	Errors    []string      `json:"errors,omitempty"`
	Duration  time.Duration `json:"duration"`
}
