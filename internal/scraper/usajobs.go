package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"genzjobs/internal/domain"
)

const usajobsURL = "https://data.usajobs.gov/api/search"

var usajobsQueries = []url.Values{
	{"Keyword": {"software developer"}, "JobGradeCode": {"5/7/9"}},
	{"Keyword": {"data analyst"}, "JobGradeCode": {"5/7/9"}},
	{"Keyword": {"IT specialist"}, "JobGradeCode": {"5/7/9"}},
	{"Keyword": {"computer scientist"}, "JobGradeCode": {"5/7/9"}},
	{"Keyword": {"recent graduate"}, "HiringPath": {"student"}},
}

type USAJobs struct {
	url     string
	apiKey  string
	email   string
	client  *http.Client
	maxJobs int
	delay   time.Duration
}

func NewUSAJobs(apiKey, email string, maxJobs int, delay time.Duration) *USAJobs {
	return &USAJobs{
		url:     usajobsURL,
		apiKey:  apiKey,
		email:   email,
		client:  &http.Client{Timeout: 30 * time.Second},
		maxJobs: maxJobs,
		delay:   delay,
	}
}

func (u *USAJobs) Name() domain.Source { return domain.SourceUSAJobs }

type usajobsDescriptor struct {
	PositionID           string `json:"PositionID"`
	PositionTitle        string `json:"PositionTitle"`
	OrganizationName     string `json:"OrganizationName"`
	DepartmentName       string `json:"DepartmentName"`
	PositionURI          string `json:"PositionURI"`
	QualificationSummary string `json:"QualificationSummary"`
	PublicationStartDate string `json:"PublicationStartDate"`
	PositionLocation     []struct {
		CityName               string `json:"CityName"`
		CountrySubDivisionCode string `json:"CountrySubDivisionCode"`
	} `json:"PositionLocation"`
	PositionSchedule []struct {
		Name string `json:"Name"`
	} `json:"PositionSchedule"`
	PositionRemuneration []struct {
		MinimumRange string `json:"MinimumRange"`
		MaximumRange string `json:"MaximumRange"`
	} `json:"PositionRemuneration"`
	UserArea struct {
		Details struct {
			JobSummary       string `json:"JobSummary"`
			TeleworkEligible string `json:"TeleworkEligible"`
		} `json:"Details"`
	} `json:"UserArea"`
}

func (u *USAJobs) Fetch(ctx context.Context) ([]domain.Job, error) {
	if u.apiKey == "" || u.email == "" {
		log.Printf("[SKIP] usajobs: API key or email not configured")
		return nil, nil
	}

	var jobs []domain.Job
	seen := make(map[string]bool)

	for _, query := range usajobsQueries {
		if len(jobs) >= u.maxJobs {
			break
		}
		rateLimit(ctx, u.delay)
		if ctx.Err() != nil {
			return jobs, ctx.Err()
		}

		params := url.Values{
			"ResultsPerPage": {"25"},
			"DatePosted":     {"7"},
		}
		for k, v := range query {
			params[k] = v
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.url+"?"+params.Encode(), nil)
		if err != nil {
			return jobs, err
		}
		req.Header.Set("Authorization-Key", u.apiKey)
		req.Header.Set("User-Agent", u.email)

		resp, err := u.client.Do(req)
		if err != nil {
			log.Printf("[ERROR] usajobs: %v", err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			log.Printf("[WARN] usajobs: rate limited")
			break
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			log.Printf("[ERROR] usajobs: HTTP %d", resp.StatusCode)
			continue
		}

		var payload struct {
			SearchResult struct {
				SearchResultItems []struct {
					MatchedObjectDescriptor usajobsDescriptor `json:"MatchedObjectDescriptor"`
				} `json:"SearchResultItems"`
			} `json:"SearchResult"`
		}
		err = json.NewDecoder(resp.Body).Decode(&payload)
		resp.Body.Close()
		if err != nil {
			log.Printf("[ERROR] usajobs: decode: %v", err)
			continue
		}

		for _, item := range payload.SearchResult.SearchResultItems {
			if len(jobs) >= u.maxJobs {
				break
			}
			job, ok := u.parse(item.MatchedObjectDescriptor)
			if !ok || seen[job.ExternalID] {
				continue
			}
			seen[job.ExternalID] = true
			jobs = append(jobs, job)
		}
	}

	return jobs, nil
}

func (u *USAJobs) parse(d usajobsDescriptor) (domain.Job, bool) {
	title := strings.TrimSpace(d.PositionTitle)
	if d.PositionID == "" || title == "" {
		return domain.Job{}, false
	}

	company := strings.TrimSpace(d.OrganizationName)
	if company == "" {
		company = strings.TrimSpace(d.DepartmentName)
	}
	if company == "" {
		company = "U.S. Government"
	}

	description := d.UserArea.Details.JobSummary
	if d.QualificationSummary != "" {
		description = fmt.Sprintf("%s\n\nQualifications:\n%s", description, d.QualificationSummary)
	}

	location := "Washington, DC"
	if len(d.PositionLocation) > 0 {
		loc := d.PositionLocation[0]
		switch {
		case loc.CityName != "" && loc.CountrySubDivisionCode != "":
			location = loc.CityName + ", " + loc.CountrySubDivisionCode
		case loc.CityName != "":
			location = loc.CityName
		case loc.CountrySubDivisionCode != "":
			location = loc.CountrySubDivisionCode
		}
	}

	jobType := domain.JobTypeFullTime
	if len(d.PositionSchedule) > 0 {
		name := strings.ToLower(d.PositionSchedule[0].Name)
		if strings.Contains(name, "part") {
			jobType = domain.JobTypePartTime
		} else if strings.Contains(name, "intern") {
			jobType = domain.JobTypeInternship
		}
	}

	var salaryMin, salaryMax *int
	if len(d.PositionRemuneration) > 0 {
		salaryMin = parseDollars(d.PositionRemuneration[0].MinimumRange)
		salaryMax = parseDollars(d.PositionRemuneration[0].MaximumRange)
	}

	return domain.Job{
		ExternalID:     "usajobs_" + d.PositionID,
		Source:         domain.SourceUSAJobs,
		Title:          title,
		Company:        company,
		Location:       location,
		JobType:        jobType,
		Description:    description,
		SalaryMin:      salaryMin,
		SalaryMax:      salaryMax,
		SalaryCurrency: "USD",
		Skills:         ExtractSkills(description+" "+title, techSkills),
		Remote:         strings.EqualFold(d.UserArea.Details.TeleworkEligible, "yes"),
		ApplyURL:       d.PositionURI,
		PostedAt:       parseTime(d.PublicationStartDate),
		ScrapedAt:      time.Now().UTC(),
	}, true
}

func parseDollars(s string) *int {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f <= 0 {
		return nil
	}
	v := int(f)
	return &v
}
