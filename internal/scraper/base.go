package scraper

import (
	"context"
	"regexp"
	"strings"
	"time"

	"genzjobs/internal/domain"
)

// Skills scanned for in job text, by broad category.
var techSkills = []string{
	"python", "javascript", "typescript", "react", "node.js", "java",
	"sql", "aws", "docker", "git", "html", "css", "vue", "angular",
	"go", "rust", "swift", "kotlin", "flutter", "django", "fastapi",
	"mongodb", "postgresql", "redis", "kubernetes", "terraform",
}

var tradesSkills = []string{
	"electrical", "plumbing", "hvac", "welding", "carpentry", "construction",
	"masonry", "pipefitting", "sheet metal", "machining", "cnc", "automotive",
	"diesel", "electrician", "mechanical", "blueprint", "safety", "osha",
	"maintenance", "repair", "installation", "wiring", "soldering", "fabrication",
}

// ExtractSkills returns the subset of skills mentioned in text, in skill-list
// order, without duplicates.
func ExtractSkills(text string, skills []string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	var found []string
	for _, skill := range skills {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	return found
}

var salaryNumberRe = regexp.MustCompile(`(\d+)([kK])?`)

// ParseSalaryString pulls min/max USD values out of a free-form salary
// string like "$70k - $90k" or "85000". Returns nils when nothing numeric
// is found.
func ParseSalaryString(s string) (*int, *int) {
	if s == "" {
		return nil, nil
	}

	matches := salaryNumberRe.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil, nil
	}

	var values []int
	for _, m := range matches {
		v := atoi(m[1])
		if m[2] != "" {
			v *= 1000
		}
		values = append(values, v)
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return &min, &max
}

// DetectJobType infers the employment type from free text, defaulting to
// full-time.
func DetectJobType(text string) domain.JobType {
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "intern"):
		return domain.JobTypeInternship
	case strings.Contains(lower, "contract"):
		return domain.JobTypeContract
	case strings.Contains(lower, "part-time") || strings.Contains(lower, "part time"):
		return domain.JobTypePartTime
	case strings.Contains(lower, "freelance"):
		return domain.JobTypeFreelance
	case strings.Contains(lower, "temporary") || strings.Contains(lower, "temp "):
		return domain.JobTypeTemporary
	default:
		return domain.JobTypeFullTime
	}
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return n
		}
		n = n*10 + int(r-'0')
	}
	return n
}

// rateLimit sleeps for the configured per-request delay, or until the
// context is cancelled.
func rateLimit(ctx context.Context, delay time.Duration) {
	if delay <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(delay):
	}
}

func parseTime(value string) *time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}
