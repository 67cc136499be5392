package classifier

// Classifies jobs by experience level and audience tags using weighted
// heuristic signals from title, description and salary. Pure functions,
// no state, safe for concurrent use.

import (
	"math"
	"sort"
	"strings"

	"genzjobs/internal/domain"
)

// Level is an inferred experience level. Declaration order is load-bearing:
// the scorer resolves exact score ties in favor of the earlier level.
type Level string

const (
	LevelEntry     Level = "ENTRY"
	LevelMid       Level = "MID"
	LevelSenior    Level = "SENIOR"
	LevelExecutive Level = "EXECUTIVE"
)

var levels = [4]Level{LevelEntry, LevelMid, LevelSenior, LevelExecutive}

func levelIndex(l Level) int {
	for i, lv := range levels {
		if lv == l {
			return i
		}
	}
	return 1 // unknown maps to MID
}

// AudienceTag identifies the target audience a posting is surfaced to.
type AudienceTag string

const (
	AudienceGenZ      AudienceTag = "genz"
	AudienceMidCareer AudienceTag = "mid_career"
	AudienceSenior    AudienceTag = "senior"
	AudienceExecutive AudienceTag = "executive"
)

// YearsRange is a parsed years-of-experience requirement, both bounds in [0,25].
type YearsRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Signals records why a verdict was reached. Diagnostic only.
type Signals struct {
	TitleMatch         string      `json:"title_match,omitempty"`
	YearsRequired      *YearsRange `json:"years_required,omitempty"`
	SalaryBand         string      `json:"salary_band,omitempty"`
	DescriptionSignals []string    `json:"description_signals,omitempty"`
}

// Result is a classification verdict.
type Result struct {
	Level        Level         `json:"experience_level"`
	AudienceTags []AudienceTag `json:"audience_tags"`
	Confidence   float64       `json:"confidence"`
	Signals      Signals       `json:"signals"`
}

// Signal source weights, reflecting reliability of each extractor.
const (
	weightTitle       = 10
	weightYears       = 8
	weightSalary      = 5
	weightDescription = 3
)

// ClassifyJob scores a job across all extractors and returns the verdict.
// Jobs with no signals at all default to MID with confidence 0.3.
func ClassifyJob(job domain.Job) Result {
	var signals Signals
	var scores [4]int
	totalWeight := 0
	signalCount := 0

	if level, match, ok := AnalyzeTitle(job.Title); ok {
		scores[levelIndex(level)] += weightTitle
		totalWeight += weightTitle
		signalCount++
		signals.TitleMatch = match
	}

	if years, ok := ParseYearsRequired(job.Description); ok {
		scores[levelIndex(YearsToLevel(years))] += weightYears
		totalWeight += weightYears
		signalCount++
		y := years
		signals.YearsRequired = &y
	}

	if level, ok := SalaryToLevel(job.SalaryMin, job.SalaryMax); ok {
		scores[levelIndex(level)] += weightSalary
		totalWeight += weightSalary
		signalCount++
		signals.SalaryBand, _ = SalaryBand(job.SalaryMin, job.SalaryMax)
	}

	if level, hits := AnalyzeDescription(job.Description); level != "" {
		scores[levelIndex(level)] += weightDescription
		totalWeight += weightDescription
		signalCount++
		signals.DescriptionSignals = hits
	}

	// Strictly-greater comparison: on exact ties the earlier level keeps the win.
	maxScore := 0
	winning := LevelMid
	for i, level := range levels {
		if scores[i] > maxScore {
			maxScore = scores[i]
			winning = level
		}
	}

	confidence := 0.3
	if totalWeight > 0 {
		confidence = float64(maxScore) / float64(totalWeight)
		if signalCount == 1 {
			confidence *= 0.9
		}
	}

	tags := audienceTagsFor(winning)
	if confidence < 0.5 && totalWeight > 0 {
		tags = dualTag(tags, scores)
	}

	return Result{
		Level:        winning,
		AudienceTags: tags,
		Confidence:   round2(confidence),
		Signals:      signals,
	}
}

// ClassifyJobWithCompany wraps ClassifyJob with retail/service employer
// context: a "manager" title at a fast-food chain is colloquially
// entry-level unless the salary says otherwise.
func ClassifyJobWithCompany(job domain.Job) Result {
	result := ClassifyJob(job)

	if job.Company == "" || !isRetailServiceCompany(job.Company) {
		return result
	}

	lowerTitle := strings.ToLower(job.Title)
	if !strings.Contains(lowerTitle, "manager") || strings.Contains(lowerTitle, "general manager") {
		return result
	}

	if level, ok := SalaryToLevel(job.SalaryMin, job.SalaryMax); ok && level != LevelEntry {
		return result
	}

	result.Level = LevelEntry
	result.AudienceTags = []AudienceTag{AudienceGenZ}
	if result.Confidence < 0.7 {
		result.Confidence = 0.7
	}
	result.Signals.DescriptionSignals = append(result.Signals.DescriptionSignals,
		"retail/service manager context")

	return result
}

func audienceTagsFor(level Level) []AudienceTag {
	switch level {
	case LevelEntry:
		return []AudienceTag{AudienceGenZ}
	case LevelSenior:
		return []AudienceTag{AudienceSenior}
	case LevelExecutive:
		return []AudienceTag{AudienceExecutive}
	default:
		return []AudienceTag{AudienceMidCareer}
	}
}

// dualTag unions in the runner-up level's tag when the top two scores are
// within 3 points of each other.
func dualTag(tags []AudienceTag, scores [4]int) []AudienceTag {
	type levelScore struct {
		level Level
		score int
	}
	var nonzero []levelScore
	for i, level := range levels {
		if scores[i] > 0 {
			nonzero = append(nonzero, levelScore{level, scores[i]})
		}
	}
	if len(nonzero) < 2 {
		return tags
	}

	sort.SliceStable(nonzero, func(i, j int) bool {
		return nonzero[i].score > nonzero[j].score
	})

	if nonzero[0].score-nonzero[1].score > 3 {
		return tags
	}

	for _, t := range audienceTagsFor(nonzero[1].level) {
		if !containsTag(tags, t) {
			tags = append(tags, t)
		}
	}
	return tags
}

func containsTag(tags []AudienceTag, tag AudienceTag) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func isRetailServiceCompany(company string) bool {
	lower := strings.ToLower(company)
	for _, name := range retailServiceCompanies {
		if strings.Contains(lower, name) {
			return true
		}
	}
	return false
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
