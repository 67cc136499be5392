package classifier

import (
	"regexp"
	"strconv"
	"strings"
)

// Years-of-experience patterns, most specific first. Each rule is tried in
// order; a rule that matches but yields out-of-range numbers falls through
// to the next one instead of propagating an absurd value.
type yearsRule struct {
	re    *regexp.Regexp
	build func(groups []string) (YearsRange, bool)
}

var yearsRules = []yearsRule{
	{
		re: regexp.MustCompile(`no experience (?:required|necessary|needed)|entry.?level`),
		build: func([]string) (YearsRange, bool) {
			return YearsRange{Min: 0, Max: 0}, true
		},
	},
	{
		// "3-5 years", "3 to 5+ years of experience"
		re: regexp.MustCompile(`(\d{1,2})\s*(?:to|-)\s*(\d{1,2})\s*\+?\s*years?\s*(?:of\s+)?(?:experience|exp)?`),
		build: func(groups []string) (YearsRange, bool) {
			min, max := atoi(groups[1]), atoi(groups[2])
			if !reasonableYears(min) || !reasonableYears(max) {
				return YearsRange{}, false
			}
			return YearsRange{Min: min, Max: max}, true
		},
	},
	{
		// "5+ years"
		re: regexp.MustCompile(`(\d{1,2})\+\s*years?\s*(?:of\s+)?(?:experience|exp)?`),
		build: func(groups []string) (YearsRange, bool) {
			years := atoi(groups[1])
			if !reasonableYears(years) {
				return YearsRange{}, false
			}
			return YearsRange{Min: years, Max: minInt(years+5, 25)}, true
		},
	},
	{
		// "minimum 3 years", "at least 3 years"
		re: regexp.MustCompile(`(?:minimum|at least|min\.?)\s*(\d{1,2})\s*years?\s*(?:of\s+)?(?:experience|exp)?`),
		build: func(groups []string) (YearsRange, bool) {
			years := atoi(groups[1])
			if !reasonableYears(years) {
				return YearsRange{}, false
			}
			return YearsRange{Min: years, Max: minInt(years+3, 25)}, true
		},
	},
	{
		// "4 years of experience"
		re: regexp.MustCompile(`(\d{1,2})\s*years?\s*(?:of\s+)?experience`),
		build: func(groups []string) (YearsRange, bool) {
			years := atoi(groups[1])
			if !reasonableYears(years) {
				return YearsRange{}, false
			}
			return YearsRange{Min: years, Max: years}, true
		},
	},
}

// ParseYearsRequired extracts a years-of-experience requirement from free
// text. Returns false when no pattern matches.
func ParseYearsRequired(text string) (YearsRange, bool) {
	lower := strings.ToLower(text)
	for _, rule := range yearsRules {
		groups := rule.re.FindStringSubmatch(lower)
		if groups == nil {
			continue
		}
		if r, ok := rule.build(groups); ok {
			return r, true
		}
	}
	return YearsRange{}, false
}

// YearsToLevel maps a years range to a level by the average of its bounds.
func YearsToLevel(years YearsRange) Level {
	avg := float64(years.Min+years.Max) / 2

	switch {
	case avg <= 2:
		return LevelEntry
	case avg <= 5:
		return LevelMid
	case avg <= 10:
		return LevelSenior
	default:
		return LevelExecutive
	}
}

func reasonableYears(years int) bool {
	return years >= 0 && years <= 25
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
