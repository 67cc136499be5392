package classifier

import (
	"regexp"
	"strings"
)

type boundarySignal struct {
	signal string
	re     *regexp.Regexp
}

var executiveBoundaryRules = compileBoundaryRules(executiveWordBoundarySignals)

func compileBoundaryRules(signals []string) []boundarySignal {
	rules := make([]boundarySignal, len(signals))
	for i, s := range signals {
		rules[i] = boundarySignal{
			signal: s,
			re:     regexp.MustCompile(`\b` + regexp.QuoteMeta(s) + `\b`),
		}
	}
	return rules
}

// Title scan order after the blocklist and word-boundary checks. MID comes
// last: its phrases are generic ("analyst", "manager") and would swallow
// titles like "Senior Analyst" if checked earlier.
var titleScanOrder = [4]Level{LevelExecutive, LevelSenior, LevelEntry, LevelMid}

// AnalyzeTitle scans a job title for experience-level evidence. The first
// matching rule wins; there is no accumulation across categories.
func AnalyzeTitle(title string) (Level, string, bool) {
	lower := strings.ToLower(title)

	// "Senior Living Coordinator" is about elder care, not seniority.
	if isSeniorBlocklisted(lower) {
		for _, phrase := range titleSignals[LevelEntry] {
			if strings.Contains(lower, phrase) {
				return LevelEntry, phrase, true
			}
		}
		return LevelMid, "senior (care context)", true
	}

	for _, rule := range executiveBoundaryRules {
		if rule.re.MatchString(lower) {
			return LevelExecutive, rule.signal, true
		}
	}

	for _, level := range titleScanOrder {
		for _, phrase := range titleSignals[level] {
			if strings.Contains(lower, phrase) {
				return level, phrase, true
			}
		}
	}

	return "", "", false
}

func isSeniorBlocklisted(lowerTitle string) bool {
	for _, phrase := range seniorBlocklist {
		if strings.Contains(lowerTitle, phrase) {
			return true
		}
	}
	return false
}
