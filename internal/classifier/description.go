package classifier

import "strings"

var descriptionScanOrder = [4]Level{LevelExecutive, LevelSenior, LevelEntry, LevelMid}

// AnalyzeDescription scans free text for experience-level phrases. Unlike
// the title extractor it collects every hit within the winning category,
// but only descends to a lower-priority category when the higher one
// produced zero hits. Returns the empty level when nothing matches.
func AnalyzeDescription(description string) (Level, []string) {
	lower := strings.ToLower(description)

	for _, level := range descriptionScanOrder {
		var hits []string
		for _, phrase := range descriptionSignals[level] {
			if strings.Contains(lower, phrase) {
				hits = append(hits, phrase)
			}
		}
		if len(hits) > 0 {
			return level, hits
		}
	}

	return "", nil
}
