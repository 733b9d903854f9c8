package extraction

import "regexp"

// Pattern banks for category harvesting. Matching always runs against
// lower-cased posting text, so alternatives are spelled lower-case.
var (
	technicalPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(python|javascript|typescript|java|c\+\+|c#|go|rust|ruby|php|swift|kotlin)\b`),
		regexp.MustCompile(`\b(react|angular|vue|node\.?js|django|flask|spring|rails)\b`),
		regexp.MustCompile(`\b(aws|azure|gcp|kubernetes|docker|terraform|jenkins|ci/cd)\b`),
		regexp.MustCompile(`\b(sql|postgresql|mysql|mongodb|redis|elasticsearch)\b`),
		regexp.MustCompile(`\b(git|github|gitlab|jira|confluence|agile|scrum)\b`),
		regexp.MustCompile(`\b(machine\s+learning|ml|ai|data\s+science|nlp|deep\s+learning)\b`),
	}

	softPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(leadership|communication|teamwork|collaboration|problem.?solving)\b`),
		regexp.MustCompile(`\b(analytical|critical\s+thinking|attention\s+to\s+detail)\b`),
		regexp.MustCompile(`\b(self.?motivated|proactive|adaptable|flexible)\b`),
	}

	certificationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(pmp|aws\s+certified|azure\s+certified|gcp\s+certified|cpa|cfa)\b`),
		regexp.MustCompile(`\b(scrum\s+master|csm|safe|itil|cissp|comptia)\b`),
	}

	// First "<N>+ years" style mention wins.
	experienceYearsPattern = regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)`)

	// Zone anchors. The required zone runs from a requirements-style header up
	// to a preferred-style header (or end of text); the preferred zone runs
	// from a preferred-style header to end of text.
	requiredZonePattern  = regexp.MustCompile(`(?is)(?:required|must\s+have|requirements?)[\s:]+(.+?)(?:preferred|nice\s+to\s+have|bonus|$)`)
	preferredZonePattern = regexp.MustCompile(`(?is)(?:preferred|nice\s+to\s+have|bonus|desired)[\s:]+(.+)$`)
)

// harvest applies a pattern bank to text and returns first-group matches in
// document order, deduplicated case-insensitively within the bank.
func harvest(text string, bank []*regexp.Regexp) []string {
	var out []string
	seen := make(map[string]bool)
	for _, re := range bank {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			term := m[1]
			if term == "" || seen[term] {
				continue
			}
			seen[term] = true
			out = append(out, term)
		}
	}
	return out
}
