// Package extraction turns free-form job posting text into a categorized
// RequirementProfile using pattern banks and header-anchored zone splitting.
package extraction

import (
	"strconv"
	"strings"

	"github.com/jonathan/ats-optimizer/internal/types"
)

// Extractor builds requirement profiles from job posting text. Extraction is a
// pure function of its input: it never fails, and malformed or empty text
// degrades to an empty profile rather than an error.
type Extractor struct {
	chunker PhraseChunker
}

// NewExtractor returns an Extractor using the given phrase chunker for generic
// keyword candidates. A nil chunker falls back to the heuristic default.
func NewExtractor(chunker PhraseChunker) *Extractor {
	if chunker == nil {
		chunker = HeuristicChunker{}
	}
	return &Extractor{chunker: chunker}
}

// Extract analyzes a job posting and returns its categorized requirement
// profile.
func (e *Extractor) Extract(jobText string) *types.RequirementProfile {
	profile := &types.RequirementProfile{}
	text := strings.ToLower(jobText)
	if strings.TrimSpace(text) == "" {
		return profile
	}

	profile.TechnicalSkills = harvest(text, technicalPatterns)
	profile.SoftSkills = harvest(text, softPatterns)
	profile.Certifications = harvest(text, certificationPatterns)
	profile.IndustryKeywords = e.chunker.KeywordCandidates(text)
	profile.ExperienceYears = parseExperienceYears(text)

	classifyZones(profile, text)
	return profile
}

// parseExperienceYears returns the first explicit "<N>+ years" requirement,
// or nil when the posting states none.
func parseExperienceYears(text string) *int {
	m := experienceYearsPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	years, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &years
}

// classifyZones splits the posting into required and preferred zones and
// assigns every harvested term whose surface form appears inside a zone to
// that zone's skill list. When no required-zone header exists the whole
// technical set is treated as required: a posting without headers should not
// silently lose all of its requirements.
func classifyZones(profile *types.RequirementProfile, text string) {
	pool := make([]string, 0, len(profile.TechnicalSkills)+len(profile.SoftSkills)+len(profile.Certifications))
	pool = append(pool, profile.TechnicalSkills...)
	pool = append(pool, profile.SoftSkills...)
	pool = append(pool, profile.Certifications...)

	if m := requiredZonePattern.FindStringSubmatch(text); m != nil {
		zone := strings.ToLower(m[1])
		for _, term := range pool {
			if strings.Contains(zone, strings.ToLower(term)) {
				profile.RequiredSkills = append(profile.RequiredSkills, term)
			}
		}
	} else {
		profile.RequiredSkills = append(profile.RequiredSkills, profile.TechnicalSkills...)
	}

	if m := preferredZonePattern.FindStringSubmatch(text); m != nil {
		zone := strings.ToLower(m[1])
		for _, term := range pool {
			if strings.Contains(zone, strings.ToLower(term)) {
				profile.PreferredSkills = append(profile.PreferredSkills, term)
			}
		}
	}
}
