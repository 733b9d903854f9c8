package scoring

import (
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/ats-optimizer/internal/types"
)

// keywordMatchScore tests every required and preferred keyword for
// case-insensitive substring presence in the resume's full text. Required hits
// count double. With no keywords at all the score is a neutral 50: absence of
// requirements is not evidence of fit or misfit.
func keywordMatchScore(profile *types.RequirementProfile, fullTextLower string) (score float64, matched, missingRequired, missingPreferred []string) {
	requiredMatched := 0
	for _, kw := range profile.RequiredSkills {
		if strings.Contains(fullTextLower, strings.ToLower(kw)) {
			matched = append(matched, kw)
			requiredMatched++
		} else {
			missingRequired = append(missingRequired, kw)
		}
	}

	preferredMatched := 0
	for _, kw := range profile.PreferredSkills {
		if strings.Contains(fullTextLower, strings.ToLower(kw)) {
			matched = append(matched, kw)
			preferredMatched++
		} else {
			missingPreferred = append(missingPreferred, kw)
		}
	}

	requiredTotal := len(profile.RequiredSkills)
	preferredTotal := len(profile.PreferredSkills)
	if requiredTotal+preferredTotal == 0 {
		return 50.0, matched, missingRequired, missingPreferred
	}

	score = float64(requiredMatched*2+preferredMatched) / float64(requiredTotal*2+preferredTotal) * 100
	return score, matched, missingRequired, missingPreferred
}

// experienceMatchScore maps total work-history years against the posting's
// explicit requirement. No stated requirement scores a neutral-positive 70.
// Entries with unparseable dates are skipped rather than counted as zero, so
// malformed-but-present data is not penalized twice.
func experienceMatchScore(profile *types.RequirementProfile, work []types.Work) float64 {
	if profile.ExperienceYears == nil || *profile.ExperienceYears <= 0 {
		return 70.0
	}
	required := float64(*profile.ExperienceYears)

	currentYear := time.Now().Year()
	totalYears := 0
	for _, w := range work {
		start, ok := parseYear(w.StartDate)
		if !ok {
			continue
		}
		end := currentYear
		if w.EndDate != "" && !strings.EqualFold(w.EndDate, "present") {
			end, ok = parseYear(w.EndDate)
			if !ok {
				continue
			}
		}
		if span := end - start; span > 0 {
			totalYears += span
		}
	}

	total := float64(totalYears)
	switch {
	case total >= required:
		return 100.0
	case total >= required*0.7:
		return 80.0
	case total >= required*0.5:
		return 60.0
	default:
		return 40.0
	}
}

// parseYear reads the leading YYYY of an ISO-ish date string.
func parseYear(date string) (int, bool) {
	if len(date) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0, false
	}
	return year, true
}

// skillsCoverageScore intersects the declared skill names and keywords with
// the profile's technical skills. An empty technical set scores 70, consistent
// with the neutral-default policy elsewhere.
func skillsCoverageScore(profile *types.RequirementProfile, skills []types.SkillGroup) float64 {
	if len(profile.TechnicalSkills) == 0 {
		return 70.0
	}

	declared := make(map[string]bool)
	for _, group := range skills {
		declared[strings.ToLower(group.Name)] = true
		for _, kw := range group.Keywords {
			declared[strings.ToLower(kw)] = true
		}
	}

	technical := make(map[string]bool)
	for _, t := range profile.TechnicalSkills {
		technical[strings.ToLower(t)] = true
	}

	covered := 0
	for t := range technical {
		if declared[t] {
			covered++
		}
	}
	return float64(covered) / float64(len(technical)) * 100
}

// formattingScore is purely structural: fixed deductions for missing contact
// and section basics, floored at zero. It never reads the posting text.
func formattingScore(resume *types.Resume) (float64, []string) {
	score := 100.0
	var issues []string

	if resume.Basics.Email == "" {
		score -= 20
		issues = append(issues, "Missing email")
	}
	if resume.Basics.Phone == "" {
		score -= 10
		issues = append(issues, "Missing phone")
	}
	if resume.Basics.Summary == "" {
		score -= 15
		issues = append(issues, "Missing summary")
	}
	if len(resume.Work) == 0 {
		score -= 30
		issues = append(issues, "No work experience")
	}
	if len(resume.Skills) == 0 {
		score -= 15
		issues = append(issues, "No skills section")
	}

	if score < 0 {
		score = 0
	}
	return score, issues
}
