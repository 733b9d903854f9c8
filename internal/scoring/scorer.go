// Package scoring computes weighted multi-factor compatibility scores between
// a resume and a job posting's requirement profile.
package scoring

import (
	"context"
	"math"
	"strings"

	"github.com/jonathan/ats-optimizer/internal/extraction"
	"github.com/jonathan/ats-optimizer/internal/semantic"
	"github.com/jonathan/ats-optimizer/internal/types"
)

// Component weights. Modeled on the blends commercial applicant tracking
// systems (Workday, Taleo, iCIMS) are known to use.
const (
	keywordWeight    = 0.40
	semanticWeight   = 0.20
	experienceWeight = 0.20
	skillsWeight     = 0.15
	formattingWeight = 0.05

	// PassThreshold is the overall score at or above which a resume is
	// considered likely to clear automated screening.
	PassThreshold = 75.0
)

// Scorer scores resumes against job postings. Scoring is pure: it reads the
// resume and posting, produces a fresh ScoreResult every call, and mutates
// nothing. The only failure mode is the similarity capability being
// unreachable.
type Scorer struct {
	extractor  *extraction.Extractor
	similarity semantic.SimilarityModel
}

// NewScorer builds a Scorer around a requirement extractor and a similarity
// capability.
func NewScorer(extractor *extraction.Extractor, similarity semantic.SimilarityModel) *Scorer {
	return &Scorer{extractor: extractor, similarity: similarity}
}

// Score extracts the posting's requirement profile and scores the resume
// against it.
func (s *Scorer) Score(ctx context.Context, resume *types.Resume, jobText string) (*types.ScoreResult, error) {
	profile := s.extractor.Extract(jobText)
	return s.ScoreWithProfile(ctx, resume, profile, jobText)
}

// ScoreWithProfile scores the resume against an already-extracted profile.
// Callers holding a profile (session start does) avoid re-extraction.
func (s *Scorer) ScoreWithProfile(ctx context.Context, resume *types.Resume, profile *types.RequirementProfile, jobText string) (*types.ScoreResult, error) {
	fullText := strings.ToLower(resume.FullText())

	keywordScore, matched, missingRequired, missingPreferred := keywordMatchScore(profile, fullText)

	sim, err := s.similarity.Similarity(ctx, resume.FullText(), jobText)
	if err != nil {
		return nil, err
	}
	semanticScore := sim * 100

	experienceScore := experienceMatchScore(profile, resume.Work)
	skillsScore := skillsCoverageScore(profile, resume.Skills)
	formattingScore, issues := formattingScore(resume)

	result := &types.ScoreResult{
		Keyword:          round1(keywordScore),
		Semantic:         round1(semanticScore),
		Experience:       round1(experienceScore),
		SkillsCoverage:   round1(skillsScore),
		Formatting:       round1(formattingScore),
		MatchedKeywords:  matched,
		MissingRequired:  missingRequired,
		MissingPreferred: missingPreferred,
	}

	result.Overall = round1(
		result.Keyword*keywordWeight +
			result.Semantic*semanticWeight +
			result.Experience*experienceWeight +
			result.SkillsCoverage*skillsWeight +
			result.Formatting*formattingWeight)
	result.PassesThreshold = result.Overall >= PassThreshold
	result.Recommendations = buildRecommendations(result, issues)

	return result, nil
}

// buildRecommendations derives human-readable guidance from the gaps, in a
// fixed order so identical inputs always yield identical output. It only
// describes the score; it never feeds back into it.
func buildRecommendations(result *types.ScoreResult, formattingIssues []string) []string {
	var recs []string
	if len(result.MissingRequired) > 0 {
		recs = append(recs, "Add missing required keywords: "+strings.Join(topN(result.MissingRequired, 5), ", "))
	}
	if len(result.MissingPreferred) > 0 {
		recs = append(recs, "Consider adding: "+strings.Join(topN(result.MissingPreferred, 5), ", "))
	}
	if result.Experience < 80 {
		recs = append(recs, "Highlight relevant experience more prominently")
	}
	if result.SkillsCoverage < 70 {
		recs = append(recs, "Expand skills section with more relevant technologies")
	}
	if len(formattingIssues) > 0 {
		recs = append(recs, "Fix formatting issues: "+strings.Join(formattingIssues, ", "))
	}
	return recs
}

func topN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
