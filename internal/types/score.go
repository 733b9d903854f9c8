// Package types provides type definitions for structured data used throughout the ats-optimizer system.
package types

// ScoreResult is the full compatibility score breakdown for one resume against
// one job posting. Every component is on a 0-100 scale, rounded to one decimal.
// Results are value objects: created fresh on every scoring call, never cached
// or mutated.
type ScoreResult struct {
	Overall        float64 `json:"overall"`
	Keyword        float64 `json:"keyword_score"`
	Semantic       float64 `json:"semantic_score"`
	Experience     float64 `json:"experience_score"`
	SkillsCoverage float64 `json:"skills_score"`
	Formatting     float64 `json:"formatting_score"`

	MatchedKeywords  []string `json:"matched_keywords"`
	MissingRequired  []string `json:"missing_required"`
	MissingPreferred []string `json:"missing_preferred"`

	PassesThreshold bool     `json:"passes_threshold"`
	Recommendations []string `json:"recommendations"`
}
