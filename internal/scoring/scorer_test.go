package scoring

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-optimizer/internal/extraction"
	"github.com/jonathan/ats-optimizer/internal/semantic"
	"github.com/jonathan/ats-optimizer/internal/types"
)

// stubSimilarity returns a fixed similarity (or error) so component math can
// be asserted without a live embedding backend.
type stubSimilarity struct {
	value float64
	err   error
}

func (s stubSimilarity) Similarity(context.Context, string, string) (float64, error) {
	return s.value, s.err
}

func newTestScorer(sim semantic.SimilarityModel) *Scorer {
	return NewScorer(extraction.NewExtractor(nil), sim)
}

// passingResume covers both required keywords, declares both in its skills
// section, and has complete formatting. Against passingJobText it scores
// keyword=100, experience=70 (no stated requirement), skills=100,
// formatting=100, leaving semantic as the only moving part.
func passingResume() *types.Resume {
	return &types.Resume{
		Basics: types.Basics{
			Name:    "Dana Smith",
			Email:   "dana@example.com",
			Phone:   "555-0100",
			Summary: "Backend engineer building services with Python and Docker.",
		},
		Work: []types.Work{{
			Name:       "Acme",
			Position:   "Engineer",
			StartDate:  "2018-01",
			EndDate:    "2024-01",
			Highlights: []string{"Shipped Python services packaged with Docker"},
		}},
		Skills: []types.SkillGroup{{Name: "Languages", Keywords: []string{"Python", "Docker"}}},
	}
}

const passingJobText = "Requirements: python and docker."

func TestScore_WeightInvariant(t *testing.T) {
	scorer := newTestScorer(stubSimilarity{value: 0.63})

	result, err := scorer.Score(context.Background(), passingResume(),
		"Requirements: python and docker.\nPreferred: kubernetes. 5+ years experience.")
	require.NoError(t, err)

	expected := round1(result.Keyword*keywordWeight +
		result.Semantic*semanticWeight +
		result.Experience*experienceWeight +
		result.SkillsCoverage*skillsWeight +
		result.Formatting*formattingWeight)
	assert.Equal(t, expected, result.Overall)
}

func TestScore_Deterministic(t *testing.T) {
	scorer := newTestScorer(stubSimilarity{value: 0.5})
	resume := passingResume()

	first, err := scorer.Score(context.Background(), resume, passingJobText)
	require.NoError(t, err)
	second, err := scorer.Score(context.Background(), resume, passingJobText)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScore_ThresholdBoundary(t *testing.T) {
	// Fixture base is 74.0 before the semantic term, so the pass decision
	// hinges entirely on the stubbed similarity.
	tests := []struct {
		name    string
		sim     float64
		overall float64
		passes  bool
	}{
		{"just below", 0.045, 74.9, false},
		{"exactly at", 0.05, 75.0, true},
		{"just above", 0.055, 75.1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer := newTestScorer(stubSimilarity{value: tt.sim})

			result, err := scorer.Score(context.Background(), passingResume(), passingJobText)
			require.NoError(t, err)

			assert.Equal(t, tt.overall, result.Overall)
			assert.Equal(t, tt.passes, result.PassesThreshold)
		})
	}
}

func TestScore_NeutralKeywordDefault(t *testing.T) {
	scorer := newTestScorer(stubSimilarity{value: 0.5})

	// No recognizable keywords in the posting at all.
	result, err := scorer.Score(context.Background(), passingResume(), "Join our friendly company in a sunny office.")
	require.NoError(t, err)

	assert.Equal(t, 50.0, result.Keyword)
	assert.Empty(t, result.MissingRequired)
	assert.Empty(t, result.MissingPreferred)
}

func TestScore_MissingKeywordsLowerTheScore(t *testing.T) {
	scorer := newTestScorer(stubSimilarity{value: 0.5})

	complete, err := scorer.Score(context.Background(), passingResume(), passingJobText)
	require.NoError(t, err)

	partial := passingResume()
	partial.Basics.Summary = "Backend engineer building services with Python."
	partial.Work[0].Highlights = []string{"Shipped Python services"}
	partial.Skills = []types.SkillGroup{{Name: "Languages", Keywords: []string{"Python"}}}

	incomplete, err := scorer.Score(context.Background(), partial, passingJobText)
	require.NoError(t, err)

	assert.Less(t, incomplete.Keyword, complete.Keyword)
	assert.Less(t, incomplete.Overall, complete.Overall)
	assert.Contains(t, incomplete.MissingRequired, "docker")
}

func TestScore_SimilarityFailurePropagates(t *testing.T) {
	cause := errors.New("backend offline")
	scorer := newTestScorer(stubSimilarity{err: &semantic.DependencyError{Message: "failed to embed text", Cause: cause}})

	result, err := scorer.Score(context.Background(), passingResume(), passingJobText)

	assert.Nil(t, result)
	var depErr *semantic.DependencyError
	require.ErrorAs(t, err, &depErr)
	assert.ErrorIs(t, err, cause)
}

func TestExperienceMatchScore_NoStatedRequirement(t *testing.T) {
	profile := &types.RequirementProfile{}

	assert.Equal(t, 70.0, experienceMatchScore(profile, nil))

	zero := 0
	profile.ExperienceYears = &zero
	assert.Equal(t, 70.0, experienceMatchScore(profile, nil))
}

func TestExperienceMatchScore_Thresholds(t *testing.T) {
	ten := 10
	profile := &types.RequirementProfile{ExperienceYears: &ten}

	tests := []struct {
		name  string
		years int
		score float64
	}{
		{"meets requirement", 10, 100.0},
		{"seventy percent", 7, 80.0},
		{"fifty percent", 5, 60.0},
		{"well short", 2, 40.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Fixed start/end so the score does not depend on the clock.
			work := []types.Work{{
				Name:      "Acme",
				Position:  "Engineer",
				StartDate: "2010-06",
				EndDate:   fmt.Sprintf("%d-06", 2010+tt.years),
			}}

			assert.Equal(t, tt.score, experienceMatchScore(profile, work))
		})
	}
}

func TestExperienceMatchScore_UnparseableDatesSkipped(t *testing.T) {
	five := 5
	profile := &types.RequirementProfile{ExperienceYears: &five}

	work := []types.Work{
		{Name: "Acme", Position: "Engineer", StartDate: "n/a", EndDate: "2020"},
		{Name: "Beta", Position: "Engineer", StartDate: "2019", EndDate: "??"},
	}

	// Both entries are skipped, so total experience is zero.
	assert.Equal(t, 40.0, experienceMatchScore(profile, work))
}

func TestSkillsCoverageScore(t *testing.T) {
	profile := &types.RequirementProfile{TechnicalSkills: []string{"python", "docker"}}

	full := []types.SkillGroup{{Name: "Tools", Keywords: []string{"Python", "Docker"}}}
	assert.Equal(t, 100.0, skillsCoverageScore(profile, full))

	half := []types.SkillGroup{{Name: "Tools", Keywords: []string{"Python"}}}
	assert.Equal(t, 50.0, skillsCoverageScore(profile, half))

	empty := &types.RequirementProfile{}
	assert.Equal(t, 70.0, skillsCoverageScore(empty, full))
}

func TestFormattingScore_Penalties(t *testing.T) {
	complete := passingResume()
	score, issues := formattingScore(complete)
	assert.Equal(t, 100.0, score)
	assert.Empty(t, issues)

	bare := &types.Resume{Basics: types.Basics{Name: "Dana Smith"}}
	score, issues = formattingScore(bare)
	assert.Equal(t, 10.0, score)
	assert.Equal(t, []string{
		"Missing email",
		"Missing phone",
		"Missing summary",
		"No work experience",
		"No skills section",
	}, issues)
}

func TestBuildRecommendations_FixedOrder(t *testing.T) {
	result := &types.ScoreResult{
		MissingRequired:  []string{"go", "python", "docker", "kafka", "redis", "aws"},
		MissingPreferred: []string{"terraform"},
		Experience:       60,
		SkillsCoverage:   50,
	}

	recs := buildRecommendations(result, []string{"Missing email"})

	require.Len(t, recs, 5)
	assert.Equal(t, "Add missing required keywords: go, python, docker, kafka, redis", recs[0])
	assert.Equal(t, "Consider adding: terraform", recs[1])
	assert.Equal(t, "Highlight relevant experience more prominently", recs[2])
	assert.Equal(t, "Expand skills section with more relevant technologies", recs[3])
	assert.Equal(t, "Fix formatting issues: Missing email", recs[4])
}

func TestBuildRecommendations_CleanResult(t *testing.T) {
	result := &types.ScoreResult{Experience: 100, SkillsCoverage: 100}

	assert.Empty(t, buildRecommendations(result, nil))
}
