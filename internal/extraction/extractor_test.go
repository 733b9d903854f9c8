package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_EmptyInput(t *testing.T) {
	extractor := NewExtractor(nil)

	profile := extractor.Extract("")

	assert.Empty(t, profile.RequiredSkills)
	assert.Empty(t, profile.PreferredSkills)
	assert.Empty(t, profile.TechnicalSkills)
	assert.Empty(t, profile.SoftSkills)
	assert.Empty(t, profile.Certifications)
	assert.Empty(t, profile.IndustryKeywords)
	assert.Nil(t, profile.ExperienceYears)
}

func TestExtract_WhitespaceOnlyInput(t *testing.T) {
	extractor := NewExtractor(nil)

	profile := extractor.Extract("   \n\t  ")

	assert.True(t, profile.IsEmpty())
}

func TestExtract_TechnicalSkills(t *testing.T) {
	extractor := NewExtractor(nil)

	profile := extractor.Extract(
		"We build services in Python and TypeScript on AWS with Kubernetes, " +
			"backed by PostgreSQL and Redis. Experience with machine learning is a plus.")

	assert.Contains(t, profile.TechnicalSkills, "python")
	assert.Contains(t, profile.TechnicalSkills, "typescript")
	assert.Contains(t, profile.TechnicalSkills, "aws")
	assert.Contains(t, profile.TechnicalSkills, "kubernetes")
	assert.Contains(t, profile.TechnicalSkills, "postgresql")
	assert.Contains(t, profile.TechnicalSkills, "redis")
	assert.Contains(t, profile.TechnicalSkills, "machine learning")
}

func TestExtract_TechnicalSkillsDeduplicated(t *testing.T) {
	extractor := NewExtractor(nil)

	profile := extractor.Extract("Python, python, PYTHON everywhere. We love Python.")

	count := 0
	for _, skill := range profile.TechnicalSkills {
		if skill == "python" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtract_SoftSkillsAndCertifications(t *testing.T) {
	extractor := NewExtractor(nil)

	profile := extractor.Extract(
		"Strong leadership and communication skills required. " +
			"PMP or AWS Certified candidates preferred. Analytical mindset a must.")

	assert.Contains(t, profile.SoftSkills, "leadership")
	assert.Contains(t, profile.SoftSkills, "communication")
	assert.Contains(t, profile.SoftSkills, "analytical")
	assert.Contains(t, profile.Certifications, "pmp")
	assert.Contains(t, profile.Certifications, "aws certified")
}

func TestExtract_ExperienceYears(t *testing.T) {
	extractor := NewExtractor(nil)

	profile := extractor.Extract("Looking for someone with 5+ years of backend experience.")

	require.NotNil(t, profile.ExperienceYears)
	assert.Equal(t, 5, *profile.ExperienceYears)
}

func TestExtract_ExperienceYearsFirstMatchWins(t *testing.T) {
	extractor := NewExtractor(nil)

	profile := extractor.Extract("3 years with Go required, 10 years total engineering experience ideal.")

	require.NotNil(t, profile.ExperienceYears)
	assert.Equal(t, 3, *profile.ExperienceYears)
}

func TestExtract_ExperienceYearsAbsent(t *testing.T) {
	extractor := NewExtractor(nil)

	profile := extractor.Extract("Senior engineer role working with Go and Docker.")

	assert.Nil(t, profile.ExperienceYears)
}

func TestExtract_RequiredAndPreferredZones(t *testing.T) {
	extractor := NewExtractor(nil)

	profile := extractor.Extract(
		"About the role.\n" +
			"Requirements: solid python and docker experience.\n" +
			"Nice to have: kubernetes and terraform knowledge.")

	assert.Contains(t, profile.RequiredSkills, "python")
	assert.Contains(t, profile.RequiredSkills, "docker")
	assert.NotContains(t, profile.RequiredSkills, "kubernetes")

	assert.Contains(t, profile.PreferredSkills, "kubernetes")
	assert.Contains(t, profile.PreferredSkills, "terraform")
	assert.NotContains(t, profile.PreferredSkills, "python")
}

func TestExtract_NoRequiredHeaderFallsBackToTechnicalSkills(t *testing.T) {
	extractor := NewExtractor(nil)

	profile := extractor.Extract("Our stack is Go, Python, and MongoDB. We ship daily.")

	// Without a requirements header every technical skill counts as required.
	assert.ElementsMatch(t, profile.TechnicalSkills, profile.RequiredSkills)
	assert.NotEmpty(t, profile.RequiredSkills)
	assert.Empty(t, profile.PreferredSkills)
}

func TestExtract_SoftSkillInRequiredZone(t *testing.T) {
	extractor := NewExtractor(nil)

	profile := extractor.Extract("Must have: excellent communication and 2+ years with react.")

	assert.Contains(t, profile.RequiredSkills, "communication")
	assert.Contains(t, profile.RequiredSkills, "react")
}

func TestExtract_IndustryKeywordCandidates(t *testing.T) {
	extractor := NewExtractor(nil)

	profile := extractor.Extract("We run a distributed payments platform serving millions of merchants.")

	assert.NotEmpty(t, profile.IndustryKeywords)
	assert.Contains(t, profile.IndustryKeywords, "distributed payments platform")
}

func TestExtract_DeterministicAcrossCalls(t *testing.T) {
	extractor := NewExtractor(nil)
	text := "Requirements: python, aws, leadership. Preferred: kubernetes. 4+ years experience."

	first := extractor.Extract(text)
	second := extractor.Extract(text)

	assert.Equal(t, first, second)
}
