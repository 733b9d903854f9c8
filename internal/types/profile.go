// Package types provides type definitions for structured data used throughout the ats-optimizer system.
package types

// RequirementProfile is the categorized keyword analysis of a job posting.
// It is built once per posting text and never mutated afterwards.
//
// A term matching more than one category pattern is kept in every bucket it
// matched; deduplication is per bucket only.
type RequirementProfile struct {
	RequiredSkills   []string `json:"required_skills"`
	PreferredSkills  []string `json:"preferred_skills"`
	TechnicalSkills  []string `json:"technical_skills"`
	SoftSkills       []string `json:"soft_skills"`
	Certifications   []string `json:"certifications"`
	IndustryKeywords []string `json:"industry_keywords"`
	ExperienceYears  *int     `json:"experience_years,omitempty"`
}

// IsEmpty reports whether extraction found nothing at all.
func (p *RequirementProfile) IsEmpty() bool {
	return len(p.RequiredSkills) == 0 &&
		len(p.PreferredSkills) == 0 &&
		len(p.TechnicalSkills) == 0 &&
		len(p.SoftSkills) == 0 &&
		len(p.Certifications) == 0 &&
		len(p.IndustryKeywords) == 0 &&
		p.ExperienceYears == nil
}
