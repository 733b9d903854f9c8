// Package types provides type definitions for structured data used throughout the ats-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Resume implements the JSON Resume open standard (https://jsonresume.org) v1.0.0
// with a small extension block for engine bookkeeping. Field names keep the
// standard's camelCase JSON spelling so documents interchange with other tooling.
type Resume struct {
	Basics       Basics        `json:"basics"`
	Work         []Work        `json:"work,omitempty"`
	Education    []Education   `json:"education,omitempty"`
	Skills       []SkillGroup  `json:"skills,omitempty"`
	Certificates []Certificate `json:"certificates,omitempty"`
	Projects     []Project     `json:"projects,omitempty"`
	Meta         *Meta         `json:"meta,omitempty"`
}

// Basics holds personal and contact information.
type Basics struct {
	Name     string    `json:"name" validate:"required,min=1"`
	Label    string    `json:"label,omitempty"`
	Email    string    `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string    `json:"phone,omitempty"`
	URL      string    `json:"url,omitempty"`
	Summary  string    `json:"summary,omitempty"`
	Location *Location `json:"location,omitempty"`
	Profiles []Profile `json:"profiles,omitempty"`
}

// Location is a physical location.
type Location struct {
	City        string `json:"city,omitempty"`
	Region      string `json:"region,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
}

// Profile is a social or professional network profile.
type Profile struct {
	Network  string `json:"network"`
	Username string `json:"username,omitempty"`
	URL      string `json:"url,omitempty"`
}

// Work is a single work-history entry. EndDate empty means the position is current.
type Work struct {
	Name       string   `json:"name"`
	Position   string   `json:"position"`
	URL        string   `json:"url,omitempty"`
	StartDate  string   `json:"startDate,omitempty"` // YYYY or YYYY-MM or YYYY-MM-DD
	EndDate    string   `json:"endDate,omitempty"`   // same formats, or "present"
	Summary    string   `json:"summary,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

// Education is a single education entry.
type Education struct {
	Institution string `json:"institution"`
	Area        string `json:"area,omitempty"`
	StudyType   string `json:"studyType,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Score       string `json:"score,omitempty"`
}

// SkillGroup is a named skill category with its keywords.
type SkillGroup struct {
	Name     string   `json:"name"`
	Level    string   `json:"level,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

// Certificate is a professional certification entry.
type Certificate struct {
	Name   string `json:"name"`
	Date   string `json:"date,omitempty"`
	Issuer string `json:"issuer,omitempty"`
	URL    string `json:"url,omitempty"`
}

// Project is a project entry.
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	URL         string   `json:"url,omitempty"`
}

// Meta carries engine bookkeeping outside the JSON Resume standard fields.
type Meta struct {
	ResumeID string `json:"resumeId,omitempty"`
	Version  string `json:"version,omitempty"`
}

// ID returns the stable document identifier, assigning a fresh UUID when the
// document has none yet.
func (r *Resume) ID() string {
	if r.Meta == nil {
		r.Meta = &Meta{}
	}
	if r.Meta.ResumeID == "" {
		r.Meta.ResumeID = uuid.New().String()
	}
	return r.Meta.ResumeID
}

// FullText flattens the resume into a single searchable text blob. This is the
// projection scoring runs keyword and similarity checks against.
func (r *Resume) FullText() string {
	var sb strings.Builder
	write := func(parts ...string) {
		for _, p := range parts {
			if p == "" {
				continue
			}
			sb.WriteString(p)
			sb.WriteString("\n")
		}
	}

	write(r.Basics.Name, r.Basics.Label, r.Basics.Summary)
	for _, w := range r.Work {
		write(w.Name, w.Position, w.Summary)
		write(w.Highlights...)
	}
	for _, e := range r.Education {
		write(e.Institution, e.Area, e.StudyType)
	}
	for _, s := range r.Skills {
		write(s.Name)
		write(s.Keywords...)
	}
	for _, c := range r.Certificates {
		write(c.Name, c.Issuer)
	}
	for _, p := range r.Projects {
		write(p.Name, p.Description)
		write(p.Highlights...)
		write(p.Keywords...)
	}
	return sb.String()
}

// Validate validates the resume's basic fields using the validator.
func (r *Resume) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
