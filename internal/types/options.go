// Package types provides type definitions for structured data used throughout the ats-optimizer system.
package types

// OptionStyle names the angle an external generator should take for one
// candidate rewrite. The engine never writes prose itself; it hands these
// styles plus target keywords to the text-generation collaborator.
type OptionStyle string

// Rewrite style constants.
const (
	StyleMetricsFocused OptionStyle = "metrics-focused"
	StyleActionOriented OptionStyle = "action-oriented"
	StyleTechnical      OptionStyle = "technical"
)

// BulletOption is one requested rewrite slot for a bullet: a style directive
// and the keywords the rewrite should add. Text stays empty until the external
// generator fills it and the user selects it.
type BulletOption struct {
	Style         OptionStyle `json:"style"`
	KeywordsAdded []string    `json:"keywords_added"`
	Instruction   string      `json:"instruction"`
}

// BulletOptions is a generation request for one work-history bullet, tracked
// by OptionID so a later selection or regeneration can find its context.
type BulletOptions struct {
	OptionID       string         `json:"option_id"`
	Original       string         `json:"original"`
	WorkIndex      int            `json:"work_index"`
	BulletIndex    int            `json:"bullet_index"`
	TargetKeywords []string       `json:"target_keywords"`
	Options        []BulletOption `json:"options"`
}

// SummaryOptions is a generation request for the professional summary.
type SummaryOptions struct {
	OptionID       string   `json:"option_id"`
	CurrentSummary string   `json:"current_summary"`
	Instructions   []string `json:"options"`
}
