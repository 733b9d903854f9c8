// Package types provides type definitions for structured data used throughout the ats-optimizer system.
package types

// ItemType identifies what kind of resume element an optimization item targets.
type ItemType string

// Item type constants.
const (
	ItemSummary ItemType = "summary"
	ItemBullet  ItemType = "bullet"
	ItemSkills  ItemType = "skills"
)

// Priority ranks how urgent an optimization item is.
type Priority string

// Priority constants.
const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// OptimizationItem is one actionable improvement opportunity identified for a
// resume. Immutable once emitted; completion is tracked on the session.
type OptimizationItem struct {
	Type        ItemType `json:"item_type"`
	Section     string   `json:"section"`
	Index       int      `json:"index"`
	SubIndex    *int     `json:"sub_index,omitempty"`
	CurrentText string   `json:"current_text"`
	Priority    Priority `json:"priority"`
	ImpactScore float64  `json:"impact_score"`

	// Keywords the rewrite should try to work in. Carried so option
	// generation does not have to re-derive the gap.
	TargetKeywords []string `json:"target_keywords,omitempty"`
}

// OptimizationSession is the state of one interactive optimization walk:
// an ordered worklist of items plus a cursor and a completed set. The item
// order is fixed at session creation.
type OptimizationSession struct {
	ID             string             `json:"session_id"`
	ResumeID       string             `json:"resume_id"`
	JobText        string             `json:"job_description"`
	CurrentScore   float64            `json:"current_score"`
	PotentialScore float64            `json:"potential_score"`
	Items          []OptimizationItem `json:"items"`
	CurrentIndex   int                `json:"current_index"`
	Completed      map[int]bool       `json:"completed_items"`
}

// Complete reports whether the cursor has run past the last unfinished item.
func (s *OptimizationSession) Complete() bool {
	for i := s.CurrentIndex; i < len(s.Items); i++ {
		if !s.Completed[i] {
			return false
		}
	}
	return true
}

// Remaining counts items not yet completed.
func (s *OptimizationSession) Remaining() int {
	n := 0
	for i := range s.Items {
		if !s.Completed[i] {
			n++
		}
	}
	return n
}
