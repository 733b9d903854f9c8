// Package options tracks generation requests for rewrite candidates. Every
// generated option set gets an opaque id mapping back to the context that
// produced it, so a later selection or regeneration can locate the exact
// resume coordinates and keywords involved. The engine never writes rewrite
// prose itself; that is delegated to an external text generator.
package options

import (
	"crypto/md5" //nolint:gosec // content fingerprint, not a security boundary
	"encoding/hex"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/ats-optimizer/internal/types"
)

// Kind discriminates the two option context variants.
type Kind string

// Context kinds.
const (
	KindBullet  Kind = "bullet"
	KindSummary Kind = "summary"
)

// BulletContext is the generation context for a bullet rewrite.
type BulletContext struct {
	Original       string   `json:"original"`
	TargetKeywords []string `json:"target_keywords"`
	Industry       string   `json:"industry,omitempty"`
	WorkIndex      int      `json:"work_index"`
	BulletIndex    int      `json:"bullet_index"`
}

// SummaryContext is the generation context for a summary rewrite.
type SummaryContext struct {
	ResumeID    string `json:"resume_id"`
	JobTextHash string `json:"job_description_hash"`
}

// Entry is the cached context for one option set: exactly one of Bullet or
// Summary is set, matching Kind.
type Entry struct {
	Kind          Kind            `json:"type"`
	Bullet        *BulletContext  `json:"bullet,omitempty"`
	Summary       *SummaryContext `json:"summary,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	Feedback      string          `json:"feedback,omitempty"`
	RegeneratedAt *time.Time      `json:"regeneration_requested_at,omitempty"`
}

// Cache is a process-lifetime store of option generation contexts keyed by
// opaque id. Entries are never evicted; the store is an injectable object so a
// bounded implementation can replace it at integration time.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewCache returns an empty option cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*Entry)}
}

// GenerateBulletOptions records the generation context for one bullet and
// returns a request object with styled rewrite slots for the external
// generator to fill.
func (c *Cache) GenerateBulletOptions(original string, targetKeywords []string, industry string, workIndex, bulletIndex, numOptions int) *types.BulletOptions {
	optionID := uuid.New().String()

	c.mu.Lock()
	c.entries[optionID] = &Entry{
		Kind: KindBullet,
		Bullet: &BulletContext{
			Original:       original,
			TargetKeywords: targetKeywords,
			Industry:       industry,
			WorkIndex:      workIndex,
			BulletIndex:    bulletIndex,
		},
		CreatedAt: time.Now(),
	}
	c.mu.Unlock()

	styles := []struct {
		style       types.OptionStyle
		instruction string
	}{
		{types.StyleMetricsFocused, "Focus on quantifiable results and metrics"},
		{types.StyleActionOriented, "Lead with strong action verbs"},
		{types.StyleTechnical, "Emphasize technical skills and tools"},
	}
	if numOptions > 0 && numOptions < len(styles) {
		styles = styles[:numOptions]
	}

	keywords := targetKeywords
	if len(keywords) > 3 {
		keywords = keywords[:3]
	}

	result := &types.BulletOptions{
		OptionID:       optionID,
		Original:       original,
		WorkIndex:      workIndex,
		BulletIndex:    bulletIndex,
		TargetKeywords: targetKeywords,
	}
	for _, s := range styles {
		result.Options = append(result.Options, types.BulletOption{
			Style:         s.style,
			KeywordsAdded: keywords,
			Instruction:   s.instruction,
		})
	}
	return result
}

// GenerateSummaryOptions records the generation context for a professional
// summary rewrite and returns the request object.
func (c *Cache) GenerateSummaryOptions(resume *types.Resume, jobText string, numOptions int) *types.SummaryOptions {
	optionID := uuid.New().String()

	c.mu.Lock()
	c.entries[optionID] = &Entry{
		Kind: KindSummary,
		Summary: &SummaryContext{
			ResumeID:    resume.ID(),
			JobTextHash: hashJobText(jobText),
		},
		CreatedAt: time.Now(),
	}
	c.mu.Unlock()

	instructions := []string{
		"Write a concise professional summary",
		"Write a detailed professional summary",
		"Write an achievement-focused professional summary",
	}
	if numOptions > 0 && numOptions < len(instructions) {
		instructions = instructions[:numOptions]
	}

	return &types.SummaryOptions{
		OptionID:       optionID,
		CurrentSummary: resume.Basics.Summary,
		Instructions:   instructions,
	}
}

// Get returns a copy of the cached context for an option id.
func (c *Cache) Get(optionID string) (*Entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[optionID]
	if !ok {
		return nil, &NotFoundError{OptionID: optionID}
	}
	snapshot := *entry
	return &snapshot, nil
}

// Regenerate attaches user feedback and a regeneration timestamp to the
// stored context and returns the updated context for the external generator.
func (c *Cache) Regenerate(optionID, feedback string) (*Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[optionID]
	if !ok {
		return nil, &NotFoundError{OptionID: optionID}
	}

	now := time.Now()
	entry.Feedback = feedback
	entry.RegeneratedAt = &now

	snapshot := *entry
	return &snapshot, nil
}

// ApplySelection splices the selected text back into the resume using the
// cached context. Bullet contexts are bounds-checked against the document as
// it is now, not as it was at generation time; summary contexts overwrite
// unconditionally. On any error the resume is left unmodified.
func (c *Cache) ApplySelection(resume *types.Resume, optionID, selectedText string) error {
	c.mu.RLock()
	entry, ok := c.entries[optionID]
	c.mu.RUnlock()
	if !ok {
		return &NotFoundError{OptionID: optionID}
	}

	switch entry.Kind {
	case KindBullet:
		ctx := entry.Bullet
		if ctx.WorkIndex < 0 || ctx.WorkIndex >= len(resume.Work) {
			return &IndexOutOfRangeError{Field: "work", Index: ctx.WorkIndex, Length: len(resume.Work)}
		}
		work := &resume.Work[ctx.WorkIndex]
		if ctx.BulletIndex < 0 || ctx.BulletIndex >= len(work.Highlights) {
			return &IndexOutOfRangeError{Field: "bullet", Index: ctx.BulletIndex, Length: len(work.Highlights)}
		}
		work.Highlights[ctx.BulletIndex] = selectedText
		return nil
	case KindSummary:
		resume.Basics.Summary = selectedText
		return nil
	}
	return &NotFoundError{OptionID: optionID}
}

// Len reports how many contexts the cache currently holds.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// hashJobText fingerprints the posting so a summary context can be matched to
// the posting it was generated for without storing the whole text.
func hashJobText(jobText string) string {
	sum := md5.Sum([]byte(jobText)) //nolint:gosec // fingerprint only
	return hex.EncodeToString(sum[:])[:8]
}
