// Package session manages interactive optimization sessions: a prioritized
// worklist of improvement items for one resume/posting pair, walked one item
// at a time through a cursor and a completed set.
package session

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/ats-optimizer/internal/scoring"
	"github.com/jonathan/ats-optimizer/internal/types"
)

const (
	// summaryImpact is the fixed impact of a summary rewrite opportunity.
	summaryImpact = 15.0
	// bulletImpactPerKeyword scales bullet impact by missing-keyword count.
	bulletImpactPerKeyword = 5.0
	// maxItems caps the worklist at the highest-leverage opportunities.
	maxItems = 20
	// semanticRewriteThreshold: below this semantic score the summary is
	// worth rewriting even when present.
	semanticRewriteThreshold = 70.0
	// potentialGainFactor discounts projected improvement, since addressing
	// an item rarely lands every missing keyword.
	potentialGainFactor = 0.5
)

// NotFoundError reports an unknown session identifier.
type NotFoundError struct {
	SessionID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("session %s not found", e.SessionID)
}

// Manager owns the set of active optimization sessions. Sessions live in
// process memory for the manager's lifetime; there is no automatic expiry.
// Cursor updates are read-modify-write sequences, so each session carries its
// own lock.
type Manager struct {
	scorer *scoring.Scorer

	mu       sync.RWMutex
	sessions map[string]*state
}

type state struct {
	mu      sync.Mutex
	session *types.OptimizationSession
}

// NewManager builds a session manager on top of a scorer.
func NewManager(scorer *scoring.Scorer) *Manager {
	return &Manager{
		scorer:   scorer,
		sessions: make(map[string]*state),
	}
}

// Start scores the resume against the posting, builds the prioritized item
// worklist, and registers a new active session. No session state is created
// when scoring fails.
func (m *Manager) Start(ctx context.Context, resume *types.Resume, jobText string) (*types.OptimizationSession, error) {
	score, err := m.scorer.Score(ctx, resume, jobText)
	if err != nil {
		return nil, err
	}

	items := buildItems(resume, score)

	totalImpact := 0.0
	for _, item := range items {
		totalImpact += item.ImpactScore
	}
	potential := math.Min(100, score.Overall+potentialGainFactor*totalImpact)

	sess := &types.OptimizationSession{
		ID:             uuid.New().String(),
		ResumeID:       resume.ID(),
		JobText:        jobText,
		CurrentScore:   score.Overall,
		PotentialScore: math.Round(potential*10) / 10,
		Items:          items,
		CurrentIndex:   0,
		Completed:      make(map[int]bool),
	}

	m.mu.Lock()
	m.sessions[sess.ID] = &state{session: sess}
	m.mu.Unlock()

	return cloneSession(sess), nil
}

// Get returns a snapshot of a session.
func (m *Manager) Get(sessionID string) (*types.OptimizationSession, error) {
	st, err := m.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	return cloneSession(st.session), nil
}

// NextItem returns the next unfinished item at or after the cursor, without
// advancing past it. With skipCurrent the cursor first moves off the current
// item without marking it complete. A nil item means the session is complete.
func (m *Manager) NextItem(sessionID string, skipCurrent bool) (*types.OptimizationItem, error) {
	st, err := m.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	sess := st.session

	if skipCurrent {
		sess.CurrentIndex++
	}
	for sess.CurrentIndex < len(sess.Items) {
		if !sess.Completed[sess.CurrentIndex] {
			item := sess.Items[sess.CurrentIndex]
			return &item, nil
		}
		sess.CurrentIndex++
	}
	return nil, nil
}

// CompleteCurrent marks the cursor's item as done and advances the cursor.
// Calling it with the cursor already past the end is a valid terminal
// condition, not an error.
func (m *Manager) CompleteCurrent(sessionID string) error {
	st, err := m.lookup(sessionID)
	if err != nil {
		return err
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	sess := st.session

	if sess.CurrentIndex < len(sess.Items) {
		sess.Completed[sess.CurrentIndex] = true
	}
	sess.CurrentIndex++
	return nil
}

func (m *Manager) lookup(sessionID string) (*state, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.sessions[sessionID]
	if !ok {
		return nil, &NotFoundError{SessionID: sessionID}
	}
	return st, nil
}

// buildItems constructs the worklist in a fixed, deterministic order: a
// summary item when the summary is missing or semantically weak, then one
// bullet item per highlight that could absorb missing keywords, sorted by
// impact descending (stable, so ties keep emission order) and truncated to
// the top opportunities. This is a greedy score-weighted worklist, not an
// optimization search: re-scoring after edits is the caller's job.
func buildItems(resume *types.Resume, score *types.ScoreResult) []types.OptimizationItem {
	var items []types.OptimizationItem

	if resume.Basics.Summary == "" || score.Semantic < semanticRewriteThreshold {
		items = append(items, types.OptimizationItem{
			Type:        types.ItemSummary,
			Section:     "basics",
			Index:       0,
			CurrentText: resume.Basics.Summary,
			Priority:    types.PriorityHigh,
			ImpactScore: summaryImpact,
		})
	}

	missingRequired := make(map[string]bool)
	for _, kw := range score.MissingRequired {
		missingRequired[kw] = true
	}
	allMissing := append(append([]string{}, score.MissingRequired...), score.MissingPreferred...)

	for wi := range resume.Work {
		for bi, bullet := range resume.Work[wi].Highlights {
			bulletLower := strings.ToLower(bullet)
			var applicable []string
			hasRequired := false
			for _, kw := range allMissing {
				if !strings.Contains(bulletLower, strings.ToLower(kw)) {
					applicable = append(applicable, kw)
					if missingRequired[kw] {
						hasRequired = true
					}
				}
			}
			if len(applicable) == 0 {
				continue
			}

			priority := types.PriorityMedium
			if hasRequired {
				priority = types.PriorityHigh
			}
			subIndex := bi
			items = append(items, types.OptimizationItem{
				Type:           types.ItemBullet,
				Section:        "work",
				Index:          wi,
				SubIndex:       &subIndex,
				CurrentText:    bullet,
				Priority:       priority,
				ImpactScore:    bulletImpactPerKeyword * float64(len(applicable)),
				TargetKeywords: applicable,
			})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ImpactScore > items[j].ImpactScore
	})
	if len(items) > maxItems {
		items = items[:maxItems]
	}
	return items
}

// cloneSession copies session state so callers cannot mutate the manager's
// copy behind its lock.
func cloneSession(sess *types.OptimizationSession) *types.OptimizationSession {
	clone := *sess
	clone.Items = append([]types.OptimizationItem(nil), sess.Items...)
	clone.Completed = make(map[int]bool, len(sess.Completed))
	for k, v := range sess.Completed {
		clone.Completed[k] = v
	}
	return &clone
}
