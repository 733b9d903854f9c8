// Package engine wires the extractor, scorer, option cache, session manager
// and document store into the operation set exposed to adapters (CLI, RPC,
// whatever embeds it). The engine owns session and option state; documents
// belong to the store and pass through by value for one operation at a time.
package engine

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-optimizer/internal/extraction"
	"github.com/jonathan/ats-optimizer/internal/options"
	"github.com/jonathan/ats-optimizer/internal/scoring"
	"github.com/jonathan/ats-optimizer/internal/semantic"
	"github.com/jonathan/ats-optimizer/internal/session"
	"github.com/jonathan/ats-optimizer/internal/store"
	"github.com/jonathan/ats-optimizer/internal/types"
)

// Engine is the optimization engine facade.
type Engine struct {
	extractor *extraction.Extractor
	scorer    *scoring.Scorer
	options   *options.Cache
	sessions  *session.Manager
	store     store.DocumentStore
	log       *zap.Logger
}

// New builds an engine around a similarity capability and a document store.
// A nil logger disables logging.
func New(similarity semantic.SimilarityModel, docs store.DocumentStore, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	extractor := extraction.NewExtractor(nil)
	scorer := scoring.NewScorer(extractor, similarity)
	return &Engine{
		extractor: extractor,
		scorer:    scorer,
		options:   options.NewCache(),
		sessions:  session.NewManager(scorer),
		store:     docs,
		log:       log,
	}
}

// ExtractRequirements returns the categorized requirement profile of a job
// posting.
func (e *Engine) ExtractRequirements(jobText string) *types.RequirementProfile {
	profile := e.extractor.Extract(jobText)
	e.log.Debug("extracted requirements",
		zap.Int("required", len(profile.RequiredSkills)),
		zap.Int("preferred", len(profile.PreferredSkills)),
		zap.Int("technical", len(profile.TechnicalSkills)))
	return profile
}

// ScoreDocument scores a resume against a job posting.
func (e *Engine) ScoreDocument(ctx context.Context, resume *types.Resume, jobText string) (*types.ScoreResult, error) {
	result, err := e.scorer.Score(ctx, resume, jobText)
	if err != nil {
		return nil, err
	}
	e.log.Debug("scored resume",
		zap.String("resume_id", resume.ID()),
		zap.Float64("overall", result.Overall),
		zap.Bool("passes", result.PassesThreshold))
	return result, nil
}

// ScoreDocumentByID loads a resume from the store and scores it.
func (e *Engine) ScoreDocumentByID(ctx context.Context, resumeID, jobText string) (*types.ScoreResult, error) {
	resume, err := e.store.Load(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	return e.ScoreDocument(ctx, resume, jobText)
}

// GenerateBulletOptions creates a tracked generation request for one bullet.
func (e *Engine) GenerateBulletOptions(original string, targetKeywords []string, industry string, workIndex, bulletIndex, numOptions int) *types.BulletOptions {
	return e.options.GenerateBulletOptions(original, targetKeywords, industry, workIndex, bulletIndex, numOptions)
}

// GenerateSummaryOptions creates a tracked generation request for the summary.
func (e *Engine) GenerateSummaryOptions(resume *types.Resume, jobText string, numOptions int) *types.SummaryOptions {
	return e.options.GenerateSummaryOptions(resume, jobText, numOptions)
}

// RegenerateOptions attaches feedback to a cached option context and returns
// it for the external generator to retry with.
func (e *Engine) RegenerateOptions(optionID, feedback string) (*options.Entry, error) {
	return e.options.Regenerate(optionID, feedback)
}

// ApplySelection splices selected text into an in-hand resume document.
func (e *Engine) ApplySelection(resume *types.Resume, optionID, selectedText string) error {
	return e.options.ApplySelection(resume, optionID, selectedText)
}

// ApplySelectionByID loads the resume, applies the selection, persists the
// result, and returns the updated document. Nothing is saved when the splice
// fails.
func (e *Engine) ApplySelectionByID(ctx context.Context, resumeID, optionID, selectedText string) (*types.Resume, error) {
	resume, err := e.store.Load(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	if err := e.options.ApplySelection(resume, optionID, selectedText); err != nil {
		return nil, err
	}
	if err := e.store.Save(ctx, resume); err != nil {
		return nil, err
	}
	e.log.Debug("applied selection",
		zap.String("resume_id", resumeID),
		zap.String("option_id", optionID))
	return resume, nil
}

// StartSession creates an interactive optimization session for the pair.
func (e *Engine) StartSession(ctx context.Context, resume *types.Resume, jobText string) (*types.OptimizationSession, error) {
	sess, err := e.sessions.Start(ctx, resume, jobText)
	if err != nil {
		return nil, err
	}
	e.log.Info("started optimization session",
		zap.String("session_id", sess.ID),
		zap.Float64("current_score", sess.CurrentScore),
		zap.Float64("potential_score", sess.PotentialScore),
		zap.Int("items", len(sess.Items)))
	return sess, nil
}

// GetSession returns a snapshot of an active session.
func (e *Engine) GetSession(sessionID string) (*types.OptimizationSession, error) {
	return e.sessions.Get(sessionID)
}

// GetNextItem returns the next unfinished item, or nil when the session is
// complete.
func (e *Engine) GetNextItem(sessionID string, skipCurrent bool) (*types.OptimizationItem, error) {
	return e.sessions.NextItem(sessionID, skipCurrent)
}

// CompleteCurrentItem marks the session's current item done.
func (e *Engine) CompleteCurrentItem(sessionID string) error {
	return e.sessions.CompleteCurrent(sessionID)
}

// TargetRank pairs one posting with the resume's score against it.
type TargetRank struct {
	Index  int                `json:"index"`
	Result *types.ScoreResult `json:"result"`
}

// RankTargets scores one resume against several postings concurrently and
// returns ranks ordered by overall score descending. Scoring is pure, so the
// only shared state across goroutines is the similarity client.
func (e *Engine) RankTargets(ctx context.Context, resume *types.Resume, jobTexts []string) ([]TargetRank, error) {
	ranks := make([]TargetRank, len(jobTexts))

	g, ctx := errgroup.WithContext(ctx)
	for i, jobText := range jobTexts {
		i, jobText := i, jobText
		g.Go(func() error {
			result, err := e.scorer.Score(ctx, resume, jobText)
			if err != nil {
				return err
			}
			ranks[i] = TargetRank{Index: i, Result: result}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortRanks(ranks)
	return ranks, nil
}

func sortRanks(ranks []TargetRank) {
	for i := 1; i < len(ranks); i++ {
		for j := i; j > 0 && ranks[j].Result.Overall > ranks[j-1].Result.Overall; j-- {
			ranks[j], ranks[j-1] = ranks[j-1], ranks[j]
		}
	}
}
