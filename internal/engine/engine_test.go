package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-optimizer/internal/options"
	"github.com/jonathan/ats-optimizer/internal/store"
	"github.com/jonathan/ats-optimizer/internal/types"
)

type fixedSimilarity struct {
	value float64
	err   error
}

func (s fixedSimilarity) Similarity(context.Context, string, string) (float64, error) {
	return s.value, s.err
}

func testResume() *types.Resume {
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

func newTestEngine(sim float64) (*Engine, *store.MemoryStore) {
	docs := store.NewMemoryStore()
	return New(fixedSimilarity{value: sim}, docs, nil), docs
}

func TestEngine_ExtractRequirements(t *testing.T) {
	eng, _ := newTestEngine(0.5)

	profile := eng.ExtractRequirements("Requirements: python and docker. Preferred: kubernetes.")

	assert.Contains(t, profile.RequiredSkills, "python")
	assert.Contains(t, profile.RequiredSkills, "docker")
	assert.Contains(t, profile.PreferredSkills, "kubernetes")
}

func TestEngine_ScoreDocumentByID(t *testing.T) {
	eng, docs := newTestEngine(0.5)
	resume := testResume()
	require.NoError(t, docs.Save(context.Background(), resume))

	result, err := eng.ScoreDocumentByID(context.Background(), resume.ID(), "Requirements: python and docker.")
	require.NoError(t, err)

	assert.Equal(t, 100.0, result.Keyword)
}

func TestEngine_ScoreDocumentByID_UnknownResume(t *testing.T) {
	eng, _ := newTestEngine(0.5)

	result, err := eng.ScoreDocumentByID(context.Background(), "missing", "job text")

	assert.Nil(t, result)
	var notFound *store.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestEngine_ApplySelectionByID_Persists(t *testing.T) {
	eng, docs := newTestEngine(0.5)
	resume := testResume()
	require.NoError(t, docs.Save(context.Background(), resume))

	req := eng.GenerateSummaryOptions(resume, "job text", 3)

	updated, err := eng.ApplySelectionByID(context.Background(), resume.ID(), req.OptionID, "Platform engineer.")
	require.NoError(t, err)
	assert.Equal(t, "Platform engineer.", updated.Basics.Summary)

	stored, err := docs.Load(context.Background(), resume.ID())
	require.NoError(t, err)
	assert.Equal(t, "Platform engineer.", stored.Basics.Summary)
}

func TestEngine_ApplySelectionByID_FailedSpliceNotSaved(t *testing.T) {
	eng, docs := newTestEngine(0.5)
	resume := testResume()
	require.NoError(t, docs.Save(context.Background(), resume))

	// Bullet coordinates that do not exist in the document.
	req := eng.GenerateBulletOptions("stale text", nil, "", 5, 0, 3)

	updated, err := eng.ApplySelectionByID(context.Background(), resume.ID(), req.OptionID, "new text")

	assert.Nil(t, updated)
	var outOfRange *options.IndexOutOfRangeError
	require.ErrorAs(t, err, &outOfRange)

	stored, err := docs.Load(context.Background(), resume.ID())
	require.NoError(t, err)
	assert.Equal(t, testResume().Work[0].Highlights, stored.Work[0].Highlights)
}

func TestEngine_RegenerateOptions(t *testing.T) {
	eng, _ := newTestEngine(0.5)
	req := eng.GenerateBulletOptions("Shipped services", []string{"python"}, "", 0, 0, 3)

	entry, err := eng.RegenerateOptions(req.OptionID, "make it quantitative")
	require.NoError(t, err)

	assert.Equal(t, "make it quantitative", entry.Feedback)
	assert.NotNil(t, entry.RegeneratedAt)
}

func TestEngine_SessionLifecycle(t *testing.T) {
	eng, _ := newTestEngine(0.2)
	resume := testResume()
	resume.Basics.Summary = ""

	sess, err := eng.StartSession(context.Background(), resume, "Requirements: python, docker, and rust.")
	require.NoError(t, err)
	require.NotEmpty(t, sess.Items)

	item, err := eng.GetNextItem(sess.ID, false)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, sess.Items[0], *item)

	require.NoError(t, eng.CompleteCurrentItem(sess.ID))

	snapshot, err := eng.GetSession(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, len(sess.Items)-1, snapshot.Remaining())
}

func TestEngine_RankTargets(t *testing.T) {
	eng, _ := newTestEngine(0.5)
	resume := testResume()

	// Postings match zero, two, and one of the resume's keywords.
	jobTexts := []string{
		"Requirements: rust and terraform.",
		"Requirements: python and docker.",
		"Requirements: python and rust.",
	}

	ranks, err := eng.RankTargets(context.Background(), resume, jobTexts)
	require.NoError(t, err)
	require.Len(t, ranks, 3)

	assert.Equal(t, 1, ranks[0].Index)
	assert.Equal(t, 2, ranks[1].Index)
	assert.Equal(t, 0, ranks[2].Index)
	assert.GreaterOrEqual(t, ranks[0].Result.Overall, ranks[1].Result.Overall)
	assert.GreaterOrEqual(t, ranks[1].Result.Overall, ranks[2].Result.Overall)
}

func TestEngine_RankTargets_FailurePropagates(t *testing.T) {
	docs := store.NewMemoryStore()
	eng := New(fixedSimilarity{err: assert.AnError}, docs, nil)

	ranks, err := eng.RankTargets(context.Background(), testResume(), []string{"job one", "job two"})

	assert.Nil(t, ranks)
	assert.ErrorIs(t, err, assert.AnError)
}
