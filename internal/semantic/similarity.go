// Package semantic provides the text-to-text similarity capability used by
// scoring. The capability is a required external dependency: when it cannot be
// reached the caller gets a DependencyError, never a degraded partial score.
package semantic

import (
	"context"
	"fmt"
	"math"

	"github.com/jonathan/ats-optimizer/internal/llm"
)

// SimilarityModel compares two texts and returns a similarity in [0, 1].
// Implementations may be slow or remote; callers should pass a context with a
// deadline.
type SimilarityModel interface {
	Similarity(ctx context.Context, a, b string) (float64, error)
}

// DependencyError reports that the similarity capability was unreachable or
// misconfigured.
type DependencyError struct {
	Message string
	Cause   error
}

func (e *DependencyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("similarity unavailable: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("similarity unavailable: %s", e.Message)
}

func (e *DependencyError) Unwrap() error {
	return e.Cause
}

// EmbeddingSimilarity implements SimilarityModel by embedding both texts and
// taking the cosine of the two vectors, clamped to [0, 1].
type EmbeddingSimilarity struct {
	client llm.Client
}

// NewEmbeddingSimilarity wraps an embedding client as a SimilarityModel.
func NewEmbeddingSimilarity(client llm.Client) *EmbeddingSimilarity {
	return &EmbeddingSimilarity{client: client}
}

// Similarity embeds both texts and returns their cosine similarity.
func (s *EmbeddingSimilarity) Similarity(ctx context.Context, a, b string) (float64, error) {
	if s.client == nil {
		return 0, &DependencyError{Message: "no embedding client configured"}
	}

	va, err := s.client.EmbedText(ctx, a)
	if err != nil {
		return 0, &DependencyError{Message: "failed to embed text", Cause: err}
	}
	vb, err := s.client.EmbedText(ctx, b)
	if err != nil {
		return 0, &DependencyError{Message: "failed to embed text", Cause: err}
	}

	sim, err := cosine(va, vb)
	if err != nil {
		return 0, &DependencyError{Message: "failed to compare embeddings", Cause: err}
	}
	return sim, nil
}

// cosine returns the cosine similarity of two vectors clamped to [0, 1].
// Embedding models return near-orthogonal vectors for unrelated text, so the
// negative half of the range carries no signal worth preserving.
func cosine(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("embedding size mismatch: %d vs %d", len(a), len(b))
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}
	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return math.Min(1, math.Max(0, sim)), nil
}
