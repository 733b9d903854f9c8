// Package store provides persistence for resume documents. The engine treats
// the store as an opaque collaborator: documents go in and out whole, and the
// engine never inspects the storage format.
package store

import (
	"context"
	"fmt"

	"github.com/jonathan/ats-optimizer/internal/types"
)

// DocumentStore loads and saves resume documents by identifier.
type DocumentStore interface {
	Load(ctx context.Context, id string) (*types.Resume, error)
	Save(ctx context.Context, resume *types.Resume) error
	List(ctx context.Context) ([]string, error)
}

// NotFoundError reports an unknown document identifier.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resume %s not found", e.ID)
}
