package prompt

import (
	"context"
	"errors"
)

// Logical names of the runtime-editable prompts.
const (
	KeyPreFilter = "prompt_pre_filter_rag"
	KeyRelevance = "prompt_relevance_rag"
)

// ErrNotFound is returned by stores when no override exists for a name.
var ErrNotFound = errors.New("prompt not found")

// Store is the read side of the prompt variables table.
type Store interface {
	Get(ctx context.Context, name string) (string, error)
}

// Repository adds the write path used by prompt administration.
type Repository interface {
	Store
	Set(ctx context.Context, name, value string) error
	Delete(ctx context.Context, name string) error
}

// Known reports whether name is one of the prompt keys the service reads.
func Known(name string) bool {
	return name == KeyPreFilter || name == KeyRelevance
}
