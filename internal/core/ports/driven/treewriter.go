package driven

import (
	"context"

	"github.com/fernwood-labs/plank-cli/internal/core/domain"
)

// TreeWriter materializes a document set under a root directory.
type TreeWriter interface {
	// Materialize writes each document to root/Path in order, creating
	// intermediate directories as needed. Written files always end with
	// exactly one trailing newline: one is appended when the content
	// lacks it, existing ones are never doubled or trimmed. Duplicate
	// paths overwrite, so the last occurrence wins. Writes are not
	// transactional; a failure partway leaves the partial tree in place
	// and is returned as the error.
	Materialize(ctx context.Context, root string, docs []domain.Document) (files []domain.FileReport, dirsCreated int, err error)
}
