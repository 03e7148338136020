package ports

import "context"

// SourcePort fetches a complete payload by name.
type SourcePort interface {
	// Fetch returns every byte stored under name. It must not return
	// until the whole content is in memory.
	Fetch(ctx context.Context, name string) ([]byte, error)

	// Handles reports whether this source understands name.
	Handles(name string) bool
}
