package driven

import "context"

// ChangeEvent is one debounced burst of filesystem changes under a
// watched root. The flatten watch loop rebuilds the bundle once per
// event rather than once per raw notification.
type ChangeEvent struct {
	// Path is the last path that changed within the burst.
	Path string

	// Changes counts the raw notifications the burst coalesced.
	Changes int
}

// TreeWatcher emits change notifications for a source tree. The
// returned channel closes when ctx is cancelled or the watcher dies.
type TreeWatcher interface {
	Watch(ctx context.Context, root string) (<-chan ChangeEvent, error)
}
