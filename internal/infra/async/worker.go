package async

import "context"

// Worker is a long running background loop. Run blocks until ctx is
// cancelled and calls done right before returning. Shutdown releases what
// the worker owns, such as its ticker, and is called after Run returned.
type Worker interface {
	Run(ctx context.Context, done func())
	Shutdown()
}
