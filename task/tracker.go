package task

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Tracker applies commands to a loaded store and persists the result.
type Tracker struct {
	file   *FileStore
	store  *Store
	now    func() time.Time
	logger *zap.Logger
}

// Options configures a Tracker.
type Options struct {
	// Now returns the current time. If nil, time.Now is used.
	Now func() time.Time

	// Logger receives debug records. If nil, a no-op logger is used.
	Logger *zap.Logger
}

// Open loads the store behind file and returns a Tracker for it.
func Open(file *FileStore, opts Options) (*Tracker, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	store, err := file.Load()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", file.Path(), err)
	}
	opts.Logger.Debug("loaded task store",
		zap.String("path", file.Path()),
		zap.Int("tasks", len(store.Tasks)),
		zap.Int("next_id", store.NextID),
	)

	return &Tracker{file: file, store: store, now: opts.Now, logger: opts.Logger}, nil
}

// Store returns a copy of the current in-memory store.
func (t *Tracker) Store() *Store {
	return t.store.Clone()
}

// Run dispatches args and saves the store when the command changed it.
// The returned error is non-nil only when saving failed; in that case the
// in-memory store keeps its previous contents.
func (t *Tracker) Run(args []string) (Result, error) {
	working := t.store.Clone()
	result := Dispatch(working, args, t.now())
	t.logger.Debug("dispatched command",
		zap.String("verb", result.Verb),
		zap.Stringer("kind", result.Kind()),
		zap.Bool("mutated", result.Mutated),
	)
	if !result.Mutated {
		return result, nil
	}

	if err := t.file.Save(working); err != nil {
		return result, fmt.Errorf("save %s: %w", t.file.Path(), err)
	}
	t.store = working
	t.logger.Debug("saved task store",
		zap.String("path", t.file.Path()),
		zap.Int("tasks", len(working.Tasks)),
		zap.Int("next_id", working.NextID),
	)
	return result, nil
}
