package catalog

import (
	"context"

	"go.uber.org/zap"
)

// FileStore is the file-storage collaborator as seen from this core. Uploads
// are persisted by the boundary layer under generated unique names before
// any transaction opens; this core only ever references filenames.
type FileStore interface {
	// Remove deletes a stored file by name. Removing a file that no
	// longer exists is not an error.
	Remove(ctx context.Context, filename string) error
	// Exists reports whether a file with the given name is stored.
	Exists(ctx context.Context, filename string) (bool, error)
}

// FileStage tracks the files written for one request so that a single
// deferred finalization can decide their fate: after a committed
// transaction the stage is kept, on any other exit path the staged files
// are deleted. Cleanup is best-effort; its failures are logged and never
// replace the error that aborted the transaction.
type FileStage struct {
	store  FileStore
	logger *zap.Logger
	names  []string
	kept   bool
}

// NewFileStage creates a stage over the given filenames
func NewFileStage(store FileStore, logger *zap.Logger, names ...string) *FileStage {
	return &FileStage{
		store:  store,
		logger: logger,
		names:  append([]string(nil), names...),
	}
}

// Add stages additional filenames
func (s *FileStage) Add(names ...string) {
	s.names = append(s.names, names...)
}

// Keep marks the staged files as permanent. Call only after the database
// transaction has committed.
func (s *FileStage) Keep() {
	s.kept = true
}

// Cleanup deletes the staged files unless the stage was kept. Intended to
// run deferred so every exit path is covered.
func (s *FileStage) Cleanup(ctx context.Context) {
	if s.kept {
		return
	}
	removeFiles(ctx, s.store, s.logger, s.names)
}

// removeFiles deletes the given files, logging failures instead of
// returning them
func removeFiles(ctx context.Context, store FileStore, logger *zap.Logger, names []string) {
	for _, name := range names {
		if name == "" {
			continue
		}
		if err := store.Remove(ctx, name); err != nil {
			logger.Warn("failed to remove stored file",
				zap.String("filename", name),
				zap.Error(err))
		}
	}
}
