package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/inklet-dev/inklet/internal/domain"
)

// FileStore persists the whole document as one indented JSON file. Every read
// goes back to disk, so edits made outside the process are picked up on the
// next request. Writes replace the file in full.
type FileStore struct {
	path string

	// mu serializes the load+mutate+save sequence in Update. Without it two
	// concurrent creates would each rewrite the file from their own snapshot
	// and the second writer would silently drop the first one's entity.
	mu sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load re-reads the backing file. It fails open: a missing, unreadable or
// unparsable file yields an empty document rather than an error, so a fresh
// deployment starts from nothing and a corrupted file never takes the API
// down.
func (s *FileStore) Load(ctx context.Context) (domain.Document, error) {
	return s.read(ctx), nil
}

// Update runs mutate against the current document and persists the result.
// The full sequence holds the store mutex; a failed write is propagated and
// leaves the previous file contents in place.
func (s *FileStore) Update(ctx context.Context, mutate func(*domain.Document)) (domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.read(ctx)
	mutate(&doc)

	if err := s.save(doc); err != nil {
		return domain.Document{}, domain.PersistenceError{Path: s.path, Err: err}
	}
	return doc, nil
}

func (s *FileStore) read(ctx context.Context) domain.Document {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return domain.NewDocument()
	}

	var doc domain.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		slog.WarnContext(
			ctx, "store file unparsable, starting from empty document",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
			slog.String("module", "repository"),
		)
		return domain.NewDocument()
	}

	doc.Normalize()
	return doc
}

// save writes doc through a temp file and an atomic rename so a crash mid
// write never leaves a truncated store behind.
func (s *FileStore) save(doc domain.Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal document")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", tmp)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp) //nolint:errcheck
		return errors.Wrapf(err, "rename to %s", s.path)
	}
	return nil
}
