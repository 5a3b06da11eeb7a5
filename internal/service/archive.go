package service

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// ObjectStore persists report artifacts outside the workspace.
type ObjectStore interface {
	Put(ctx context.Context, key string, content []byte) error
}

type ArchiveService interface {
	// Archive uploads the report at relPath, relative to the repository root,
	// and returns the object key it was stored under.
	Archive(ctx context.Context, relPath string) (string, error)
}

type archiveService struct {
	root  string
	runID string
	store ObjectStore
}

func NewArchiveService(root, runID string, store ObjectStore) ArchiveService {
	if runID == "" {
		runID = uuid.NewString()
	}
	return &archiveService{
		root:  root,
		runID: runID,
		store: store,
	}
}

func (s *archiveService) Archive(ctx context.Context, relPath string) (string, error) {
	content, err := os.ReadFile(filepath.Join(s.root, relPath))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", relPath, err)
	}

	key := path.Join(s.runID, filepath.ToSlash(relPath))
	if err := s.store.Put(ctx, key, content); err != nil {
		return "", fmt.Errorf("uploading %s: %w", key, err)
	}
	return key, nil
}
