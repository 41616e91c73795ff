package db

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/frabiasco/assenze/internal/models"
)

// FileStore keeps the document as pretty-printed JSON on disk, writing a
// sibling .bak copy of the previous contents before each save. A mutex
// serializes Update within the process.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

func (store *FileStore) Load(ctx context.Context) (models.Document, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.read()
}

func (store *FileStore) Update(ctx context.Context, mutate func(document *models.Document) error) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	document, err := store.read()
	if err != nil {
		return err
	}
	if err := mutate(&document); err != nil {
		return err
	}
	return store.save(document)
}

func (store *FileStore) Close() error {
	return nil
}

func (store *FileStore) read() (models.Document, error) {
	contents, err := os.ReadFile(store.path)
	if os.IsNotExist(err) {
		return models.EmptyDocument(), nil
	}
	if err != nil {
		return models.EmptyDocument(), fmt.Errorf("read document file: %w", err)
	}

	var document models.Document
	if err := json.Unmarshal(contents, &document); err != nil {
		return models.EmptyDocument(), fmt.Errorf("decode document file: %w", err)
	}
	document.EnsureDefaults()
	return document, nil
}

func (store *FileStore) save(document models.Document) error {
	encoded, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	if previous, err := os.ReadFile(store.path); err == nil {
		if err := os.WriteFile(store.path+".bak", previous, 0o644); err != nil {
			return fmt.Errorf("write backup copy: %w", err)
		}
	}

	temporary := store.path + ".tmp"
	if err := os.WriteFile(temporary, encoded, 0o644); err != nil {
		return fmt.Errorf("write document file: %w", err)
	}
	if err := os.Rename(temporary, store.path); err != nil {
		return fmt.Errorf("replace document file: %w", err)
	}
	return nil
}
