package db

import (
	"context"
	"log"

	"github.com/frabiasco/assenze/internal/models"
)

// DocumentStore persists the whole application document. Update is the
// single unit-of-work boundary: it reads the current document, applies the
// mutator and writes the result back. How atomic that is depends on the
// backend (the file store serializes in-process, sqlite and badger run a
// real transaction, mongo is read-then-replace); call sites stay the same
// either way.
type DocumentStore interface {
	Load(ctx context.Context) (models.Document, error)
	Update(ctx context.Context, mutate func(document *models.Document) error) error
	Close() error
}

// LoadOrEmpty reads the current snapshot, degrading to the empty document
// when the store is unreachable so read paths keep working. Write failures
// are never swallowed like this; Update surfaces them.
func LoadOrEmpty(ctx context.Context, store DocumentStore) models.Document {
	document, err := store.Load(ctx)
	if err != nil {
		log.Printf("document load failed, serving empty snapshot: %v", err)
		return models.EmptyDocument()
	}
	document.EnsureDefaults()
	return document
}
