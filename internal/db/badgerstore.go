package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/frabiasco/assenze/internal/models"
)

var badgerDocumentKey = []byte("appdata")

// BadgerStore is the key-value shaped backend: one key, the serialized
// document as its value. Update runs in a badger read-write transaction.
type BadgerStore struct {
	database *badger.DB
}

func OpenBadgerStore(path string) (*BadgerStore, error) {
	options := badger.DefaultOptions(path).WithLogger(nil)
	database, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerStore{database: database}, nil
}

func (store *BadgerStore) Load(ctx context.Context) (models.Document, error) {
	document := models.EmptyDocument()
	err := store.database.View(func(txn *badger.Txn) error {
		loaded, err := loadBadgerDocument(txn)
		if err != nil {
			return err
		}
		document = loaded
		return nil
	})
	if err != nil {
		return models.EmptyDocument(), err
	}
	return document, nil
}

func (store *BadgerStore) Update(ctx context.Context, mutate func(document *models.Document) error) error {
	return store.database.Update(func(txn *badger.Txn) error {
		document, err := loadBadgerDocument(txn)
		if err != nil {
			return err
		}
		if err := mutate(&document); err != nil {
			return err
		}
		encoded, err := json.Marshal(document)
		if err != nil {
			return fmt.Errorf("encode document: %w", err)
		}
		return txn.Set(badgerDocumentKey, encoded)
	})
}

func (store *BadgerStore) Close() error {
	return store.database.Close()
}

func loadBadgerDocument(txn *badger.Txn) (models.Document, error) {
	item, err := txn.Get(badgerDocumentKey)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return models.EmptyDocument(), nil
	}
	if err != nil {
		return models.EmptyDocument(), fmt.Errorf("load document key: %w", err)
	}

	var document models.Document
	if err := item.Value(func(value []byte) error {
		return json.Unmarshal(value, &document)
	}); err != nil {
		return models.EmptyDocument(), fmt.Errorf("decode document: %w", err)
	}
	document.EnsureDefaults()
	return document, nil
}
