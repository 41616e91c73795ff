package db

import (
	"context"
	"fmt"
)

// StoreConfig carries the per-backend settings read from the environment.
type StoreConfig struct {
	DataPath   string
	SQLitePath string
	BadgerPath string
	MongoURI   string
}

// OpenStore selects and opens a backend by name. The deployment history of
// this app ran, in order, on a local JSON file, a cloud key-value store and
// a managed document database; all of them live behind DocumentStore.
func OpenStore(ctx context.Context, backend string, config StoreConfig) (DocumentStore, error) {
	switch backend {
	case "file", "":
		return NewFileStore(config.DataPath)
	case "sqlite":
		return OpenSQLiteStore(config.SQLitePath)
	case "badger":
		return OpenBadgerStore(config.BadgerPath)
	case "mongo":
		if config.MongoURI == "" {
			return nil, fmt.Errorf("mongo backend selected but MONGO_URI is empty")
		}
		return OpenMongoStore(ctx, config.MongoURI)
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
