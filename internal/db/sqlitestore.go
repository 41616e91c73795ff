package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/frabiasco/assenze/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

const sqliteDocumentKey = "appdata"

type appDocument struct {
	Key  string `gorm:"primaryKey"`
	Data []byte `gorm:"not null"`
}

func (appDocument) TableName() string {
	return "app_documents"
}

// SQLiteStore keeps the serialized document in a single keyed row; Update
// runs inside a gorm transaction, which is the atomicity upgrade the
// DocumentStore contract exists for.
type SQLiteStore struct {
	database *gorm.DB
}

func OpenSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", dbPath)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := database.AutoMigrate(&appDocument{}); err != nil {
		return nil, fmt.Errorf("migrate document table: %w", err)
	}

	return &SQLiteStore{database: database}, nil
}

func (store *SQLiteStore) Load(ctx context.Context) (models.Document, error) {
	var row appDocument
	err := store.database.WithContext(ctx).First(&row, "key = ?", sqliteDocumentKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.EmptyDocument(), nil
	}
	if err != nil {
		return models.EmptyDocument(), fmt.Errorf("load document row: %w", err)
	}
	return decodeDocument(row.Data)
}

func (store *SQLiteStore) Update(ctx context.Context, mutate func(document *models.Document) error) error {
	return store.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		document := models.EmptyDocument()

		var row appDocument
		err := tx.First(&row, "key = ?", sqliteDocumentKey).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("load document row: %w", err)
		}
		if err == nil {
			document, err = decodeDocument(row.Data)
			if err != nil {
				return err
			}
		}

		if err := mutate(&document); err != nil {
			return err
		}

		encoded, err := json.Marshal(document)
		if err != nil {
			return fmt.Errorf("encode document: %w", err)
		}
		row = appDocument{Key: sqliteDocumentKey, Data: encoded}
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
	})
}

func (store *SQLiteStore) Close() error {
	sqlDB, err := store.database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func decodeDocument(encoded []byte) (models.Document, error) {
	var document models.Document
	if err := json.Unmarshal(encoded, &document); err != nil {
		return models.EmptyDocument(), fmt.Errorf("decode document: %w", err)
	}
	document.EnsureDefaults()
	return document, nil
}
