package config

import (
	"fmt"
	"os"

	"github.com/piggypal/piggypal-api/storage"
)

// OpenStore builds the document store selected by STORAGE_DRIVER:
// "sqlite" (default), "postgres", or "memory". When DATA_ENCRYPTION_KEY is
// set the selected backend is wrapped with encryption at rest.
func OpenStore() (storage.DocumentStore, error) {
	driver := os.Getenv("STORAGE_DRIVER")
	if driver == "" {
		driver = "sqlite"
	}

	var (
		store storage.DocumentStore
		err   error
	)

	switch driver {
	case "sqlite":
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "piggypal.db"
		}
		store, err = storage.NewSQLiteStore(path)
	case "postgres":
		dbURL := os.Getenv("DATABASE_URL")
		if dbURL == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is required for the postgres driver")
		}
		store, err = storage.NewPostgresStore(dbURL)
	case "memory":
		store = storage.NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
	}
	if err != nil {
		return nil, err
	}

	if key := os.Getenv("DATA_ENCRYPTION_KEY"); key != "" {
		store, err = storage.NewEncryptedStore(store, key)
		if err != nil {
			return nil, err
		}
	}

	return store, nil
}
