// Package storage persists whole JSON documents under string keys. Writes
// always replace the full document; there are no partial updates.
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound signals a cold start for a domain key.
var ErrKeyNotFound = errors.New("storage: key not found")

// DocumentStore is the persistence boundary of the domain store. Every
// mutation upstream follows read-entire-document, mutate in memory,
// write-entire-document; concurrent writers are serialized by the caller
// and the last write wins.
type DocumentStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
	Close() error
}
