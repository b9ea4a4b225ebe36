package storage

import (
	"context"
	"fmt"

	"github.com/piggypal/piggypal-api/utils"
)

// EncryptedStore wraps any DocumentStore with AES-GCM encryption at rest.
// The backend only ever sees base64 ciphertext.
type EncryptedStore struct {
	inner DocumentStore
	key   string
}

func NewEncryptedStore(inner DocumentStore, key string) (*EncryptedStore, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("data encryption key must be exactly 32 characters, got %d", len(key))
	}
	return &EncryptedStore{inner: inner, key: key}, nil
}

func (s *EncryptedStore) Get(ctx context.Context, key string) ([]byte, error) {
	ciphertext, err := s.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	plaintext, err := utils.Decrypt(s.key, string(ciphertext))
	if err != nil {
		return nil, fmt.Errorf("decrypt document %q: %w", key, err)
	}
	return plaintext, nil
}

func (s *EncryptedStore) Put(ctx context.Context, key string, value []byte) error {
	ciphertext, err := utils.Encrypt(s.key, value)
	if err != nil {
		return fmt.Errorf("encrypt document %q: %w", key, err)
	}
	return s.inner.Put(ctx, key, []byte(ciphertext))
}

func (s *EncryptedStore) Ping(ctx context.Context) error {
	return s.inner.Ping(ctx)
}

func (s *EncryptedStore) Close() error {
	return s.inner.Close()
}
