package backend

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"
	"go.etcd.io/bbolt"
)

var bucketBlobs = []byte("blobs")

// BoltContentStore is a local bbolt-backed ContentStore for development and
// offline use. Handles are hex(BLAKE3-256(content)), so the CAS contract
// holds: the handle is derived from the content hash, identical content
// deduplicates to one handle.
type BoltContentStore struct {
	db *bbolt.DB
}

// OpenBoltContentStore opens or creates the bbolt database at dbPath.
// The parent directory is created if it does not exist.
func OpenBoltContentStore(dbPath string) (*BoltContentStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("backend: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("backend: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketBlobs)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("backend: create bucket: %w", err)
	}

	return &BoltContentStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BoltContentStore) Close() error { return s.db.Close() }

// AddBytes stores data under its BLAKE3-256 hash and returns the hex handle.
func (s *BoltContentStore) AddBytes(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyContent
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	sum := blake3.Sum256(data)
	handle := hex.EncodeToString(sum[:])

	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketBlobs)
		if b.Get(sum[:]) != nil {
			// Content-addressed: identical content is already stored.
			return nil
		}
		return b.Put(sum[:], data)
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return handle, nil
}

// Cat returns a reader over the stored bytes for the given handle.
func (s *BoltContentStore) Cat(ctx context.Context, handle string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key, err := hex.DecodeString(handle)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, handle)
	}

	var data []byte
	err = s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketBlobs).Get(key)
		if v == nil {
			return fmt.Errorf("%w: %q", ErrNotFound, handle)
		}
		data = make([]byte, len(v))
		copy(data, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}
