// Package backend defines the injected storage client contracts consumed by
// the docvault adapters: a content-addressed blob store and a ledger file
// service with a hard per-write payload cap. The package carries the shared
// error taxonomy and progress types; it implements no network transport of
// its own.
package backend

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ContentStore is the injected client for the content-addressed blob store.
// The store derives the retrieval handle from the content hash itself; no
// adapter ever invents a handle.
type ContentStore interface {
	// AddBytes stores data and returns the store-derived content handle.
	AddBytes(ctx context.Context, data []byte) (string, error)

	// Cat returns a reader over the stored bytes for the given handle.
	// Chunks are delivered in order; draining the reader yields the exact
	// stored content. Returns ErrNotFound if the handle does not resolve.
	Cat(ctx context.Context, handle string) (io.ReadCloser, error)
}

// LedgerFileService is the injected client for the ledger-backed file
// service. The remote object is a single mutable append-only file: Create
// opens it with the first payload, Append extends it, and write ordering is
// part of the wire contract.
type LedgerFileService interface {
	// Create opens a new remote file containing contents and returns its
	// identifier. The memo, if non-empty, is attached to the file.
	Create(ctx context.Context, contents []byte, memo string) (FileID, error)

	// Append extends the remote file with contents. The call returns only
	// after the write is accepted.
	Append(ctx context.Context, id FileID, contents []byte) error

	// Contents returns the full stored bytes for the given file.
	// Returns ErrNotFound if the identifier is unknown.
	Contents(ctx context.Context, id FileID) ([]byte, error)
}

// FileID identifies a file on the ledger as a shard.realm.num triplet.
type FileID struct {
	Shard int64
	Realm int64
	Num   int64
}

// String formats the identifier in its canonical "shard.realm.num" form.
func (id FileID) String() string {
	return fmt.Sprintf("%d.%d.%d", id.Shard, id.Realm, id.Num)
}

// ParseFileID parses a "shard.realm.num" triplet of non-negative integers.
// Returns ErrInvalidFileID for any other shape; this strictness is what
// makes lexical backend detection sound (content-store handles never parse).
func ParseFileID(s string) (FileID, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return FileID{}, fmt.Errorf("%w: %q", ErrInvalidFileID, s)
	}
	nums := make([]int64, 3)
	for i, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil || n < 0 {
			return FileID{}, fmt.Errorf("%w: %q", ErrInvalidFileID, s)
		}
		nums[i] = n
	}
	return FileID{Shard: nums[0], Realm: nums[1], Num: nums[2]}, nil
}

// Progress reports the state of an in-flight upload. Within one upload,
// BytesTransferred is monotonically non-decreasing and never exceeds
// TotalBytes.
type Progress struct {
	BytesTransferred int64
	TotalBytes       int64
	Percentage       float64
}

// ProgressFunc receives progress events during an upload. May be nil.
type ProgressFunc func(Progress)

// Report invokes the callback if set, computing the percentage from the
// byte counts. A zero TotalBytes reports 100%.
func (f ProgressFunc) Report(transferred, total int64) {
	if f == nil {
		return
	}
	if transferred > total {
		transferred = total
	}
	pct := 100.0
	if total > 0 {
		pct = float64(transferred) / float64(total) * 100
	}
	f(Progress{BytesTransferred: transferred, TotalBytes: total, Percentage: pct})
}
