// Package cas adapts an injected content-addressed blob store to the
// docvault upload/download contract. The store derives retrieval handles
// from content hashes; this adapter returns them verbatim and never invents
// its own.
package cas

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/docvault-org/libdocvault-go/backend"
)

// LocatorScheme prefixes CAS locators, e.g. "cas://Qm...".
const LocatorScheme = "cas://"

// Receipt is the outcome of a successful CAS upload.
type Receipt struct {
	// Handle is the store-derived content handle, verbatim.
	Handle string

	// Locator is the handle in URI form.
	Locator string
}

// Adapter wraps an injected ContentStore client.
type Adapter struct {
	store backend.ContentStore
}

// New creates an Adapter over the given store client.
func New(store backend.ContentStore) (*Adapter, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: nil content store", backend.ErrUnavailable)
	}
	return &Adapter{store: store}, nil
}

// Upload stores data and returns the store's handle. Progress is reported
// once at the start and once on completion; the byte count never exceeds
// the total.
func (a *Adapter) Upload(ctx context.Context, data []byte, onProgress backend.ProgressFunc) (*Receipt, error) {
	if len(data) == 0 {
		return nil, backend.ErrEmptyContent
	}
	total := int64(len(data))
	onProgress.Report(0, total)

	handle, err := a.store.AddBytes(ctx, data)
	if err != nil {
		return nil, classify(err, "add bytes")
	}
	onProgress.Report(total, total)

	return &Receipt{
		Handle:  handle,
		Locator: LocatorScheme + handle,
	}, nil
}

// Download retrieves the stored bytes for handle, draining the store's
// stream in delivery order. Returns backend.ErrNotFound if the handle does
// not resolve.
func (a *Adapter) Download(ctx context.Context, handle string) ([]byte, error) {
	r, err := a.store.Cat(ctx, handle)
	if err != nil {
		return nil, classify(err, "cat")
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, classify(err, "read stream")
	}
	return data, nil
}

// classify maps injected-client failures onto the backend taxonomy.
// ErrNotFound and ErrUnavailable pass through; anything else is a
// transport fault.
func classify(err error, op string) error {
	if errors.Is(err, backend.ErrNotFound) || errors.Is(err, backend.ErrUnavailable) {
		return fmt.Errorf("cas: %s: %w", op, err)
	}
	return fmt.Errorf("cas: %s: %w: %w", op, backend.ErrTransport, err)
}
