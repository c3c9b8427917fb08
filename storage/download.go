package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/docvault-org/libdocvault-go/backend"
)

// DownloadOptions controls one download call.
type DownloadOptions struct {
	// Backend is the backend recorded at upload time. Leave it
	// BackendUnknown to fall back to lexical handle detection.
	Backend Backend

	// Decrypt reverses the upload-time encryption using the key and
	// nonce returned by Upload; the router caches no key material
	// across calls.
	Decrypt       bool
	EncryptionKey string
	EncryptionIV  string

	// Decompress reverses upload-time zstd compression, applied after
	// decryption.
	Decompress bool
}

// Download retrieves the content for a handle. A handle that legitimately
// does not resolve returns (nil, nil), distinguishing absence from a
// transport fault, which propagates as an error.
func (r *Router) Download(ctx context.Context, handle string, opts DownloadOptions) (data []byte, err error) {
	defer func() {
		if p := recover(); p != nil {
			data, err = nil, fmt.Errorf("%w: client panic: %v", backend.ErrTransport, p)
		}
	}()

	chosen := opts.Backend
	if chosen == BackendUnknown {
		chosen = DetectBackend(handle)
	}

	var payload []byte
	switch chosen {
	case BackendChunked:
		if r.ledger == nil {
			return nil, fmt.Errorf("%w: ledger client not configured", backend.ErrUnavailable)
		}
		id, perr := backend.ParseFileID(handle)
		if perr != nil {
			// A handle that cannot name a ledger file resolves to nothing.
			return nil, nil
		}
		payload, err = r.ledger.Download(ctx, id)
	case BackendCAS:
		if r.cas == nil {
			return nil, fmt.Errorf("%w: content store not configured", backend.ErrUnavailable)
		}
		payload, err = r.cas.Download(ctx, handle)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownBackend, chosen)
	}

	if errors.Is(err, backend.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if opts.Decrypt {
		payload, err = r.crypt.Decrypt(payload, opts.EncryptionKey, opts.EncryptionIV)
		if err != nil {
			return nil, err
		}
	}

	if opts.Decompress {
		payload, err = decompress(payload)
		if err != nil {
			return nil, err
		}
	}

	return payload, nil
}
