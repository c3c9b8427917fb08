package storage

import (
	"context"
	"fmt"

	"github.com/docvault-org/libdocvault-go/backend"
)

// UploadOptions controls one upload call.
type UploadOptions struct {
	// Encrypt runs the payload through the encryption engine; the fresh
	// key and nonce are returned in the result and never retained.
	Encrypt bool

	// PreferChunked forces the ledger backend regardless of size.
	PreferChunked bool

	// Memo is attached to the ledger file on create; ignored by CAS.
	Memo string

	// Compress applies zstd before encryption. The caller must request
	// the symmetric Decompress on download.
	Compress bool

	// OnProgress receives transfer progress events. May be nil.
	OnProgress backend.ProgressFunc
}

// UploadResult is the uniform outcome of an upload. Success implies
// ContentHandle and Backend are set; failure implies Err is set. The caller
// persists ContentHandle plus EncryptionKey/EncryptionIV; the router retains
// none of it.
type UploadResult struct {
	Success       bool
	Backend       Backend
	ContentHandle string
	Locator       string
	EncryptionKey string
	EncryptionIV  string
	Compressed    bool
	Err           error
}

// Upload stores data on the backend chosen by Select, optionally
// compressing and encrypting it first. The whole payload is held in memory;
// the subsystem targets document-class artifacts, not unbounded media.
//
// Every failure, including a panic from a misbehaving injected client, is
// mapped into the returned result; nothing escapes this boundary.
func (r *Router) Upload(ctx context.Context, data []byte, opts UploadOptions) (result UploadResult) {
	chosen := r.Select(int64(len(data)), opts.PreferChunked)
	result = UploadResult{Backend: chosen}

	defer func() {
		if p := recover(); p != nil {
			result = UploadResult{Backend: chosen, Err: fmt.Errorf("%w: client panic: %v", backend.ErrTransport, p)}
		}
	}()

	payload := data
	if opts.Compress {
		compressed, err := compress(payload)
		if err != nil {
			result.Err = err
			return result
		}
		payload = compressed
	}

	if opts.Encrypt {
		sealed, err := r.crypt.Encrypt(payload)
		if err != nil {
			result.Err = err
			return result
		}
		payload = sealed.Ciphertext
		result.EncryptionKey = sealed.Key
		result.EncryptionIV = sealed.Nonce
	}

	switch chosen {
	case BackendChunked:
		if r.ledger == nil {
			result.Err = fmt.Errorf("%w: ledger client not configured", backend.ErrUnavailable)
			return result
		}
		rcpt, err := r.ledger.Upload(ctx, payload, opts.Memo, opts.OnProgress)
		if err != nil {
			result.Err = err
			return result
		}
		result.ContentHandle = rcpt.Handle
		result.Locator = rcpt.Locator
	case BackendCAS:
		if r.cas == nil {
			result.Err = fmt.Errorf("%w: content store not configured", backend.ErrUnavailable)
			return result
		}
		rcpt, err := r.cas.Upload(ctx, payload, opts.OnProgress)
		if err != nil {
			result.Err = err
			return result
		}
		result.ContentHandle = rcpt.Handle
		result.Locator = rcpt.Locator
	default:
		result.Err = fmt.Errorf("%w: %d", ErrUnknownBackend, chosen)
		return result
	}

	result.Success = true
	result.Compressed = opts.Compress
	return result
}
