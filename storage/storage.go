// Package storage is the docvault storage router. It composes the
// encryption engine with the two backend adapters (the content-addressed
// store and the chunked ledger file service), selecting a backend per
// upload, driving the encrypt/compress pipeline, and mapping every backend
// outcome into a uniform UploadResult. Downloads resolve the backend from
// caller-recorded metadata, falling back to lexical handle detection.
package storage

import (
	"errors"
	"fmt"
	"io"

	"github.com/docvault-org/libdocvault-go/backend"
	"github.com/docvault-org/libdocvault-go/cas"
	"github.com/docvault-org/libdocvault-go/config"
	"github.com/docvault-org/libdocvault-go/filecrypt"
	"github.com/docvault-org/libdocvault-go/ledgerfile"
)

// Backend identifies which storage backend holds a piece of content.
type Backend int32

const (
	// BackendUnknown is the zero value; download options carrying it
	// trigger lexical handle detection.
	BackendUnknown Backend = iota

	// BackendCAS is the content-addressed blob store.
	BackendCAS

	// BackendChunked is the ledger-backed chunked file service.
	BackendChunked
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendCAS:
		return "cas"
	case BackendChunked:
		return "chunked"
	default:
		return "unknown"
	}
}

// Clients carries the injected backend clients. A nil ContentStore degrades
// the router to "CAS unavailable" without affecting ledger operations, and
// vice versa; at least one client must be set.
type Clients struct {
	ContentStore backend.ContentStore
	FileService  backend.LedgerFileService
}

// Router is the public storage surface. Construct with New; every call owns
// its buffers and counters, so independent uploads and downloads may run
// concurrently without coordination.
type Router struct {
	cfg     config.Config
	crypt   *filecrypt.Engine
	cas     *cas.Adapter
	ledger  *ledgerfile.Adapter
	clients Clients
}

// New constructs a Router from validated configuration and injected clients.
// Construction is the explicit initialization point: there is no lazy
// first-use setup, so tests can substitute fakes deterministically.
func New(cfg config.Config, clients Clients) (*Router, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	if clients.ContentStore == nil && clients.FileService == nil {
		return nil, fmt.Errorf("%w: no backend clients", backend.ErrUnavailable)
	}

	crypt, err := filecrypt.New(cfg.Cipher)
	if err != nil {
		return nil, err
	}

	r := &Router{cfg: cfg, crypt: crypt, clients: clients}
	if clients.ContentStore != nil {
		r.cas, err = cas.New(clients.ContentStore)
		if err != nil {
			return nil, err
		}
	}
	if clients.FileService != nil {
		r.ledger, err = ledgerfile.New(clients.FileService, cfg.ChunkSize)
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Close releases any injected client that is closable. The router itself
// holds no other long-lived state.
func (r *Router) Close() error {
	var errs []error
	if c, ok := r.clients.ContentStore.(io.Closer); ok {
		errs = append(errs, c.Close())
	}
	if c, ok := r.clients.FileService.(io.Closer); ok {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// Select chooses the backend for a payload of the given size. Deterministic
// and stateless: an explicit chunked preference or a size below the
// configured threshold selects the ledger backend; a size at or above the
// threshold selects CAS.
func (r *Router) Select(size int64, preferChunked bool) Backend {
	if preferChunked || size < r.cfg.SizeThreshold {
		return BackendChunked
	}
	return BackendCAS
}

// DetectBackend infers the backend from the lexical shape of a content
// handle: a dotted triplet of integers is a ledger file identifier,
// anything else is a CAS handle. Every handle either backend's upload can
// produce routes back to that backend. Prefer recording UploadResult.Backend
// at upload time and passing it into DownloadOptions; detection is the
// fallback when that metadata was lost.
func DetectBackend(handle string) Backend {
	if _, err := backend.ParseFileID(handle); err == nil {
		return BackendChunked
	}
	return BackendCAS
}
