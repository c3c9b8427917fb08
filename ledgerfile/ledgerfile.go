// Package ledgerfile adapts an injected ledger file service to the docvault
// upload/download contract. The ledger enforces a hard per-write payload
// cap, so content is split into chunks: a create with the first chunk opens
// the remote file, and every remaining chunk is appended strictly in order.
// The remote object is a single append-only file, not an unordered bag of
// chunks, so append i+1 is never issued before append i is accepted.
package ledgerfile

import (
	"context"
	"errors"
	"fmt"

	"github.com/docvault-org/libdocvault-go/backend"
)

// LocatorScheme prefixes ledger locators, e.g. "ledger://0.0.4521".
const LocatorScheme = "ledger://"

// Receipt is the outcome of a successful ledger upload.
type Receipt struct {
	// FileID is the ledger file identifier obtained from the create.
	FileID backend.FileID

	// Handle is FileID in its canonical string form, the durable
	// content handle.
	Handle string

	// Locator is the handle in URI form.
	Locator string
}

// Adapter wraps an injected LedgerFileService client, enforcing the
// per-write chunk cap.
type Adapter struct {
	svc       backend.LedgerFileService
	chunkSize int
}

// New creates an Adapter over the given file service client. chunkSize is
// the ledger's hard per-write payload cap.
func New(svc backend.LedgerFileService, chunkSize int) (*Adapter, error) {
	if svc == nil {
		return nil, fmt.Errorf("%w: nil ledger file service", backend.ErrUnavailable)
	}
	if chunkSize <= 0 {
		return nil, ErrInvalidChunkSize
	}
	return &Adapter{svc: svc, chunkSize: chunkSize}, nil
}

// ChunkSize returns the per-write payload cap the adapter enforces.
func (a *Adapter) ChunkSize() int { return a.chunkSize }

// Upload splits data into chunks under the payload cap, creates the remote
// file with the first chunk (and optional memo), and appends the rest
// strictly in order. Progress is reported after the create and after every
// accepted append.
//
// A failure after the create returns *PartialUploadError carrying the count
// of chunks written; no retry and no deletion of the partial remote file is
// attempted.
func (a *Adapter) Upload(ctx context.Context, data []byte, memo string, onProgress backend.ProgressFunc) (*Receipt, error) {
	if len(data) == 0 {
		return nil, backend.ErrEmptyContent
	}
	chunks, err := SplitIntoChunks(data, a.chunkSize)
	if err != nil {
		return nil, err
	}
	total := int64(len(data))
	onProgress.Report(0, total)

	id, err := a.svc.Create(ctx, chunks[0], memo)
	if err != nil {
		return nil, classify(err, "create")
	}
	written := int64(len(chunks[0]))
	onProgress.Report(written, total)

	if err := a.appendFrom(ctx, id, chunks, 1, &written, total, onProgress); err != nil {
		return nil, err
	}

	return receipt(id), nil
}

// ResumeAt continues a previously interrupted upload of data to the file id,
// appending from chunk index chunksDone onward. The caller supplies the
// ChunksDone value recorded from a PartialUploadError; the adapter never
// resumes on its own.
func (a *Adapter) ResumeAt(ctx context.Context, id backend.FileID, data []byte, chunksDone int, onProgress backend.ProgressFunc) (*Receipt, error) {
	if len(data) == 0 {
		return nil, backend.ErrEmptyContent
	}
	chunks, err := SplitIntoChunks(data, a.chunkSize)
	if err != nil {
		return nil, err
	}
	if chunksDone < 1 || chunksDone >= len(chunks) {
		return nil, fmt.Errorf("%w: %d of %d chunks", ErrInvalidResumeOffset, chunksDone, len(chunks))
	}

	total := int64(len(data))
	var written int64
	for _, c := range chunks[:chunksDone] {
		written += int64(len(c))
	}
	onProgress.Report(written, total)

	if err := a.appendFrom(ctx, id, chunks, chunksDone, &written, total, onProgress); err != nil {
		return nil, err
	}
	return receipt(id), nil
}

// appendFrom issues appends for chunks[from:] strictly sequentially,
// stopping at the first failure. Cancellation is checked before each write;
// an abandoned upload leaves already-accepted chunks on the ledger.
func (a *Adapter) appendFrom(ctx context.Context, id backend.FileID, chunks [][]byte, from int, written *int64, total int64, onProgress backend.ProgressFunc) error {
	for i := from; i < len(chunks); i++ {
		if err := ctx.Err(); err != nil {
			return &PartialUploadError{FileID: id, ChunksDone: i, TotalChunks: len(chunks), Err: err}
		}
		if err := a.svc.Append(ctx, id, chunks[i]); err != nil {
			return &PartialUploadError{FileID: id, ChunksDone: i, TotalChunks: len(chunks), Err: classify(err, "append")}
		}
		*written += int64(len(chunks[i]))
		onProgress.Report(*written, total)
	}
	return nil
}

// Download resolves the file identifier and returns the stored bytes.
// Returns backend.ErrNotFound if the identifier is unknown.
func (a *Adapter) Download(ctx context.Context, id backend.FileID) ([]byte, error) {
	data, err := a.svc.Contents(ctx, id)
	if err != nil {
		return nil, classify(err, "contents")
	}
	return data, nil
}

func receipt(id backend.FileID) *Receipt {
	handle := id.String()
	return &Receipt{FileID: id, Handle: handle, Locator: LocatorScheme + handle}
}

// classify maps injected-client failures onto the backend taxonomy.
func classify(err error, op string) error {
	if errors.Is(err, backend.ErrNotFound) || errors.Is(err, backend.ErrUnavailable) {
		return fmt.Errorf("ledgerfile: %s: %w", op, err)
	}
	return fmt.Errorf("ledgerfile: %s: %w: %w", op, backend.ErrTransport, err)
}
