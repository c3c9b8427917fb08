package ledgerfile

import (
	"errors"
	"fmt"

	"github.com/docvault-org/libdocvault-go/backend"
)

var (
	// ErrInvalidChunkSize indicates the chunk size is not a positive integer.
	ErrInvalidChunkSize = errors.New("ledgerfile: chunk size must be positive")

	// ErrInvalidResumeOffset indicates a resume offset outside [1, totalChunks).
	ErrInvalidResumeOffset = errors.New("ledgerfile: invalid resume offset")
)

// PartialUploadError reports a mid-stream append failure. ChunksDone counts
// the chunks durably written (the create plus accepted appends); the remote
// file exists and holds exactly those chunks. The adapter never retries and
// never deletes the partial file; whether the ledger's append is idempotent
// on retry is unverified, so resumption is a caller decision (see ResumeAt).
type PartialUploadError struct {
	FileID      backend.FileID
	ChunksDone  int
	TotalChunks int
	Err         error
}

func (e *PartialUploadError) Error() string {
	return fmt.Sprintf("ledgerfile: upload of %s interrupted after %d/%d chunks: %v",
		e.FileID, e.ChunksDone, e.TotalChunks, e.Err)
}

func (e *PartialUploadError) Unwrap() error { return e.Err }
