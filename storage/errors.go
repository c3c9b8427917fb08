package storage

import "errors"

var (
	// ErrUnknownBackend indicates a Backend value outside the known set.
	ErrUnknownBackend = errors.New("storage: unknown backend")

	// ErrDecompressionFailed indicates the payload is not valid zstd;
	// most often the upload was not compressed or decryption was skipped.
	ErrDecompressionFailed = errors.New("storage: decompression failed")
)
