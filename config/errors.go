package config

import "errors"

var (
	// ErrInvalidChunkSize indicates the ledger chunk cap is not positive.
	ErrInvalidChunkSize = errors.New("config: chunk size must be positive")

	// ErrInvalidSizeThreshold indicates the selection threshold is not positive.
	ErrInvalidSizeThreshold = errors.New("config: size threshold must be positive")

	// ErrInvalidCipher indicates the cipher scheme is not recognized.
	ErrInvalidCipher = errors.New("config: invalid cipher scheme")
)
