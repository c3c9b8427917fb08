// Package config holds the construction-time configuration for the docvault
// storage router: the ledger's per-write payload cap, the backend selection
// size threshold, and the cipher scheme. All values are named constants
// here so no call site carries a duplicate literal.
package config

import "github.com/docvault-org/libdocvault-go/filecrypt"

const (
	// DefaultChunkSize is the ledger backend's hard per-write payload cap
	// in bytes. Content larger than one chunk is uploaded as a create
	// followed by ordered appends.
	DefaultChunkSize = 4096

	// DefaultSizeThreshold is the backend selection boundary in bytes:
	// payloads below it go to the ledger backend, payloads at or above it
	// go to the content-addressed store.
	DefaultSizeThreshold = 4096
)

// Config carries the router's construction-time constants.
type Config struct {
	// ChunkSize is the ledger per-write payload cap in bytes.
	ChunkSize int

	// SizeThreshold is the backend selection boundary in bytes.
	SizeThreshold int64

	// Cipher selects the encryption engine's AEAD scheme.
	Cipher filecrypt.Cipher
}

// Default returns the configuration with all defaults applied.
func Default() Config {
	return Config{
		ChunkSize:     DefaultChunkSize,
		SizeThreshold: DefaultSizeThreshold,
		Cipher:        filecrypt.CipherAESGCM,
	}
}
