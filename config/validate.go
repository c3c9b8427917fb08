package config

import (
	"fmt"

	"github.com/docvault-org/libdocvault-go/filecrypt"
)

// Validate checks that all configuration values are within acceptable
// ranges and returns the first error encountered, or nil if valid.
func Validate(cfg Config) error {
	if cfg.ChunkSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidChunkSize, cfg.ChunkSize)
	}

	if cfg.SizeThreshold <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSizeThreshold, cfg.SizeThreshold)
	}

	switch cfg.Cipher {
	case filecrypt.CipherAESGCM, filecrypt.CipherXChaCha20:
	default:
		return fmt.Errorf("%w: %d", ErrInvalidCipher, cfg.Cipher)
	}

	return nil
}
