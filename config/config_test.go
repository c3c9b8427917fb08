package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docvault-org/libdocvault-go/filecrypt"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultChunkSize, cfg.ChunkSize)
	assert.Equal(t, int64(DefaultSizeThreshold), cfg.SizeThreshold)
	assert.Equal(t, filecrypt.CipherAESGCM, cfg.Cipher)
	require.NoError(t, Validate(cfg))
}

func TestValidate(t *testing.T) {
	valid := Default()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"zero chunk size", func(c *Config) { c.ChunkSize = 0 }, ErrInvalidChunkSize},
		{"negative chunk size", func(c *Config) { c.ChunkSize = -1 }, ErrInvalidChunkSize},
		{"zero threshold", func(c *Config) { c.SizeThreshold = 0 }, ErrInvalidSizeThreshold},
		{"negative threshold", func(c *Config) { c.SizeThreshold = -4096 }, ErrInvalidSizeThreshold},
		{"unknown cipher", func(c *Config) { c.Cipher = filecrypt.Cipher(42) }, ErrInvalidCipher},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.ErrorIs(t, Validate(cfg), tt.wantErr)
		})
	}

	t.Run("xchacha is valid", func(t *testing.T) {
		cfg := valid
		cfg.Cipher = filecrypt.CipherXChaCha20
		assert.NoError(t, Validate(cfg))
	})
}
