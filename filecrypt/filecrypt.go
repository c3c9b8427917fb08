// Package filecrypt implements the symmetric encryption engine for docvault
// content. Every Encrypt call draws a fresh random key and nonce; the engine
// never accepts caller-supplied key material for encryption and never
// persists any. Ciphertext is authenticated: tampering is detected at
// decryption time, which fails rather than returning corrupted plaintext.
package filecrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// Cipher selects the AEAD scheme used by an Engine.
type Cipher int32

const (
	// CipherAESGCM is AES-256-GCM with a 12-byte nonce (default).
	CipherAESGCM Cipher = iota

	// CipherXChaCha20 is XChaCha20-Poly1305 with a 24-byte nonce.
	CipherXChaCha20
)

// KeyLen is the symmetric key length in bytes for both schemes.
const KeyLen = 32

// Sealed holds the output of an encryption operation. Key and Nonce are in
// base64 transport form; the caller is responsible for persisting them,
// the engine retains nothing.
type Sealed struct {
	// Ciphertext is the AEAD output with the authentication tag appended.
	Ciphertext []byte

	// Key is the fresh random 32-byte key, base64-encoded.
	Key string

	// Nonce is the fresh random nonce, base64-encoded.
	Nonce string
}

// Engine encrypts and decrypts opaque byte buffers under a fixed AEAD
// scheme chosen at construction time.
type Engine struct {
	scheme Cipher
}

// New creates an Engine for the given cipher scheme.
func New(scheme Cipher) (*Engine, error) {
	switch scheme {
	case CipherAESGCM, CipherXChaCha20:
		return &Engine{scheme: scheme}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedCipher, scheme)
	}
}

// Scheme returns the engine's cipher scheme.
func (e *Engine) Scheme() Cipher { return e.scheme }

// Encrypt encrypts plaintext under a fresh random key and nonce.
// The same pair is never produced twice; callers must keep the returned
// key and nonce to decrypt later.
func (e *Engine) Encrypt(plaintext []byte) (*Sealed, error) {
	key := make([]byte, KeyLen)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("%w: key generation: %w", ErrEncryptionFailed, err)
	}

	aead, err := e.aead(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("%w: nonce generation: %w", ErrEncryptionFailed, err)
	}

	ciphertext := aead.Seal(nil, nonce, plaintext, nil)

	return &Sealed{
		Ciphertext: ciphertext,
		Key:        base64.StdEncoding.EncodeToString(key),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
	}, nil
}

// Decrypt authenticates and decrypts ciphertext with the base64 key and
// nonce returned by Encrypt. Any tampering with the ciphertext, or a wrong
// key or nonce, fails with ErrDecryptionFailed; partial plaintext is never
// returned.
func (e *Engine) Decrypt(ciphertext []byte, key, nonce string) ([]byte, error) {
	keyBytes, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		return nil, fmt.Errorf("%w: not base64: %w", ErrInvalidKey, err)
	}
	if len(keyBytes) != KeyLen {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKey, len(keyBytes), KeyLen)
	}

	aead, err := e.aead(keyBytes)
	if err != nil {
		return nil, err
	}

	nonceBytes, err := base64.StdEncoding.DecodeString(nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: not base64: %w", ErrInvalidNonce, err)
	}
	if len(nonceBytes) != aead.NonceSize() {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidNonce, len(nonceBytes), aead.NonceSize())
	}

	if len(ciphertext) < aead.Overhead() {
		return nil, ErrInvalidCiphertext
	}

	plaintext, err := aead.Open(nil, nonceBytes, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	// Normalize nil to empty slice for consistency.
	if plaintext == nil {
		plaintext = []byte{}
	}
	return plaintext, nil
}

// aead constructs the AEAD primitive for the engine's scheme.
func (e *Engine) aead(key []byte) (cipher.AEAD, error) {
	switch e.scheme {
	case CipherAESGCM:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("%w: AES cipher creation failed: %v", ErrEncryptionFailed, err)
		}
		gcm, err := cipher.NewGCM(block)
		if err != nil {
			return nil, fmt.Errorf("%w: GCM creation failed: %v", ErrEncryptionFailed, err)
		}
		return gcm, nil
	case CipherXChaCha20:
		aead, err := chacha20poly1305.NewX(key)
		if err != nil {
			return nil, fmt.Errorf("%w: XChaCha20 creation failed: %v", ErrEncryptionFailed, err)
		}
		return aead, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedCipher, e.scheme)
	}
}
