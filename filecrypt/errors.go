package filecrypt

import "errors"

var (
	// ErrEncryptionFailed indicates key/nonce generation or cipher setup failed.
	ErrEncryptionFailed = errors.New("filecrypt: encryption failed")

	// ErrDecryptionFailed indicates AEAD authentication failed during
	// decryption: tampered ciphertext, wrong key, or wrong nonce.
	ErrDecryptionFailed = errors.New("filecrypt: decryption failed")

	// ErrInvalidKey indicates the key is not base64 or has the wrong length.
	ErrInvalidKey = errors.New("filecrypt: invalid key")

	// ErrInvalidNonce indicates the nonce is not base64 or has the wrong length.
	ErrInvalidNonce = errors.New("filecrypt: invalid nonce")

	// ErrInvalidCiphertext indicates the ciphertext is shorter than the
	// authentication tag.
	ErrInvalidCiphertext = errors.New("filecrypt: invalid ciphertext")

	// ErrUnsupportedCipher indicates an unknown cipher scheme value.
	ErrUnsupportedCipher = errors.New("filecrypt: unsupported cipher scheme")
)
