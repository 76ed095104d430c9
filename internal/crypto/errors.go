package crypto

import "errors"

var (
	// ErrInvalidKeyFormat is returned when a key is not exactly 32 bytes, or
	// when its hex form has an odd length or contains non-hex characters.
	ErrInvalidKeyFormat = errors.New("invalid key format")

	// ErrInvalidIV is returned by Encrypt when the IV is not 16 bytes long.
	ErrInvalidIV = errors.New("invalid initialization vector")

	// ErrDecryption is the umbrella error for every decrypt failure. The
	// specific cause is joined to it with %w.
	ErrDecryption = errors.New("decryption failed")
)

// Causes of ErrDecryption.
var (
	// ErrCiphertextTooShort means the vault is shorter than one IV plus one
	// cipher block.
	ErrCiphertextTooShort = errors.New("ciphertext too short")

	// ErrCiphertextNotAligned means the ciphertext after the IV is not a
	// multiple of the AES block size.
	ErrCiphertextNotAligned = errors.New("ciphertext is not a multiple of the block size")

	// ErrInvalidPadding means the PKCS#7 padding of the decrypted data is
	// inconsistent. With CBC this is how a wrong key or a corrupted last
	// block shows up.
	ErrInvalidPadding = errors.New("invalid padding")
)
