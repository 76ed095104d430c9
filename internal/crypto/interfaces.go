package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_cipher_mock.go -package=mock

// VaultCipher encrypts and decrypts whole vault files.
//
// The on-disk framing is owned by the cipher: a vault file is the 16-byte IV
// followed by the AES-256-CBC ciphertext of the PKCS#7-padded plaintext.
// There is no header, version tag or authentication tag.
//
//	vault = IV(16) || AES-256-CBC(key, IV, PKCS7(plaintext))
type VaultCipher interface {
	// GenerateIV draws a fresh 16-byte initialization vector from the OS
	// CSPRNG. Every Encrypt call under the same key must use a new IV.
	GenerateIV() ([]byte, error)

	// Encrypt pads plaintext, encrypts it under key and iv and returns
	// iv || ciphertext. The result is deterministic for fixed inputs.
	// Returns ErrInvalidKeyFormat for a key that is not 32 bytes and
	// ErrInvalidIV for an IV that is not 16 bytes.
	Encrypt(plaintext []byte, key Key, iv []byte) ([]byte, error)

	// Seal generates a fresh IV and calls Encrypt with it.
	Seal(plaintext []byte, key Key) ([]byte, error)

	// Decrypt splits the IV off vault, decrypts the remainder under key and
	// strips the padding. Every failure (short or misaligned input, wrong key,
	// corrupted ciphertext) is reported as an error wrapping ErrDecryption;
	// partial plaintext is never returned.
	Decrypt(vault []byte, key Key) ([]byte, error)
}
