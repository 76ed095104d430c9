// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

// IVSize is the length of the CBC initialization vector stored at the start
// of every vault file.
const IVSize = aes.BlockSize

// aesCBCCipher is the AES-256-CBC implementation of [VaultCipher].
type aesCBCCipher struct {
	// random is the IV source. Always crypto/rand outside of tests.
	random io.Reader
}

// NewVaultCipher constructs the AES-256-CBC [VaultCipher] that draws IVs
// from crypto/rand.
func NewVaultCipher() VaultCipher {
	return &aesCBCCipher{random: rand.Reader}
}

// GenerateIV implements [VaultCipher].
func (c *aesCBCCipher) GenerateIV() ([]byte, error) {
	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(c.random, iv); err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}
	return iv, nil
}

// Encrypt implements [VaultCipher].
func (c *aesCBCCipher) Encrypt(plaintext []byte, key Key, iv []byte) ([]byte, error) {
	if !key.Valid() {
		return nil, fmt.Errorf("%w: key is %d bytes, want %d", ErrInvalidKeyFormat, len(key), KeySize)
	}
	if len(iv) != IVSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidIV, len(iv), IVSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	defer SecureWipe(padded)

	out := make([]byte, IVSize+len(padded))
	copy(out, iv)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[IVSize:], padded)

	return out, nil
}

// Seal implements [VaultCipher].
func (c *aesCBCCipher) Seal(plaintext []byte, key Key) ([]byte, error) {
	iv, err := c.GenerateIV()
	if err != nil {
		return nil, err
	}
	return c.Encrypt(plaintext, key, iv)
}

// Decrypt implements [VaultCipher].
func (c *aesCBCCipher) Decrypt(vault []byte, key Key) ([]byte, error) {
	if !key.Valid() {
		return nil, fmt.Errorf("%w: key is %d bytes, want %d", ErrInvalidKeyFormat, len(key), KeySize)
	}
	if len(vault) < IVSize+aes.BlockSize {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, ErrCiphertextTooShort)
	}

	iv, ciphertext := vault[:IVSize], vault[IVSize:]
	if len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, ErrCiphertextNotAligned)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: create cipher: %w", ErrDecryption, err)
	}

	plain := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ciphertext)

	unpadded, err := pkcs7Unpad(plain, aes.BlockSize)
	if err != nil {
		SecureWipe(plain)
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	return unpadded, nil
}

// pkcs7Pad returns a copy of data padded to a multiple of blockSize. A full
// block of padding is added when data is already aligned.
func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+n)
	copy(out, data)
	copy(out[len(data):], bytes.Repeat([]byte{byte(n)}, n))
	return out
}

// pkcs7Unpad validates and strips PKCS#7 padding. Every padding byte is
// checked, not only the last one.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrInvalidPadding
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, ErrInvalidPadding
	}

	var bad byte
	for _, b := range data[len(data)-n:] {
		bad |= b ^ byte(n)
	}
	if bad != 0 {
		return nil, ErrInvalidPadding
	}

	return data[:len(data)-n], nil
}
