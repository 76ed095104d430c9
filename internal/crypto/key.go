// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/hex"
	"fmt"
	"runtime"
	"strings"
)

// KeySize is the length of an AES-256 key in bytes.
const KeySize = 32

// Key is a raw AES-256 vault key. It lives only as long as the session that
// decoded it and must be wiped with [Key.Wipe] when no longer needed.
type Key []byte

// ParseKey decodes the operator-supplied hex string into a [Key].
//
// The input must be exactly 64 hex characters (surrounding whitespace is
// ignored). Odd length, non-hex characters and any decoded length other than
// [KeySize] are reported as [ErrInvalidKeyFormat].
func ParseKey(s string) (Key, error) {
	s = strings.TrimSpace(s)

	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeyFormat, err)
	}
	if len(raw) != KeySize {
		SecureWipe(raw)
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyFormat, len(raw), KeySize)
	}

	return Key(raw), nil
}

// Valid reports whether k has the AES-256 key length.
func (k Key) Valid() bool {
	return len(k) == KeySize
}

// Wipe overwrites the key bytes with zeros.
func (k Key) Wipe() {
	SecureWipe(k)
}

// SecureWipe zeroes b in a way the compiler cannot drop.
func SecureWipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
