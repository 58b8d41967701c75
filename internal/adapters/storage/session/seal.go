package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

var errUnsealFailed = errors.New("sealed token failed to open")

// sealer encrypts bearer tokens before they touch disk. The session DB is
// the only client-side persistence in the app, and the token is the only
// secret in it.
type sealer struct {
	key [32]byte
}

// newSealer builds a sealer from a 64-hex-char key, or a random
// per-process key when keyHex is empty (sessions then die with the
// process).
func newSealer(keyHex string) (*sealer, error) {
	s := &sealer{}
	if keyHex == "" {
		if _, err := io.ReadFull(rand.Reader, s.key[:]); err != nil {
			return nil, fmt.Errorf("generate seal key: %w", err)
		}
		return s, nil
	}
	raw, err := hex.DecodeString(keyHex)
	if err != nil || len(raw) != 32 {
		return nil, errors.New("session seal key must be 64 hex characters (32 bytes)")
	}
	copy(s.key[:], raw)
	return s, nil
}

// seal returns nonce||ciphertext for the plaintext token.
func (s *sealer) seal(plaintext string) ([]byte, error) {
	var nonce [24]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &s.key), nil
}

// open reverses seal. Fails for truncated input, a foreign key, or any
// tampering.
func (s *sealer) open(sealed []byte) (string, error) {
	if len(sealed) < 24 {
		return "", errUnsealFailed
	}
	var nonce [24]byte
	copy(nonce[:], sealed[:24])
	plaintext, ok := secretbox.Open(nil, sealed[24:], &nonce, &s.key)
	if !ok {
		return "", errUnsealFailed
	}
	return string(plaintext), nil
}
