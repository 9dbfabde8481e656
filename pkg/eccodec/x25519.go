package eccodec

import (
	"io"

	"github.com/keyfold/ec-codec-go/pkg/eccodec/internal/backend"
)

// GenerateX25519Key creates a fresh curve25519 key pair from the provided
// randomness source. The source is passed explicitly rather than read from
// process-wide state; use crypto/rand.Reader in production.
func GenerateX25519Key(rand io.Reader) (*X25519Key, error) {
	const op = "GenerateX25519Key"
	if rand == nil {
		return nil, errorf(op, "%w: nil randomness source", ErrInvalidInput)
	}
	priv, pub, err := backend.X25519KeyPair(rand)
	if err != nil {
		return nil, errorf(op, "%w: %v", ErrProviderFailure, err)
	}
	k := newX25519Key()
	k.PrivateKey = priv
	k.PublicValue = pub
	return k, nil
}

// X25519KeyFromPrivateKey derives the public value for a raw curve25519
// private scalar and returns the assembled key pair.
func X25519KeyFromPrivateKey(priv *[X25519PrivKeySize]byte) (*X25519Key, error) {
	const op = "X25519KeyFromPrivateKey"
	if priv == nil {
		return nil, errorf(op, "%w: nil private key", ErrInvalidInput)
	}
	pub, err := backend.X25519Public(priv)
	if err != nil {
		return nil, errorf(op, "%w: %v", ErrProviderFailure, err)
	}
	k := newX25519Key()
	k.PrivateKey = *priv
	k.PublicValue = pub
	return k, nil
}
