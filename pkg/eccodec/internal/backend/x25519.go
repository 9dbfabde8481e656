package backend

import (
	"io"

	"golang.org/x/crypto/curve25519"
)

// X25519KeyPair generates a raw curve25519 key pair from the provided
// randomness source. The private scalar is returned exactly as drawn;
// clamping happens inside the scalar multiplication.
func X25519KeyPair(rand io.Reader) (priv, pub [32]byte, err error) {
	if _, err = io.ReadFull(rand, priv[:]); err != nil {
		return priv, pub, err
	}
	out, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	if err != nil {
		return priv, pub, err
	}
	copy(pub[:], out)
	return priv, pub, nil
}

// X25519Public derives the raw public value for a curve25519 private scalar.
func X25519Public(priv *[32]byte) (pub [32]byte, err error) {
	out, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	if err != nil {
		return pub, err
	}
	copy(pub[:], out)
	return pub, nil
}
