package eccodec

import (
	"crypto/subtle"
	"runtime"
)

// Raw curve25519 key sizes in bytes.
const (
	X25519PrivKeySize = 32
	X25519PubKeySize  = 32
)

// EcKey is the generic elliptic curve key structure used across the library.
// For NIST curves PubX and PubY each hold one fixed-width coordinate; for
// Curve25519 the public key is x only, so PubX holds the 32-byte public value
// and PubY stays empty.
type EcKey struct {
	Curve Curve
	PubX  []byte
	PubY  []byte
	Priv  []byte
}

// X25519Key holds a raw curve25519 key pair. Both halves are fixed-length by
// construction and never partially populated.
//
// Call Free() once the key is no longer needed so the private scalar is wiped;
// a finalizer is set as a safety net.
type X25519Key struct {
	PrivateKey  [X25519PrivKeySize]byte
	PublicValue [X25519PubKeySize]byte
}

// zeroizeBytes overwrites the provided slice with zeros and prevents compiler
// dead store elimination using runtime.KeepAlive.
func zeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}

// Free zeroizes the private scalar. Safe to call more than once.
func (k *X25519Key) Free() {
	if k == nil {
		return
	}
	zeroizeBytes(k.PrivateKey[:])
	runtime.SetFinalizer(k, nil)
}

// Equal compares two keys, private halves included, in constant time.
func (k *X25519Key) Equal(other *X25519Key) bool {
	if k == nil || other == nil {
		return false
	}
	priv := subtle.ConstantTimeCompare(k.PrivateKey[:], other.PrivateKey[:])
	pub := subtle.ConstantTimeCompare(k.PublicValue[:], other.PublicValue[:])
	return priv&pub == 1
}

// EcKeyFromX25519Key converts a raw curve25519 key pair into the generic key
// structure.
func EcKeyFromX25519Key(k *X25519Key) *EcKey {
	ec := &EcKey{Curve: Curve25519}
	// Curve25519 public keys are x only, never (x, y).
	ec.PubX = append(ec.PubX, k.PublicValue[:]...)
	ec.Priv = append(ec.Priv, k.PrivateKey[:]...)
	return ec
}

// X25519KeyFromEcKey extracts the raw curve25519 key pair from a generic key.
// The key must be a curve25519 key with an empty y coordinate and at least
// 32 bytes in each of PubX and Priv.
func X25519KeyFromEcKey(k *EcKey) (*X25519Key, error) {
	const op = "X25519KeyFromEcKey"
	if k == nil {
		return nil, errorf(op, "%w: nil key", ErrInvalidInput)
	}
	if k.Curve != Curve25519 {
		return nil, errorf(op, "%w: key is on %v", ErrWrongCurve, k.Curve)
	}
	if len(k.PubY) != 0 {
		return nil, errorf(op, "%w: pub_y is unexpectedly set", ErrUnexpectedCoordinate)
	}
	if len(k.PubX) < X25519PubKeySize {
		return nil, errorf(op, "%w: pub_x is %d bytes, want at least %d", ErrLengthMismatch, len(k.PubX), X25519PubKeySize)
	}
	if len(k.Priv) < X25519PrivKeySize {
		return nil, errorf(op, "%w: priv is %d bytes, want at least %d", ErrLengthMismatch, len(k.Priv), X25519PrivKeySize)
	}
	out := newX25519Key()
	copy(out.PublicValue[:], k.PubX[:X25519PubKeySize])
	copy(out.PrivateKey[:], k.Priv[:X25519PrivKeySize])
	return out, nil
}

func newX25519Key() *X25519Key {
	k := &X25519Key{}
	runtime.SetFinalizer(k, (*X25519Key).Free)
	return k
}
