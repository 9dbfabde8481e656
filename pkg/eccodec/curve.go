package eccodec

// Curve represents an elliptic curve whose points and keys this package
// encodes. This is a stable Go enum that is independent of provider
// implementation details.
type Curve int

// Curves supported by the encoding layer.
const (
	Unknown    Curve = iota // Unknown or unsupported curve
	P256                    // NIST P-256 (secp256r1)
	P384                    // NIST P-384 (secp384r1)
	P521                    // NIST P-521 (secp521r1)
	Curve25519              // Curve25519 (X25519 raw keys)
)

// String returns a human-readable name for the curve.
func (c Curve) String() string {
	switch c {
	case P256:
		return "P-256"
	case P384:
		return "P-384"
	case P521:
		return "P-521"
	case Curve25519:
		return "Curve25519"
	default:
		return "Unknown"
	}
}

// CoordinateSize returns the byte length of a single affine coordinate,
// ceil(curve degree in bits / 8). For Curve25519 this is the size of the raw
// public value.
func (c Curve) CoordinateSize() int {
	switch c {
	case P256:
		return 32
	case P384:
		return 48
	case P521:
		return 66
	case Curve25519:
		return 32
	default:
		return 0
	}
}
