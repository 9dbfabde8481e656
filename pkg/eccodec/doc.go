// Package eccodec converts elliptic curve points and public keys to and from
// their external byte encodings.
//
// The package validates every decoded point against its claimed curve before
// handing it back. Attacker-supplied byte strings are the usual input here,
// and accepting coordinates that are not actually on the curve opens the door
// to invalid-curve attacks, so all decode paths fail closed.
//
// # Supported Curves
//
//   - P256 (NIST P-256 / secp256r1)
//   - P384 (NIST P-384 / secp384r1)
//   - P521 (NIST P-521 / secp521r1)
//   - Curve25519 (raw X25519 keys only; no group-based point encoding)
//
// # Point Formats
//
//   - Uncompressed: 0x04 || x || y, length 2n+1
//   - Compressed: 0x02/0x03 || x, length n+1, tag selects the y parity
//   - CrunchyUncompressed: x || y, length 2n, no tag byte (legacy layout)
//
// where n is the curve's coordinate size in bytes (32, 48 or 66).
//
// # Memory Management
//
// Group and Point handles wrap provider resources and must be explicitly
// freed:
//
//	point, err := eccodec.DecodePoint(eccodec.P256, eccodec.Uncompressed, raw)
//	if err != nil {
//	    return err
//	}
//	defer point.Free()
//
// A finalizer is set as a safety net, but explicit cleanup is recommended to
// avoid resource leaks. X25519Key carries a private scalar and should be
// freed the same way so the secret is wiped.
//
// # Key Bridging
//
// Raw 32-byte X25519 key pairs convert to and from the generic EcKey
// structure used across the library:
//
//	key, err := eccodec.GenerateX25519Key(rand.Reader)
//	defer key.Free()
//
//	ec := eccodec.EcKeyFromX25519Key(key)
//	back, err := eccodec.X25519KeyFromEcKey(ec)
//
// All operations are stateless and single-shot; concurrent calls are safe as
// long as each Group, Point and X25519Key is confined to one goroutine.
package eccodec
