// Package backend hosts the curve-arithmetic provider behind the eccodec
// public API. All group lookup, point construction, octet conversion and
// curve25519 key generation happen here so that the encoding logic above it
// never touches arithmetic directly and a different provider can be swapped
// in at this package boundary.
package backend
