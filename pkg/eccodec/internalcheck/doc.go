// Package internalcheck holds repository policy tests for the codec.
//
// The tests load the public eccodec package with go/packages and reject
// patterns that would leak or mishandle key material: hex-formatting of
// secrets through fmt/log verbs, and direct (non constant-time) comparison
// of byte buffers. It is not intended for external use and the API may
// change without notice.
package internalcheck
