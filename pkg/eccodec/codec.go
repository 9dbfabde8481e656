package eccodec

import (
	"github.com/keyfold/ec-codec-go/pkg/eccodec/internal/backend"
)

// EncodePoint serializes a point on the given curve into the given format.
// The point is checked to lie on the curve before any bytes are produced.
func EncodePoint(c Curve, f PointFormat, p *Point) ([]byte, error) {
	const op = "EncodePoint"
	if p == nil || p.bp == nil {
		return nil, errorf(op, "%w: nil point", ErrInvalidInput)
	}
	g, err := GroupFromCurve(c)
	if err != nil {
		return nil, err
	}
	defer g.Free()

	if !backend.IsOnCurve(g.bg, p.bp) {
		return nil, errorf(op, "%w", ErrInvalidPoint)
	}

	switch f {
	case Uncompressed, Compressed:
		out, err := backend.PointToOctets(g.bg, p.bp, f == Compressed)
		if err != nil {
			return nil, errorf(op, "%w: %v", ErrProviderFailure, err)
		}
		return out, nil
	case CrunchyUncompressed:
		// Legacy tagless layout: fixed-width x || y, no leading byte.
		x, y, err := backend.PointAffine(g.bg, p.bp)
		if err != nil {
			return nil, errorf(op, "%w: %v", ErrProviderFailure, err)
		}
		out := make([]byte, 0, len(x)+len(y))
		out = append(out, x...)
		out = append(out, y...)
		return out, nil
	default:
		return nil, errorf(op, "%w: %v", ErrUnsupportedFormat, f)
	}
}

// DecodePoint parses an encoded point on the given curve in the given format.
// Every path validates that the decoded point lies on the curve; malformed or
// off-curve inputs are rejected, never silently accepted.
func DecodePoint(c Curve, f PointFormat, encoded []byte) (*Point, error) {
	const op = "DecodePoint"
	switch f {
	case Uncompressed, Compressed, CrunchyUncompressed:
	default:
		return nil, errorf(op, "%w: %v", ErrUnsupportedFormat, f)
	}

	g, err := GroupFromCurve(c)
	if err != nil {
		return nil, err
	}
	defer g.Free()

	n := (backend.GroupDegree(g.bg) + 7) / 8
	var want int
	switch f {
	case Uncompressed:
		want = 2*n + 1
	case Compressed:
		want = n + 1
	case CrunchyUncompressed:
		want = 2 * n
	}
	if len(encoded) != want {
		return nil, errorf(op, "%w: encoded point is %d bytes, want %d", ErrLengthMismatch, len(encoded), want)
	}

	if f == CrunchyUncompressed {
		// The provider validates the point during construction.
		bp, err := backend.PointFromAffine(g.bg, encoded[:n], encoded[n:])
		if err != nil {
			return nil, errorf(op, "%w: %v", ErrInvalidPoint, err)
		}
		return newPoint(bp), nil
	}

	if f == Uncompressed && encoded[0] != 0x04 {
		return nil, errorf(op, "%w: uncompressed point must start with 0x04", ErrInvalidEncoding)
	}
	if f == Compressed && encoded[0] != 0x02 && encoded[0] != 0x03 {
		return nil, errorf(op, "%w: compressed point must start with 0x02 or 0x03", ErrInvalidEncoding)
	}

	bp, err := backend.PointFromOctets(g.bg, encoded)
	if err != nil {
		return nil, errorf(op, "%w: %v", ErrInvalidPoint, err)
	}
	// Re-check even though the provider validates during conversion.
	if !backend.IsOnCurve(g.bg, bp) {
		backend.PointFree(bp)
		return nil, errorf(op, "%w", ErrInvalidPoint)
	}
	return newPoint(bp), nil
}

// GetEcPoint constructs a point on the given curve from big-endian unsigned
// affine coordinate buffers, validating that the coordinates describe a point
// on the curve.
func GetEcPoint(c Curve, pubX, pubY []byte) (*Point, error) {
	const op = "GetEcPoint"
	g, err := GroupFromCurve(c)
	if err != nil {
		return nil, err
	}
	defer g.Free()

	bp, err := backend.PointFromAffine(g.bg, pubX, pubY)
	if err != nil {
		return nil, errorf(op, "%w: %v", ErrInvalidPoint, err)
	}
	return newPoint(bp), nil
}
