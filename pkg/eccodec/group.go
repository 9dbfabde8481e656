package eccodec

import (
	"runtime"

	"github.com/keyfold/ec-codec-go/pkg/eccodec/internal/backend"
)

// Group is an opaque handle to a curve's domain parameters as held by the
// provider. Groups are acquired per operation and must be released with
// Free() when no longer needed; a finalizer is set as a safety net.
type Group struct {
	bg *backend.Group
}

// curveNID maps a Curve to the provider NID. This is the only place where
// the mapping between Go enums and provider NIDs exists.
func curveNID(c Curve) (int, bool) {
	switch c {
	case P256:
		return backend.NIDPrime256v1, true
	case P384:
		return backend.NIDSecp384r1, true
	case P521:
		return backend.NIDSecp521r1, true
	default:
		return 0, false
	}
}

// GroupFromCurve resolves the domain parameters for a NIST curve. Curve25519
// has no group-based representation here and is rejected along with every
// other unsupported value.
func GroupFromCurve(c Curve) (*Group, error) {
	const op = "GroupFromCurve"
	nid, ok := curveNID(c)
	if !ok {
		return nil, errorf(op, "%w: %v", ErrUnsupportedCurve, c)
	}
	bg, err := backend.GroupByNID(nid)
	if err != nil {
		return nil, errorf(op, "%w: %v", ErrProviderFailure, err)
	}
	g := &Group{bg: bg}
	runtime.SetFinalizer(g, (*Group).Free)
	return g, nil
}

// CurveFromGroup is the reverse lookup of GroupFromCurve, identifying a
// group by its provider NID.
func CurveFromGroup(g *Group) (Curve, error) {
	const op = "CurveFromGroup"
	if g == nil || g.bg == nil {
		return Unknown, errorf(op, "%w: nil group", ErrInvalidInput)
	}
	switch nid := backend.GroupNID(g.bg); nid {
	case backend.NIDPrime256v1:
		return P256, nil
	case backend.NIDSecp384r1:
		return P384, nil
	case backend.NIDSecp521r1:
		return P521, nil
	default:
		return Unknown, errorf(op, "%w: nid %d", ErrUnsupportedCurve, nid)
	}
}

// EncodingSize returns the byte length of a point on the given curve encoded
// in the given format: 2n+1 uncompressed, n+1 compressed, 2n crunchy, where
// n is the curve's coordinate size.
func EncodingSize(c Curve, f PointFormat) (int, error) {
	const op = "EncodingSize"
	g, err := GroupFromCurve(c)
	if err != nil {
		return 0, err
	}
	defer g.Free()

	n := (backend.GroupDegree(g.bg) + 7) / 8
	switch f {
	case Uncompressed:
		return 2*n + 1, nil
	case Compressed:
		return n + 1, nil
	case CrunchyUncompressed:
		return 2 * n, nil
	default:
		return 0, errorf(op, "%w: %v", ErrUnsupportedFormat, f)
	}
}

// Free releases the provider resources associated with this Group. Safe to
// call more than once.
func (g *Group) Free() {
	if g != nil && g.bg != nil {
		backend.GroupFree(g.bg)
		g.bg = nil
		runtime.SetFinalizer(g, nil)
	}
}
