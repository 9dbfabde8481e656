package eccodec

import (
	"runtime"

	"github.com/keyfold/ec-codec-go/pkg/eccodec/internal/backend"
)

// Point is an opaque handle to a point on a curve. A Point is owned by and
// only meaningful relative to the Group that produced it; it must never be
// used with a different group. Release with Free() when no longer needed;
// a finalizer is set as a safety net.
type Point struct {
	bp *backend.Point
}

func newPoint(bp *backend.Point) *Point {
	p := &Point{bp: bp}
	runtime.SetFinalizer(p, (*Point).Free)
	return p
}

// XBytes returns the point's affine x coordinate as a fixed-width big-endian
// buffer of the group's coordinate size. The returned slice is owned by the
// caller.
func (p *Point) XBytes(g *Group) ([]byte, error) {
	x, _, err := p.affine("XBytes", g)
	return x, err
}

// YBytes returns the point's affine y coordinate as a fixed-width big-endian
// buffer of the group's coordinate size. The returned slice is owned by the
// caller.
func (p *Point) YBytes(g *Group) ([]byte, error) {
	_, y, err := p.affine("YBytes", g)
	return y, err
}

func (p *Point) affine(op string, g *Group) ([]byte, []byte, error) {
	if p == nil || p.bp == nil {
		return nil, nil, errorf(op, "%w: nil point", ErrInvalidInput)
	}
	if g == nil || g.bg == nil {
		return nil, nil, errorf(op, "%w: nil group", ErrInvalidInput)
	}
	x, y, err := backend.PointAffine(g.bg, p.bp)
	if err != nil {
		return nil, nil, errorf(op, "%w: %v", ErrProviderFailure, err)
	}
	return x, y, nil
}

// Equal reports whether two points have the same affine coordinates.
func (p *Point) Equal(other *Point) bool {
	if p == nil || other == nil {
		return false
	}
	return backend.PointEqual(p.bp, other.bp)
}

// Free releases the provider resources associated with this Point. Safe to
// call more than once.
func (p *Point) Free() {
	if p != nil && p.bp != nil {
		backend.PointFree(p.bp)
		p.bp = nil
		runtime.SetFinalizer(p, nil)
	}
}
