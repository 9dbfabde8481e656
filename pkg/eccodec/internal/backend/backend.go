package backend

import (
	"crypto/elliptic"
	"errors"
	"math/big"
)

// Provider NIDs for the supported prime curves. The values match the OpenSSL
// numeric identifiers so that group identity stays stable across backends.
const (
	NIDPrime256v1 = 415
	NIDSecp384r1  = 715
	NIDSecp521r1  = 716
)

var (
	// ErrUnknownNID reports a curve identifier the backend has no domain
	// parameters for.
	ErrUnknownNID = errors.New("eccodec/backend: unknown curve nid")

	// ErrNilHandle reports a released or absent group/point handle.
	ErrNilHandle = errors.New("eccodec/backend: nil handle")

	// ErrOffCurve reports coordinates that do not satisfy the curve equation.
	ErrOffCurve = errors.New("eccodec/backend: point is not on the curve")

	// ErrDecode reports an octet string that does not decode to a curve point.
	ErrDecode = errors.New("eccodec/backend: cannot decode point octets")
)

// Group is an opaque handle to the domain parameters of a prime curve.
type Group struct {
	nid   int
	curve elliptic.Curve
}

// Point is an opaque handle to an affine curve point. A Point is only
// meaningful relative to the Group it was created with.
type Point struct {
	x, y *big.Int
}

// GroupByNID resolves the domain parameters for a provider NID.
func GroupByNID(nid int) (*Group, error) {
	switch nid {
	case NIDPrime256v1:
		return &Group{nid: nid, curve: elliptic.P256()}, nil
	case NIDSecp384r1:
		return &Group{nid: nid, curve: elliptic.P384()}, nil
	case NIDSecp521r1:
		return &Group{nid: nid, curve: elliptic.P521()}, nil
	default:
		return nil, ErrUnknownNID
	}
}

// GroupNID returns the provider NID the group was created with, or 0 for a
// nil handle.
func GroupNID(g *Group) int {
	if g == nil {
		return 0
	}
	return g.nid
}

// GroupDegree returns the bit length of the group's underlying field.
func GroupDegree(g *Group) int {
	if g == nil || g.curve == nil {
		return 0
	}
	return g.curve.Params().BitSize
}

// GroupFree releases the group handle. The handle must not be used afterwards.
func GroupFree(g *Group) {
	if g != nil {
		g.curve = nil
	}
}

func coordSize(g *Group) int {
	return (GroupDegree(g) + 7) / 8
}

// PointFromAffine builds a point from big-endian unsigned coordinate buffers
// and verifies it lies on the group's curve.
func PointFromAffine(g *Group, xb, yb []byte) (*Point, error) {
	if g == nil || g.curve == nil {
		return nil, ErrNilHandle
	}
	x := new(big.Int).SetBytes(xb)
	y := new(big.Int).SetBytes(yb)
	if !g.curve.IsOnCurve(x, y) {
		return nil, ErrOffCurve
	}
	return &Point{x: x, y: y}, nil
}

// PointToOctets converts a point to its canonical SEC 1 octet string, either
// the 0x04-tagged uncompressed form or the 0x02/0x03-tagged compressed form.
func PointToOctets(g *Group, p *Point, compressed bool) ([]byte, error) {
	if g == nil || g.curve == nil || p == nil || p.x == nil || p.y == nil {
		return nil, ErrNilHandle
	}
	if compressed {
		return elliptic.MarshalCompressed(g.curve, p.x, p.y), nil
	}
	return elliptic.Marshal(g.curve, p.x, p.y), nil
}

// PointFromOctets parses a SEC 1 octet string, compressed or uncompressed,
// into a point on the group's curve. Off-curve inputs are rejected.
func PointFromOctets(g *Group, data []byte) (*Point, error) {
	if g == nil || g.curve == nil {
		return nil, ErrNilHandle
	}
	if len(data) == 0 {
		return nil, ErrDecode
	}
	var x, y *big.Int
	switch data[0] {
	case 0x02, 0x03:
		x, y = elliptic.UnmarshalCompressed(g.curve, data)
	case 0x04:
		x, y = elliptic.Unmarshal(g.curve, data)
	default:
		return nil, ErrDecode
	}
	if x == nil {
		return nil, ErrDecode
	}
	return &Point{x: x, y: y}, nil
}

// PointAffine returns the affine coordinates as fixed-width big-endian
// buffers of the group's coordinate size, left-padded with zeros.
func PointAffine(g *Group, p *Point) ([]byte, []byte, error) {
	if g == nil || g.curve == nil || p == nil || p.x == nil || p.y == nil {
		return nil, nil, ErrNilHandle
	}
	n := coordSize(g)
	// A point taken from another group may carry wider coordinates.
	if p.x.BitLen() > 8*n || p.y.BitLen() > 8*n {
		return nil, nil, ErrOffCurve
	}
	xb := make([]byte, n)
	yb := make([]byte, n)
	p.x.FillBytes(xb)
	p.y.FillBytes(yb)
	return xb, yb, nil
}

// IsOnCurve reports whether the point satisfies the group's curve equation.
func IsOnCurve(g *Group, p *Point) bool {
	if g == nil || g.curve == nil || p == nil || p.x == nil || p.y == nil {
		return false
	}
	return g.curve.IsOnCurve(p.x, p.y)
}

// PointEqual reports whether two points share affine coordinates.
func PointEqual(a, b *Point) bool {
	if a == nil || b == nil || a.x == nil || b.x == nil {
		return false
	}
	return a.x.Cmp(b.x) == 0 && a.y.Cmp(b.y) == 0
}

// PointFree releases the point handle. The handle must not be used afterwards.
func PointFree(p *Point) {
	if p != nil {
		p.x, p.y = nil, nil
	}
}
