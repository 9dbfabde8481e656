package backend

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

func mustGroup(t *testing.T, nid int) *Group {
	t.Helper()
	g, err := GroupByNID(nid)
	if err != nil {
		t.Fatalf("GroupByNID(%d) failed: %v", nid, err)
	}
	return g
}

func TestGroupByNID(t *testing.T) {
	tests := []struct {
		nid    int
		degree int
	}{
		{NIDPrime256v1, 256},
		{NIDSecp384r1, 384},
		{NIDSecp521r1, 521},
	}

	for _, tt := range tests {
		g := mustGroup(t, tt.nid)
		if got := GroupNID(g); got != tt.nid {
			t.Errorf("GroupNID = %d, want %d", got, tt.nid)
		}
		if got := GroupDegree(g); got != tt.degree {
			t.Errorf("GroupDegree = %d, want %d", got, tt.degree)
		}
		GroupFree(g)
	}

	if _, err := GroupByNID(714); !errors.Is(err, ErrUnknownNID) {
		t.Fatalf("secp256k1 nid: got %v, want ErrUnknownNID", err)
	}
}

func TestPointFromAffineValidates(t *testing.T) {
	g := mustGroup(t, NIDPrime256v1)
	defer GroupFree(g)

	gx, _ := hex.DecodeString("6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296")
	gy, _ := hex.DecodeString("4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5")

	p, err := PointFromAffine(g, gx, gy)
	if err != nil {
		t.Fatalf("PointFromAffine failed for the generator: %v", err)
	}
	if !IsOnCurve(g, p) {
		t.Fatal("generator reported off-curve")
	}
	PointFree(p)

	if _, err := PointFromAffine(g, gy, gx); !errors.Is(err, ErrOffCurve) {
		t.Fatalf("swapped coordinates: got %v, want ErrOffCurve", err)
	}
	if _, err := PointFromAffine(nil, gx, gy); !errors.Is(err, ErrNilHandle) {
		t.Fatalf("nil group: got %v, want ErrNilHandle", err)
	}
}

func TestPointOctetsRoundTrip(t *testing.T) {
	gx, _ := hex.DecodeString("6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296")
	gy, _ := hex.DecodeString("4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5")

	g := mustGroup(t, NIDPrime256v1)
	defer GroupFree(g)

	p, err := PointFromAffine(g, gx, gy)
	if err != nil {
		t.Fatalf("PointFromAffine failed: %v", err)
	}
	defer PointFree(p)

	for _, compressed := range []bool{false, true} {
		oct, err := PointToOctets(g, p, compressed)
		if err != nil {
			t.Fatalf("PointToOctets(compressed=%v) failed: %v", compressed, err)
		}

		back, err := PointFromOctets(g, oct)
		if err != nil {
			t.Fatalf("PointFromOctets failed: %v", err)
		}
		if !PointEqual(p, back) {
			t.Fatalf("octet round trip (compressed=%v) lost the point", compressed)
		}
		PointFree(back)
	}

	if _, err := PointFromOctets(g, []byte{0x07, 0x01}); !errors.Is(err, ErrDecode) {
		t.Fatalf("bad tag: got %v, want ErrDecode", err)
	}
	if _, err := PointFromOctets(g, nil); !errors.Is(err, ErrDecode) {
		t.Fatalf("empty input: got %v, want ErrDecode", err)
	}
}

func TestPointAffinePadding(t *testing.T) {
	g := mustGroup(t, NIDPrime256v1)
	defer GroupFree(g)

	gx, _ := hex.DecodeString("6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296")
	gy, _ := hex.DecodeString("4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5")

	p, err := PointFromAffine(g, gx, gy)
	if err != nil {
		t.Fatalf("PointFromAffine failed: %v", err)
	}
	defer PointFree(p)

	xb, yb, err := PointAffine(g, p)
	if err != nil {
		t.Fatalf("PointAffine failed: %v", err)
	}
	if len(xb) != 32 || len(yb) != 32 {
		t.Fatalf("coordinate widths = %d/%d, want 32/32", len(xb), len(yb))
	}
	if !bytes.Equal(xb, gx) || !bytes.Equal(yb, gy) {
		t.Fatal("affine coordinates do not match the input")
	}

	// Leading zeros in the input must not change the parsed value.
	padded := append(make([]byte, 8), gx...)
	p2, err := PointFromAffine(g, padded, gy)
	if err != nil {
		t.Fatalf("PointFromAffine with padded x failed: %v", err)
	}
	defer PointFree(p2)
	if !PointEqual(p, p2) {
		t.Fatal("zero padding changed the point")
	}
}

func TestX25519KeyPairDeterministic(t *testing.T) {
	// RFC 7748 section 6.1, Alice's key pair.
	priv, _ := hex.DecodeString("77076d0a7318a57d3c16c17251b26645df4c2f87ebc0992ab177fba51db92c2a")
	wantPub := "8520f0098930a754748b7ddcb43ef75a0dbf3a0d26381af4eba4a98eaa9b4e6a"

	gotPriv, gotPub, err := X25519KeyPair(bytes.NewReader(priv))
	if err != nil {
		t.Fatalf("X25519KeyPair failed: %v", err)
	}
	if !bytes.Equal(gotPriv[:], priv) {
		t.Fatal("private scalar does not match the randomness drawn")
	}
	if got := hex.EncodeToString(gotPub[:]); got != wantPub {
		t.Fatalf("public value = %s, want %s", got, wantPub)
	}

	derived, err := X25519Public(&gotPriv)
	if err != nil {
		t.Fatalf("X25519Public failed: %v", err)
	}
	if !bytes.Equal(derived[:], gotPub[:]) {
		t.Fatal("X25519Public disagrees with X25519KeyPair")
	}

	// Short randomness fails cleanly.
	if _, _, err := X25519KeyPair(bytes.NewReader(priv[:16])); err == nil {
		t.Fatal("short randomness source must fail")
	}
}
