package eccodec_test

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/keyfold/ec-codec-go/pkg/eccodec"
)

// RFC 7748 section 6.1, Alice's key pair.
const (
	rfc7748Priv = "77076d0a7318a57d3c16c17251b26645df4c2f87ebc0992ab177fba51db92c2a"
	rfc7748Pub  = "8520f0098930a754748b7ddcb43ef75a0dbf3a0d26381af4eba4a98eaa9b4e6a"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestGenerateX25519Key(t *testing.T) {
	key, err := eccodec.GenerateX25519Key(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateX25519Key failed: %v", err)
	}
	defer key.Free()

	zero := make([]byte, 32)
	if bytes.Equal(key.PrivateKey[:], zero) {
		t.Fatal("private scalar is all zeros")
	}
	if bytes.Equal(key.PublicValue[:], zero) {
		t.Fatal("public value is all zeros")
	}
}

func TestGenerateX25519KeyDistinct(t *testing.T) {
	a, err := eccodec.GenerateX25519Key(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateX25519Key failed: %v", err)
	}
	defer a.Free()

	b, err := eccodec.GenerateX25519Key(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateX25519Key failed: %v", err)
	}
	defer b.Free()

	if a.Equal(b) {
		t.Fatal("two generated key pairs are identical")
	}
}

func TestGenerateX25519KeyFailures(t *testing.T) {
	if _, err := eccodec.GenerateX25519Key(failingReader{}); !errors.Is(err, eccodec.ErrProviderFailure) {
		t.Fatalf("failing reader: got %v, want ErrProviderFailure", err)
	}
	if _, err := eccodec.GenerateX25519Key(nil); !errors.Is(err, eccodec.ErrInvalidInput) {
		t.Fatalf("nil reader: got %v, want ErrInvalidInput", err)
	}
}

func TestX25519KeyFromPrivateKey(t *testing.T) {
	privBytes, err := hex.DecodeString(rfc7748Priv)
	if err != nil {
		t.Fatalf("bad hex in test vector: %v", err)
	}
	var priv [eccodec.X25519PrivKeySize]byte
	copy(priv[:], privBytes)

	key, err := eccodec.X25519KeyFromPrivateKey(&priv)
	if err != nil {
		t.Fatalf("X25519KeyFromPrivateKey failed: %v", err)
	}
	defer key.Free()

	if got := hex.EncodeToString(key.PublicValue[:]); got != rfc7748Pub {
		t.Fatalf("public value = %s, want %s", got, rfc7748Pub)
	}

	if _, err := eccodec.X25519KeyFromPrivateKey(nil); !errors.Is(err, eccodec.ErrInvalidInput) {
		t.Fatalf("nil private key: got %v, want ErrInvalidInput", err)
	}
}

func TestX25519KeyFromPrivateKeyMatchesGenerate(t *testing.T) {
	key, err := eccodec.GenerateX25519Key(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateX25519Key failed: %v", err)
	}
	defer key.Free()

	derived, err := eccodec.X25519KeyFromPrivateKey(&key.PrivateKey)
	if err != nil {
		t.Fatalf("X25519KeyFromPrivateKey failed: %v", err)
	}
	defer derived.Free()

	if !key.Equal(derived) {
		t.Fatal("derived key pair does not match the generated one")
	}
}
