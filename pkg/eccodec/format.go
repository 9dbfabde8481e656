package eccodec

// PointFormat identifies the external byte encoding of a curve point.
type PointFormat int

// Point formats understood by the codec. CrunchyUncompressed is a legacy
// fixed-width encoding with no leading tag byte, retained for backward
// compatibility with existing ciphertexts.
const (
	UnknownFormat       PointFormat = iota // Unknown or unsupported format
	Uncompressed                           // 0x04 || x || y, length 2n+1
	Compressed                             // 0x02/0x03 || x, length n+1
	CrunchyUncompressed                    // x || y, length 2n, no tag byte
)

// String returns a human-readable name for the point format.
func (f PointFormat) String() string {
	switch f {
	case Uncompressed:
		return "UNCOMPRESSED"
	case Compressed:
		return "COMPRESSED"
	case CrunchyUncompressed:
		return "CRUNCHY_UNCOMPRESSED"
	default:
		return "UNKNOWN"
	}
}
