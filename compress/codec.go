// Package compress provides the compression codecs used by the dataset binary
// format.
//
// Dataset payloads are short runs of little-endian float64 columns (typically
// a few KB), so the codecs favor block APIs over streaming ones. Zstd offers
// the best ratio, S2 and LZ4 trade ratio for speed, and None stores the
// payload as-is.
package compress

import "fmt"

// Type identifies a compression algorithm.
type Type uint8

const (
	TypeNone Type = 0x1 // TypeNone stores payloads uncompressed.
	TypeZstd Type = 0x2 // TypeZstd uses Zstandard compression.
	TypeS2   Type = 0x3 // TypeS2 uses S2 (Snappy-compatible) compression.
	TypeLZ4  Type = 0x4 // TypeLZ4 uses LZ4 block compression.
)

// String returns the string representation of the compression type.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeZstd:
		return "Zstd"
	case TypeS2:
		return "S2"
	case TypeLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Codec compresses and decompresses byte payloads.
//
// Implementations must be safe for concurrent use. Returned slices are owned
// by the caller; input slices are never modified. The None codec may return
// the input slice itself, so callers must not mutate payloads they intend to
// keep.
type Codec interface {
	// Compress compresses data and returns the result.
	Compress(data []byte) ([]byte, error)
	// Decompress reverses Compress. It returns an error when the input is
	// corrupted or was produced by a different algorithm.
	Decompress(data []byte) ([]byte, error)
}

var codecs = map[Type]Codec{
	TypeNone: NoOp{},
	TypeZstd: Zstd{},
	TypeS2:   S2{},
	TypeLZ4:  LZ4{},
}

// ForType returns the built-in codec for the given compression type.
func ForType(t Type) (Codec, error) {
	if codec, ok := codecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", t)
}

// NoOp passes payloads through unchanged. Useful as a baseline and for data
// that is already compressed.
type NoOp struct{}

var _ Codec = NoOp{}

// Compress returns data as-is without copying.
func (NoOp) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data as-is without copying.
func (NoOp) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
