package compress

import "github.com/klauspost/compress/s2"

// S2 implements the Codec interface using S2 block compression.
type S2 struct{}

var _ Codec = S2{}

// Compress compresses data using S2.
func (S2) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses S2-compressed data.
func (S2) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
