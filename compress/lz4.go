package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4Pool reuses lz4.Compressor instances, which keep internal hash tables
// worth carrying between calls.
var lz4Pool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4 implements the Codec interface using LZ4 block compression.
type LZ4 struct{}

var _ Codec = LZ4{}

// Compress compresses data using LZ4.
func (LZ4) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4Pool.Get().(*lz4.Compressor)
	defer lz4Pool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// lz4MaxDecompressedSize caps the decompression buffer growth so corrupted
// input cannot exhaust memory.
const lz4MaxDecompressedSize = 128 * 1024 * 1024

// Decompress decompresses LZ4-compressed data.
//
// LZ4 blocks do not record the decompressed size, so the buffer starts at 4x
// the input and doubles on short-buffer errors up to lz4MaxDecompressedSize.
func (LZ4) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for size := len(data) * 4; size <= lz4MaxDecompressedSize; size *= 2 {
		buf := make([]byte, size)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
