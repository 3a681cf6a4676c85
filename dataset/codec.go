package dataset

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/curvefit-go/curvefit/compress"
	"github.com/curvefit-go/curvefit/internal/options"
)

// Binary layout (little endian):
//
//	offset 0   4 bytes  magic "CFD1"
//	offset 4   1 byte   format version
//	offset 5   1 byte   compression type
//	offset 6   1 byte   flags (bit 0: yerr column present)
//	offset 7   1 byte   reserved
//	offset 8   4 bytes  sample count (uint32)
//	offset 12  8 bytes  xxHash64 of the uncompressed payload
//	offset 20  ...      payload: x column, y column, optional yerr column,
//	                    each count consecutive float64 values
const (
	codecMagic   = "CFD1"
	codecVersion = 0x1
	headerSize   = 20

	flagHasErrors = 0x1
)

// CodecConfig holds configuration for dataset encoding.
type CodecConfig struct {
	Compression compress.Type
}

// CodecOption is a functional option for Encode.
type CodecOption = options.Option[*CodecConfig]

// WithCompression selects the payload compression. The default is
// compress.TypeNone.
func WithCompression(t compress.Type) CodecOption {
	return func(cfg *CodecConfig) error {
		if _, err := compress.ForType(t); err != nil {
			return err
		}
		cfg.Compression = t

		return nil
	}
}

// Encode serializes the dataset into the compact binary format.
//
// The payload checksum is computed before compression, so Decode verifies the
// samples end to end regardless of the codec used.
func Encode(ds *Dataset, opts ...CodecOption) ([]byte, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, fmt.Errorf("cannot encode an empty dataset")
	}
	if uint64(ds.Len()) > math.MaxUint32 {
		return nil, fmt.Errorf("dataset too large to encode: %d samples", ds.Len())
	}

	cfg := CodecConfig{Compression: compress.TypeNone}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	cols := 2
	if ds.HasErrors() {
		cols = 3
	}
	payload := make([]byte, 0, cols*ds.Len()*8)
	payload = appendColumn(payload, ds.X)
	payload = appendColumn(payload, ds.Y)
	if ds.HasErrors() {
		payload = appendColumn(payload, ds.YErr)
	}

	checksum := xxhash.Sum64(payload)

	codec, err := compress.ForType(cfg.Compression)
	if err != nil {
		return nil, err
	}
	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}

	out := make([]byte, 0, headerSize+len(compressed))
	out = append(out, codecMagic...)
	out = append(out, codecVersion, byte(cfg.Compression))
	var flags byte
	if ds.HasErrors() {
		flags |= flagHasErrors
	}
	out = append(out, flags, 0)
	out = binary.LittleEndian.AppendUint32(out, uint32(ds.Len()))
	out = binary.LittleEndian.AppendUint64(out, checksum)
	out = append(out, compressed...)

	return out, nil
}

// Decode deserializes a dataset produced by Encode. It validates the magic,
// version, payload size and checksum, and returns a descriptive error for
// truncated or corrupted input.
func Decode(data []byte) (*Dataset, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("truncated dataset: %d bytes, need at least %d", len(data), headerSize)
	}
	if string(data[:4]) != codecMagic {
		return nil, fmt.Errorf("bad magic %q, not a dataset blob", data[:4])
	}
	if data[4] != codecVersion {
		return nil, fmt.Errorf("unsupported dataset format version %d", data[4])
	}

	compression := compress.Type(data[5])
	hasErrors := data[6]&flagHasErrors != 0
	count := int(binary.LittleEndian.Uint32(data[8:12]))
	checksum := binary.LittleEndian.Uint64(data[12:20])

	if count == 0 {
		return nil, fmt.Errorf("dataset blob contains no samples")
	}

	codec, err := compress.ForType(compression)
	if err != nil {
		return nil, err
	}
	payload, err := codec.Decompress(data[headerSize:])
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}

	cols := 2
	if hasErrors {
		cols = 3
	}
	if want := cols * count * 8; len(payload) != want {
		return nil, fmt.Errorf("payload size mismatch: got %d bytes, want %d for %d samples", len(payload), want, count)
	}
	if got := xxhash.Sum64(payload); got != checksum {
		return nil, fmt.Errorf("payload checksum mismatch: got %#x, want %#x", got, checksum)
	}

	x := readColumn(payload, 0, count)
	y := readColumn(payload, count, count)
	if hasErrors {
		return New(x, y, WithErrors(readColumn(payload, 2*count, count)))
	}

	return New(x, y)
}

func appendColumn(buf []byte, col []float64) []byte {
	for _, v := range col {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}

	return buf
}

func readColumn(payload []byte, offset, count int) []float64 {
	col := make([]float64, count)
	for i := range col {
		bits := binary.LittleEndian.Uint64(payload[(offset+i)*8:])
		col[i] = math.Float64frombits(bits)
	}

	return col
}
