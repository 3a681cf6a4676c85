package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curvefit-go/curvefit/compress"
)

func codecTestDataset(t *testing.T, n int, withErrors bool) *Dataset {
	t.Helper()

	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = float64(i) / 10
		y[i] = 2*math.Sin(x[i]) + 0.5
	}

	var opts []Option
	if withErrors {
		opts = append(opts, WithConstantError(0.25))
	}
	ds, err := New(x, y, opts...)
	require.NoError(t, err)

	return ds
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	compressions := []compress.Type{compress.TypeNone, compress.TypeZstd, compress.TypeS2, compress.TypeLZ4}

	for _, ct := range compressions {
		for _, withErrors := range []bool{false, true} {
			name := ct.String()
			if withErrors {
				name += "/with-errors"
			}
			t.Run(name, func(t *testing.T) {
				ds := codecTestDataset(t, 100, withErrors)

				data, err := Encode(ds, WithCompression(ct))
				require.NoError(t, err)

				got, err := Decode(data)
				require.NoError(t, err)
				assert.Equal(t, ds.X, got.X)
				assert.Equal(t, ds.Y, got.Y)
				assert.Equal(t, ds.YErr, got.YErr)
				assert.Equal(t, ds.Fingerprint(), got.Fingerprint())
			})
		}
	}
}

func TestEncodeDefaultsToNoCompression(t *testing.T) {
	ds := codecTestDataset(t, 10, false)

	data, err := Encode(ds)
	require.NoError(t, err)
	assert.Equal(t, byte(compress.TypeNone), data[5])
	// Header plus two raw float64 columns.
	assert.Len(t, data, 20+2*10*8)
}

func TestEncodeValidation(t *testing.T) {
	_, err := Encode(nil)
	require.Error(t, err)

	ds := codecTestDataset(t, 10, false)
	_, err = Encode(ds, WithCompression(compress.Type(0xEE)))
	require.Error(t, err)
}

func TestDecodeCorruptInput(t *testing.T) {
	ds := codecTestDataset(t, 25, true)
	data, err := Encode(ds, WithCompression(compress.TypeS2))
	require.NoError(t, err)

	t.Run("truncated header", func(t *testing.T) {
		_, err := Decode(data[:10])
		require.ErrorContains(t, err, "truncated")
	})

	t.Run("bad magic", func(t *testing.T) {
		bad := append([]byte{}, data...)
		bad[0] = 'X'
		_, err := Decode(bad)
		require.ErrorContains(t, err, "bad magic")
	})

	t.Run("unsupported version", func(t *testing.T) {
		bad := append([]byte{}, data...)
		bad[4] = 0x7F
		_, err := Decode(bad)
		require.ErrorContains(t, err, "version")
	})

	t.Run("unknown compression", func(t *testing.T) {
		bad := append([]byte{}, data...)
		bad[5] = 0xEE
		_, err := Decode(bad)
		require.ErrorContains(t, err, "unsupported compression")
	})

	t.Run("flipped payload bit", func(t *testing.T) {
		// Uncompressed payload so the corruption reaches the checksum
		// verification instead of failing inside the codec.
		raw, err := Encode(ds)
		require.NoError(t, err)
		raw[len(raw)-1] ^= 0x01
		_, err = Decode(raw)
		require.ErrorContains(t, err, "checksum mismatch")
	})

	t.Run("truncated payload", func(t *testing.T) {
		raw, err := Encode(ds)
		require.NoError(t, err)
		_, err = Decode(raw[:len(raw)-8])
		require.ErrorContains(t, err, "payload size mismatch")
	})
}

func BenchmarkEncode(b *testing.B) {
	x := make([]float64, 10000)
	y := make([]float64, 10000)
	for i := range x {
		x[i] = float64(i)
		y[i] = math.Sqrt(float64(i))
	}
	ds, err := New(x, y, WithConstantError(0.1))
	if err != nil {
		b.Fatal(err)
	}

	for _, ct := range []compress.Type{compress.TypeNone, compress.TypeZstd, compress.TypeS2, compress.TypeLZ4} {
		b.Run(ct.String(), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Encode(ds, WithCompression(ct)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
