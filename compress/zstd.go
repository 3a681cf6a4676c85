package compress

// Zstd implements the Codec interface using Zstandard compression.
//
// Two implementations exist: the default pure-Go one backed by
// klauspost/compress/zstd, and a cgo one backed by valyala/gozstd selected
// with the "gozstd" build tag. Both produce standard Zstd frames, so data
// written by one can be read by the other.
type Zstd struct{}

var _ Codec = Zstd{}
