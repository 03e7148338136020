package domain

// CompressionAlgorithm names the container format of a payload.
type CompressionAlgorithm string

const (
	// CompressionAuto detects the format from magic bytes, then extension.
	CompressionAuto CompressionAlgorithm = "auto"

	// CompressionGzip is an RFC 1952 gzip stream (deflate inside).
	CompressionGzip CompressionAlgorithm = "gzip"

	// CompressionZstd is a Zstandard frame stream.
	CompressionZstd CompressionAlgorithm = "zstd"

	// CompressionNone treats the payload as already-decompressed text.
	CompressionNone CompressionAlgorithm = "none"
)

// CompressionOptions configures how payloads are decompressed.
type CompressionOptions struct {
	// Algorithm selects the decompressor. CompressionAuto inspects each
	// payload and picks one.
	//
	// Default: CompressionAuto
	Algorithm CompressionAlgorithm

	// MaxDecodedSize caps the number of decompressed bytes. Payloads that
	// expand beyond it fail with a decompression error instead of
	// exhausting memory. Zero means unlimited.
	//
	// Default: 0
	MaxDecodedSize uint64

	// DecoderConcurrency specifies the number of concurrent zstd decoding
	// goroutines. Must not exceed the number of CPU cores.
	// Default is number of CPU cores if set to 0.
	DecoderConcurrency uint8
}
