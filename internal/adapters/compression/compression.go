// Package compression provides the decompressors used by the loader.
// gzip and zstd are backed by klauspost/compress; plain payloads pass
// through an identity decompressor.
package compression

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"runtime"
	"strings"

	"github.com/iamNilotpal/csvgz/internal/core/domain"
	"github.com/iamNilotpal/csvgz/internal/core/ports"
)

var (
	// ErrSizeLimit indicates the decompressed output exceeded MaxDecodedSize.
	ErrSizeLimit = errors.New("decompressed size exceeds limit")

	// ErrUnknownAlgorithm indicates an unsupported algorithm name.
	ErrUnknownAlgorithm = errors.New("unknown compression algorithm")
)

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Returns CompressionOptions initialized with auto detection, no size
// limit and one zstd decoder per CPU.
func DefaultOptions() *domain.CompressionOptions {
	return &domain.CompressionOptions{
		Algorithm:          domain.CompressionAuto,
		DecoderConcurrency: uint8(runtime.NumCPU()),
	}
}

// Checks if the compression options are valid and returns an error if any
// option is outside acceptable bounds.
func Validate(input *domain.CompressionOptions) error {
	switch input.Algorithm {
	case domain.CompressionAuto, domain.CompressionGzip, domain.CompressionZstd, domain.CompressionNone:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, input.Algorithm)
	}

	if int(input.DecoderConcurrency) > runtime.NumCPU() {
		return fmt.Errorf(
			"decoder concurrency must be between 0 and %d, got %d", runtime.NumCPU(), input.DecoderConcurrency,
		)
	}

	return nil
}

// New returns the decompressor for a concrete algorithm. CompressionAuto is
// not concrete; resolve it with Detect first.
func New(algorithm domain.CompressionAlgorithm, opts *domain.CompressionOptions) (ports.DecompressorPort, error) {
	switch algorithm {
	case domain.CompressionGzip:
		return NewGzipDecompression(opts.MaxDecodedSize), nil
	case domain.CompressionZstd:
		return NewZstdDecompression(Options{
			MaxDecodedSize:     opts.MaxDecodedSize,
			DecoderConcurrency: opts.DecoderConcurrency,
		})
	case domain.CompressionNone:
		return NewIdentity(opts.MaxDecodedSize), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

// Detect picks a format for a payload. Magic bytes win; otherwise the
// extension of name decides, and anything unrecognised is plain text.
// A gzip magic with one damaged byte still selects gzip, so the stream
// fails as corrupt instead of being passed through as text.
func Detect(data []byte, name string) domain.CompressionAlgorithm {
	switch {
	case looksGzip(data):
		return domain.CompressionGzip
	case bytes.HasPrefix(data, zstdMagic):
		return domain.CompressionZstd
	}

	if i := strings.IndexAny(name, "?#"); i >= 0 && strings.Contains(name, "://") {
		name = name[:i]
	}

	switch strings.ToLower(path.Ext(name)) {
	case ".gz", ".gzip":
		return domain.CompressionGzip
	case ".zst", ".zstd":
		return domain.CompressionZstd
	default:
		return domain.CompressionNone
	}
}

func looksGzip(data []byte) bool {
	return (len(data) > 0 && data[0] == 0x1f) || (len(data) > 1 && data[1] == 0x8b)
}

// exceeds reports whether n decoded bytes break a non-zero limit.
func exceeds(n int, limit uint64) bool {
	return limit > 0 && uint64(n) > limit
}
