package compression

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/iamNilotpal/csvgz/internal/core/domain"
	"github.com/iamNilotpal/csvgz/pkg/pool"
	"github.com/klauspost/compress/gzip"
)

const gzipBufferSize = 64 * 1024 // 64KB

// GzipDecompression implements DecompressorPort for RFC 1952 gzip streams.
// Concatenated members are decoded as one stream. The CRC32 and size
// trailer of every member is verified by the reader.
type GzipDecompression struct {
	maxDecodedSize uint64
	buffers        *pool.BufferPool
}

// NewGzipDecompression creates a gzip decompressor. A zero maxDecodedSize
// disables the output limit.
func NewGzipDecompression(maxDecodedSize uint64) *GzipDecompression {
	return &GzipDecompression{
		maxDecodedSize: maxDecodedSize,
		buffers:        pool.NewBufferPool(gzipBufferSize),
	}
}

// Decompress inflates a complete gzip payload.
//
// Returns an error if:
// - The header is missing or invalid
// - The stream is truncated
// - A member checksum or length does not match
// - The output grows past the configured limit
func (g *GzipDecompression) Decompress(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("invalid gzip header: %w", err)
	}
	defer zr.Close()

	buf := g.buffers.Get()
	defer g.buffers.Put(buf)

	// Limits at or above MaxInt64 cannot be reached by an in-memory buffer.
	var src io.Reader = zr
	if g.maxDecodedSize > 0 && g.maxDecodedSize < math.MaxInt64 {
		src = io.LimitReader(zr, int64(g.maxDecodedSize)+1)
	}

	if _, err := buf.ReadFrom(src); err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}

	if exceeds(buf.Len(), g.maxDecodedSize) {
		return nil, fmt.Errorf("%w of %d bytes", ErrSizeLimit, g.maxDecodedSize)
	}

	return pool.Detach(buf), nil
}

func (g *GzipDecompression) Algorithm() domain.CompressionAlgorithm {
	return domain.CompressionGzip
}

func (g *GzipDecompression) Close() error {
	return nil
}
