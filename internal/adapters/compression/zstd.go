package compression

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/iamNilotpal/csvgz/internal/core/domain"
	"github.com/klauspost/compress/zstd"
)

type Options struct {
	MaxDecodedSize     uint64
	DecoderConcurrency uint8
}

// ZstdDecompression implements DecompressorPort using the zstd algorithm.
// Frame checksums are verified when present.
type ZstdDecompression struct {
	maxDecodedSize uint64
	mu             sync.RWMutex  // Guards decoder against use after Close.
	decoder        *zstd.Decoder // Thread-safe decoder instance for decompression.
}

// NewZstdDecompression creates a zstd decompressor with the given limits.
//
// Returns an error if:
// - The concurrency setting is invalid
// - The decoder initialization fails
func NewZstdDecompression(opts Options) (*ZstdDecompression, error) {
	if err := Validate(
		&domain.CompressionOptions{
			Algorithm:          domain.CompressionZstd,
			DecoderConcurrency: opts.DecoderConcurrency,
		},
	); err != nil {
		return nil, err
	}

	decoderOpts := []zstd.DOption{zstd.WithDecoderConcurrency(int(opts.DecoderConcurrency))}
	if opts.MaxDecodedSize > 0 && opts.MaxDecodedSize < math.MaxInt64 {
		decoderOpts = append(decoderOpts, zstd.WithDecoderMaxMemory(opts.MaxDecodedSize))
	}

	decoder, err := zstd.NewReader(nil, decoderOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	return &ZstdDecompression{decoder: decoder, maxDecodedSize: opts.MaxDecodedSize}, nil
}

// Decompress restores the original data from a complete zstd payload.
// The operation is thread-safe and can be called concurrently.
//
// Returns an error if:
// - The input is empty or not valid zstd compressed data
// - The output grows past the configured limit
func (z *ZstdDecompression) Decompress(data []byte) ([]byte, error) {
	z.mu.RLock()
	defer z.mu.RUnlock()

	if z.decoder == nil {
		return nil, errors.New("zstd decoder is closed")
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("invalid zstd frame: %w", io.ErrUnexpectedEOF)
	}

	decompressed, err := z.decoder.DecodeAll(data, nil)
	if err != nil {
		if errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded) {
			return nil, fmt.Errorf("%w of %d bytes", ErrSizeLimit, z.maxDecodedSize)
		}
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	if exceeds(len(decompressed), z.maxDecodedSize) {
		return nil, fmt.Errorf("%w of %d bytes", ErrSizeLimit, z.maxDecodedSize)
	}

	return decompressed, nil
}

func (z *ZstdDecompression) Algorithm() domain.CompressionAlgorithm {
	return domain.CompressionZstd
}

// Close releases the decoder. After closing, Decompress fails.
func (z *ZstdDecompression) Close() error {
	z.mu.Lock()
	defer z.mu.Unlock()

	if z.decoder != nil {
		z.decoder.Close()
		z.decoder = nil
	}
	return nil
}
