package ports

import "github.com/iamNilotpal/csvgz/internal/core/domain"

// Defines the interface for decompression operations.
// This allows us to swap container formats without changing the loader.
type DecompressorPort interface {
	// Decompress restores the original bytes from a complete payload.
	// Returns an error for malformed, truncated or oversized input.
	Decompress(data []byte) ([]byte, error)

	// Algorithm returns the format this decompressor handles.
	Algorithm() domain.CompressionAlgorithm

	// Close cleans up decompression resources.
	Close() error
}
