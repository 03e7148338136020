package ports

// Defines an interface for calculating and verifying data checksums.
type ChecksumPort interface {
	// Calculates a checksum for the provided data. Digests wider than
	// 64 bits are truncated to their first 8 bytes.
	Calculate(data []byte) uint64

	// Validates whether the provided data matches the expected checksum.
	Verify(data []byte, expected uint64) bool

	// Name returns the algorithm identifier.
	Name() string
}
