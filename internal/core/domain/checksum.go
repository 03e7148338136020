package domain

// ChecksumAlgorithm represents supported checksum algorithms
type ChecksumAlgorithm string

// ChecksumOptions defines how loaded documents are fingerprinted.
type ChecksumOptions struct {
	// Enable controls whether a checksum of the decoded text is computed.
	// The checksum lets repeated loads of the same file be compared cheaply.
	//
	// Default: true
	Enable bool

	// Algorithm specifies which checksum algorithm to use.
	// Defaults to CRC32IEEE if not specified.
	Algorithm ChecksumAlgorithm
}
