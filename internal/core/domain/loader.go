package domain

import "time"

// LoaderOptions defines the configuration parameters of the loader.
type LoaderOptions struct {
	// Timeout bounds a single remote fetch. Local reads ignore it.
	//
	// Default: 30 seconds
	Timeout time.Duration

	// Head limits emitted text to the header line plus this many lines.
	// Zero or negative emits everything.
	//
	// Default: 0
	Head int

	// CompressionOptions configures decompression.
	CompressionOptions *CompressionOptions

	// TextOptions configures decoding of decompressed bytes.
	TextOptions *TextOptions

	// ChecksumOptions configures the fingerprint of decoded text.
	ChecksumOptions *ChecksumOptions
}
