// Package domain defines the core types and options of the loader.
package domain

import "time"

// Payload is the raw content of a source, exactly as stored.
// It is fully materialized before any decompression starts.
type Payload struct {
	// Source is the path or URL the payload was read from.
	Source string

	// Data holds the compressed bytes. Never modified after reading.
	Data []byte
}

// Document is the result of a successful load.
type Document struct {
	// Text is the fully decompressed and decoded content.
	Text string

	// Source is the path or URL the document was loaded from.
	Source string

	// Algorithm is the decompressor that was actually used. For
	// CompressionAuto this is the detected format.
	Algorithm CompressionAlgorithm

	// Encoding is the text encoding the bytes were decoded from.
	Encoding string

	CompressedSize   int
	DecompressedSize int

	// Replaced counts invalid UTF-8 sequences substituted with U+FFFD.
	// Always zero under InvalidTextStrict.
	Replaced int

	// Checksum of Text and the algorithm that produced it. Empty when
	// checksums are disabled.
	Checksum          uint64
	ChecksumAlgorithm ChecksumAlgorithm

	// Elapsed is the wall time of the whole load.
	Elapsed time.Duration
}
