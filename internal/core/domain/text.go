package domain

// InvalidTextPolicy decides what happens when decompressed bytes are not
// valid in the configured encoding.
type InvalidTextPolicy string

const (
	// InvalidTextStrict fails the load with a decoding error.
	InvalidTextStrict InvalidTextPolicy = "strict"

	// InvalidTextReplace substitutes U+FFFD for each invalid sequence.
	InvalidTextReplace InvalidTextPolicy = "replace"
)

// TextOptions configures decoding of decompressed bytes into text.
type TextOptions struct {
	// Encoding is a WHATWG encoding label such as "utf-8", "latin1" or
	// "windows-1252". Non UTF-8 input is transcoded to UTF-8.
	//
	// Default: "utf-8"
	Encoding string

	// InvalidText applies to every encoding. Single-byte encodings map
	// every byte to a character and never trigger it. For other non UTF-8
	// encodings a U+FFFD in the transcoded text counts as invalid input.
	//
	// Default: InvalidTextStrict
	InvalidText InvalidTextPolicy
}
