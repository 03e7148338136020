package loader

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/iamNilotpal/csvgz/internal/core/domain"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// ErrInvalidText indicates decompressed bytes are not valid in the
// configured encoding.
var ErrInvalidText = errors.New("invalid text")

var replacementChar = []byte(string(utf8.RuneError))

// textDecoder turns decompressed bytes into a UTF-8 string.
type textDecoder struct {
	name   string
	enc    encoding.Encoding
	policy domain.InvalidTextPolicy
}

func newTextDecoder(opts *domain.TextOptions) (*textDecoder, error) {
	enc, err := htmlindex.Get(opts.Encoding)
	if err != nil {
		return nil, err
	}

	name, err := htmlindex.Name(enc)
	if err != nil {
		name = opts.Encoding
	}

	return &textDecoder{name: name, enc: enc, policy: opts.InvalidText}, nil
}

func (d *textDecoder) isUTF8() bool {
	return d.name == "utf-8"
}

// decode returns the text and the number of invalid sequences replaced.
// Bytes are never otherwise altered; a leading BOM is kept.
func (d *textDecoder) decode(data []byte) (string, int, error) {
	if !d.isUTF8() {
		return d.transcode(data)
	}

	if utf8.Valid(data) {
		return string(data), 0, nil
	}

	if d.policy == domain.InvalidTextStrict {
		return "", 0, fmt.Errorf("%w: not utf-8 at byte offset %d", ErrInvalidText, firstInvalid(data))
	}

	out, err := unicode.UTF8.NewDecoder().Bytes(data)
	if err != nil {
		return "", 0, fmt.Errorf("decoding %s: %w", d.name, err)
	}
	return string(out), countInvalid(data), nil
}

// transcode converts data from a non UTF-8 encoding. The x/text decoders
// substitute U+FFFD for byte sequences they reject, so every U+FFFD in the
// output counts as a replacement.
func (d *textDecoder) transcode(data []byte) (string, int, error) {
	out, err := d.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", 0, fmt.Errorf("decoding %s: %w", d.name, err)
	}

	first := bytes.IndexRune(out, utf8.RuneError)
	if first < 0 {
		return string(out), 0, nil
	}

	if d.policy == domain.InvalidTextStrict {
		return "", 0, fmt.Errorf("%w: not %s at decoded offset %d", ErrInvalidText, d.name, first)
	}
	return string(out), bytes.Count(out, replacementChar), nil
}

func firstInvalid(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// countInvalid counts the bytes the UTF-8 decoder replaces with U+FFFD.
func countInvalid(data []byte) int {
	n := 0
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			n++
		}
		i += size
	}
	return n
}
