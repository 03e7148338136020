package loader

import (
	"fmt"

	"github.com/iamNilotpal/csvgz/internal/adapters/checksum"
	"github.com/iamNilotpal/csvgz/internal/adapters/compression"
	"github.com/iamNilotpal/csvgz/internal/core/domain"
	"github.com/iamNilotpal/csvgz/pkg/errors"
	"golang.org/x/text/encoding/htmlindex"
)

// Validate checks options after defaults have been applied. Every failure
// is an *errors.ValidationError naming the offending field.
func Validate(opts *domain.LoaderOptions) error {
	if opts.Timeout < 0 {
		return errors.NewValidationError(
			"timeout", opts.Timeout, fmt.Errorf("timeout must not be negative, got %s", opts.Timeout),
		)
	}

	if err := compression.Validate(opts.CompressionOptions); err != nil {
		return errors.NewValidationError("compression", opts.CompressionOptions.Algorithm, err)
	}

	if opts.ChecksumOptions.Enable {
		if err := checksum.Validate(opts.ChecksumOptions); err != nil {
			return errors.NewValidationError("checksum", opts.ChecksumOptions.Algorithm, err)
		}
	}

	if _, err := htmlindex.Get(opts.TextOptions.Encoding); err != nil {
		return errors.NewValidationError(
			"encoding", opts.TextOptions.Encoding, fmt.Errorf("unsupported encoding %q: %w", opts.TextOptions.Encoding, err),
		)
	}

	switch opts.TextOptions.InvalidText {
	case domain.InvalidTextStrict, domain.InvalidTextReplace:
	default:
		return errors.NewValidationError(
			"invalid_text", opts.TextOptions.InvalidText,
			fmt.Errorf("invalid text policy must be %q or %q", domain.InvalidTextStrict, domain.InvalidTextReplace),
		)
	}

	return nil
}
