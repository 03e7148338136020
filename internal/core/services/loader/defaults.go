package loader

import (
	"strings"

	"github.com/iamNilotpal/csvgz/internal/adapters/checksum"
	"github.com/iamNilotpal/csvgz/internal/adapters/compression"
	"github.com/iamNilotpal/csvgz/internal/adapters/remote"
	"github.com/iamNilotpal/csvgz/internal/core/domain"
)

const (
	DefaultEncoding    = "utf-8"
	DefaultInvalidText = domain.InvalidTextStrict
)

// DefaultTextOptions returns strict UTF-8 decoding.
func DefaultTextOptions() *domain.TextOptions {
	return &domain.TextOptions{
		Encoding:    DefaultEncoding,
		InvalidText: DefaultInvalidText,
	}
}

// DefaultOptions returns LoaderOptions with every section populated.
func DefaultOptions() *domain.LoaderOptions {
	return prepareDefaults(&domain.LoaderOptions{})
}

func prepareDefaults(opts *domain.LoaderOptions) *domain.LoaderOptions {
	if opts.Timeout == 0 {
		opts.Timeout = remote.DefaultTimeout
	}

	if opts.CompressionOptions == nil {
		opts.CompressionOptions = compression.DefaultOptions()
	} else if opts.CompressionOptions.Algorithm == "" {
		opts.CompressionOptions.Algorithm = domain.CompressionAuto
	}

	if opts.TextOptions == nil {
		opts.TextOptions = DefaultTextOptions()
	} else {
		if strings.TrimSpace(opts.TextOptions.Encoding) == "" {
			opts.TextOptions.Encoding = DefaultEncoding
		}

		if opts.TextOptions.InvalidText == "" {
			opts.TextOptions.InvalidText = DefaultInvalidText
		}
	}

	if opts.ChecksumOptions == nil {
		opts.ChecksumOptions = checksum.DefaultOptions()
	} else if opts.ChecksumOptions.Enable && opts.ChecksumOptions.Algorithm == "" {
		opts.ChecksumOptions.Algorithm = checksum.CRC32IEEE
	}

	return opts
}
