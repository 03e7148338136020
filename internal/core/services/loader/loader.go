// Package loader reads a compressed CSV payload, decompresses it in memory
// and decodes it as text. The stages run strictly in order: the whole
// payload is read before decompression starts, and decompression finishes
// before decoding. Any stage failure aborts the load and nothing is emitted.
package loader

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/iamNilotpal/csvgz/internal/adapters/checksum"
	"github.com/iamNilotpal/csvgz/internal/adapters/compression"
	"github.com/iamNilotpal/csvgz/internal/adapters/fs"
	"github.com/iamNilotpal/csvgz/internal/adapters/remote"
	"github.com/iamNilotpal/csvgz/internal/core/domain"
	"github.com/iamNilotpal/csvgz/internal/core/ports"
	"github.com/iamNilotpal/csvgz/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var errNoSource = fmt.Errorf("no source handles this name")

// Loader runs the read → decompress → decode pipeline.
// A Loader is safe for concurrent use once constructed.
type Loader struct {
	options *domain.LoaderOptions
	log     *zap.SugaredLogger

	sources       []ports.SourcePort // First source whose Handles matches wins.
	decompressors map[domain.CompressionAlgorithm]ports.DecompressorPort
	checksum      ports.ChecksumPort // Nil when checksums are disabled.
	text          *textDecoder
}

// Option customizes a Loader during construction.
type Option func(*Loader)

// WithLogger sets the logger used for stage diagnostics.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// WithSource registers a source ahead of the built-in local and HTTP ones.
func WithSource(src ports.SourcePort) Option {
	return func(l *Loader) {
		l.sources = append(l.sources, src)
	}
}

// New validates opts, fills defaults and builds the adapters.
// A nil opts uses DefaultOptions.
//
// Returns an *errors.ValidationError if any option is out of range.
func New(opts *domain.LoaderOptions, options ...Option) (*Loader, error) {
	if opts == nil {
		opts = &domain.LoaderOptions{}
	}
	opts = prepareDefaults(opts)

	if err := Validate(opts); err != nil {
		return nil, err
	}

	l := Loader{
		options:       opts,
		log:           zap.NewNop().Sugar(),
		decompressors: make(map[domain.CompressionAlgorithm]ports.DecompressorPort),
	}

	for _, opt := range options {
		opt(&l)
	}

	l.sources = append(l.sources, remote.NewHTTPSource(nil, opts.Timeout), fs.NewLocalFileSystem())

	text, err := newTextDecoder(opts.TextOptions)
	if err != nil {
		return nil, errors.NewValidationError("encoding", opts.TextOptions.Encoding, err)
	}
	l.text = text

	if opts.ChecksumOptions.Enable {
		sum, err := checksum.New(opts.ChecksumOptions.Algorithm)
		if err != nil {
			return nil, errors.NewValidationError("checksum", opts.ChecksumOptions.Algorithm, err)
		}
		l.checksum = sum
	}

	algorithms := []domain.CompressionAlgorithm{opts.CompressionOptions.Algorithm}
	if opts.CompressionOptions.Algorithm == domain.CompressionAuto {
		algorithms = []domain.CompressionAlgorithm{
			domain.CompressionGzip, domain.CompressionZstd, domain.CompressionNone,
		}
	}

	for _, algorithm := range algorithms {
		d, err := compression.New(algorithm, opts.CompressionOptions)
		if err != nil {
			l.Close()
			return nil, errors.NewValidationError("compression", algorithm, err)
		}
		l.decompressors[algorithm] = d
	}

	return &l, nil
}

// Options returns the effective options after defaults.
func (l *Loader) Options() *domain.LoaderOptions {
	return l.options
}

// Load returns the fully decompressed and decoded content of name, which is
// a local path or an http(s) URL.
//
// Every error is an *errors.LoadError: ErrorStorage for read failures,
// ErrorDecompression for malformed, unknown or oversized streams and
// ErrorDecoding for text that violates the configured policy.
func (l *Loader) Load(ctx context.Context, name string) (*domain.Document, error) {
	start := time.Now()

	payload, err := l.read(ctx, name)
	if err != nil {
		return nil, err
	}
	l.log.Debugw("payload read", "source", name, "bytes", len(payload.Data))

	algorithm := l.options.CompressionOptions.Algorithm
	if algorithm == domain.CompressionAuto {
		algorithm = compression.Detect(payload.Data, name)
		l.log.Debugw("compression detected", "source", name, "algorithm", algorithm)
	}

	raw, err := l.decompressors[algorithm].Decompress(payload.Data)
	if err != nil {
		return nil, errors.NewLoadError(errors.ErrorDecompression, "decompress", name, err)
	}
	l.log.Debugw("payload decompressed", "source", name, "algorithm", algorithm, "bytes", len(raw))

	text, replaced, err := l.text.decode(raw)
	if err != nil {
		return nil, errors.NewLoadError(errors.ErrorDecoding, "decode", name, err)
	}
	if replaced > 0 {
		l.log.Warnw("invalid text replaced", "source", name, "sequences", replaced)
	}

	doc := domain.Document{
		Text:             text,
		Source:           name,
		Replaced:         replaced,
		Algorithm:        algorithm,
		Encoding:         l.text.name,
		CompressedSize:   len(payload.Data),
		DecompressedSize: len(raw),
	}

	if l.checksum != nil {
		doc.Checksum = l.checksum.Calculate([]byte(text))
		doc.ChecksumAlgorithm = domain.ChecksumAlgorithm(l.checksum.Name())
	}

	doc.Elapsed = time.Since(start)
	return &doc, nil
}

// Emit loads name and writes its text, trimmed to the configured head, to w.
// Nothing is written unless the load succeeded.
func (l *Loader) Emit(ctx context.Context, name string, w io.Writer) (*domain.Document, error) {
	doc, err := l.Load(ctx, name)
	if err != nil {
		return nil, err
	}

	if _, err := io.WriteString(w, Head(doc.Text, l.options.Head)); err != nil {
		return nil, errors.NewLoadError(errors.ErrorStorage, "write", name, err)
	}

	return doc, nil
}

func (l *Loader) read(ctx context.Context, name string) (*domain.Payload, error) {
	for _, src := range l.sources {
		if !src.Handles(name) {
			continue
		}

		data, err := src.Fetch(ctx, name)
		if err != nil {
			return nil, errors.NewLoadError(errors.ErrorStorage, "read", name, err)
		}
		return &domain.Payload{Source: name, Data: data}, nil
	}

	return nil, errors.NewLoadError(errors.ErrorStorage, "read", name, errNoSource)
}

// Close releases decompressor resources.
func (l *Loader) Close() error {
	var err error
	for _, d := range l.decompressors {
		err = multierr.Append(err, d.Close())
	}
	return err
}
