package config

import (
	"fmt"
	"os"
	"time"

	"github.com/iamNilotpal/csvgz/internal/core/domain"
	"github.com/iamNilotpal/csvgz/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultInput is loaded when neither the command line nor the config
// file names an input.
const DefaultInput = "meta.csv.gz"

type Config struct {
	Inputs      []string          `yaml:"inputs"`      // Paths or URLs, loaded in order
	Head        int               `yaml:"head"`        // Lines after the header to emit, 0 for all
	Stats       bool              `yaml:"stats"`       // Write a JSON report per input to stderr
	LogLevel    string            `yaml:"log_level"`   // debug, info, warn or error
	Timeout     time.Duration     `yaml:"timeout"`     // Per-request timeout for URLs
	Compression CompressionConfig `yaml:"compression"`
	Text        TextConfig        `yaml:"text"`
	Checksum    ChecksumConfig    `yaml:"checksum"`
}

// Holds decompression configuration
type CompressionConfig struct {
	Algorithm          string `yaml:"algorithm"`           // auto, gzip, zstd or none
	MaxDecodedSize     uint64 `yaml:"max_decoded_size"`    // Bytes, 0 for unlimited
	DecoderConcurrency uint8  `yaml:"decoder_concurrency"` // zstd decoders, 0 for one per CPU
}

// Holds text decoding configuration
type TextConfig struct {
	Encoding    string `yaml:"encoding"`     // WHATWG label, e.g. utf-8 or latin1
	InvalidText string `yaml:"invalid_text"` // strict or replace
}

type ChecksumConfig struct {
	Enable    bool   `yaml:"enable"`
	Algorithm string `yaml:"algorithm"`
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		Inputs:   []string{DefaultInput},
		LogLevel: "info",
		Timeout:  30 * time.Second,
		Compression: CompressionConfig{
			Algorithm: string(domain.CompressionAuto),
		},
		Text: TextConfig{
			Encoding:    "utf-8",
			InvalidText: string(domain.InvalidTextStrict),
		},
		Checksum: ChecksumConfig{
			Enable:    true,
			Algorithm: "crc32-ieee",
		},
	}
}

// Loads configuration from a YAML file. Keys missing from the file keep
// their DefaultConfig values.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate checks the fields the loader does not validate itself.
func (c *Config) Validate() error {
	if c.Head < 0 {
		return errors.NewValidationError("head", c.Head, fmt.Errorf("head must not be negative"))
	}

	if c.Timeout < 0 {
		return errors.NewValidationError("timeout", c.Timeout, fmt.Errorf("timeout must not be negative"))
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return errors.NewValidationError("log_level", c.LogLevel, fmt.Errorf("unknown log level"))
	}

	return nil
}

// LoaderOptions maps the file layout onto loader options.
func (c *Config) LoaderOptions() *domain.LoaderOptions {
	return &domain.LoaderOptions{
		Head:    c.Head,
		Timeout: c.Timeout,
		CompressionOptions: &domain.CompressionOptions{
			Algorithm:          domain.CompressionAlgorithm(c.Compression.Algorithm),
			MaxDecodedSize:     c.Compression.MaxDecodedSize,
			DecoderConcurrency: c.Compression.DecoderConcurrency,
		},
		TextOptions: &domain.TextOptions{
			Encoding:    c.Text.Encoding,
			InvalidText: domain.InvalidTextPolicy(c.Text.InvalidText),
		},
		ChecksumOptions: &domain.ChecksumOptions{
			Enable:    c.Checksum.Enable,
			Algorithm: domain.ChecksumAlgorithm(c.Checksum.Algorithm),
		},
	}
}
