// Command csvgz prints the decompressed text of gzip (or zstd) compressed
// CSV files, local or remote.
package main

import (
	"os"

	"github.com/iamNilotpal/csvgz/pkg/errors"
)

const (
	exitUsage = iota + 1
	exitStorage
	exitDecompression
	exitDecoding
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	le := errors.AsLoadError(err)
	if le == nil {
		return exitUsage
	}

	switch le.Category {
	case errors.ErrorStorage:
		return exitStorage
	case errors.ErrorDecompression:
		return exitDecompression
	case errors.ErrorDecoding:
		return exitDecoding
	default:
		return exitUsage
	}
}
