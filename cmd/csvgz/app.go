package main

import (
	"io"

	"github.com/iamNilotpal/csvgz/config"
	"github.com/iamNilotpal/csvgz/internal/adapters/report"
	"github.com/iamNilotpal/csvgz/internal/core/services/loader"
	"github.com/iamNilotpal/csvgz/pkg/errors"
	"github.com/iamNilotpal/csvgz/pkg/logger"
	"github.com/urfave/cli/v2"
)

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "csvgz",
		Usage:     "print the text of compressed CSV files",
		ArgsUsage: "[path|url ...]",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
				EnvVars: []string{"CSVGZ_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "compression",
				Usage:   "auto, gzip, zstd or none",
				EnvVars: []string{"CSVGZ_COMPRESSION"},
			},
			&cli.StringFlag{
				Name:    "encoding",
				Usage:   "text encoding label (utf-8, latin1, windows-1252, ...)",
				EnvVars: []string{"CSVGZ_ENCODING"},
			},
			&cli.StringFlag{
				Name:    "invalid-text",
				Usage:   "strict fails on invalid text, replace substitutes U+FFFD",
				EnvVars: []string{"CSVGZ_INVALID_TEXT"},
			},
			&cli.Uint64Flag{
				Name:    "max-size",
				Usage:   "maximum decompressed bytes, 0 for unlimited",
				EnvVars: []string{"CSVGZ_MAX_SIZE"},
			},
			&cli.StringFlag{
				Name:    "checksum",
				Usage:   "checksum algorithm for --stats (crc32-ieee, crc64-iso, crc64-ecma, sha1, sha256)",
				EnvVars: []string{"CSVGZ_CHECKSUM"},
			},
			&cli.IntFlag{
				Name:    "head",
				Aliases: []string{"n"},
				Usage:   "print the header plus N lines, 0 for everything",
				EnvVars: []string{"CSVGZ_HEAD"},
			},
			&cli.BoolFlag{
				Name:    "stats",
				Usage:   "write a JSON load report per input to stderr",
				EnvVars: []string{"CSVGZ_STATS"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn or error",
				EnvVars: []string{"CSVGZ_LOG_LEVEL"},
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "timeout for each URL fetch",
				EnvVars: []string{"CSVGZ_TIMEOUT"},
			},
		},
		Action: run,
		// main owns the exit code.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func run(c *cli.Context) error {
	cfg, err := resolveConfig(c)
	if err != nil {
		log, _ := logger.NewWithLevel("csvgz", "info", c.App.ErrWriter)
		defer log.Sync()
		if ve := errors.AsValidationError(err); ve != nil {
			log.Errorw("invalid configuration", "field", ve.Field, "value", ve.Value, "error", ve.Err)
		} else {
			log.Errorw("invalid configuration", "error", err)
		}
		return err
	}

	log, _ := logger.NewWithLevel("csvgz", cfg.LogLevel, c.App.ErrWriter)
	defer log.Sync()

	l, err := loader.New(cfg.LoaderOptions(), loader.WithLogger(log))
	if err != nil {
		if ve := errors.AsValidationError(err); ve != nil {
			log.Errorw("create loader error", "field", ve.Field, "value", ve.Value, "error", ve.Err)
		} else {
			log.Errorw("create loader error", "error", err)
		}
		return err
	}
	defer l.Close()

	for _, input := range cfg.Inputs {
		doc, err := l.Emit(c.Context, input, c.App.Writer)
		if err != nil {
			if le := errors.AsLoadError(err); le != nil {
				log.Errorw(
					"load failed",
					"stage", le.Operation, "category", le.Category.String(), "source", le.Source, "error", le.Err,
				)
			} else {
				log.Errorw("load failed", "source", input, "error", err)
			}
			return err
		}

		log.Debugw("input emitted", "source", input, "bytes", doc.DecompressedSize, "elapsed", doc.Elapsed)

		if cfg.Stats {
			if err := report.Write(c.App.ErrWriter, doc); err != nil {
				log.Warnw("report error", "source", input, "error", err)
			}
		}
	}

	return nil
}

// resolveConfig layers defaults, the optional config file, flags and
// positional arguments, in increasing precedence.
func resolveConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if c.IsSet("compression") {
		cfg.Compression.Algorithm = c.String("compression")
	}
	if c.IsSet("encoding") {
		cfg.Text.Encoding = c.String("encoding")
	}
	if c.IsSet("invalid-text") {
		cfg.Text.InvalidText = c.String("invalid-text")
	}
	if c.IsSet("max-size") {
		cfg.Compression.MaxDecodedSize = c.Uint64("max-size")
	}
	if c.IsSet("checksum") {
		cfg.Checksum.Enable = true
		cfg.Checksum.Algorithm = c.String("checksum")
	}
	if c.IsSet("head") {
		cfg.Head = c.Int("head")
	}
	if c.IsSet("stats") {
		cfg.Stats = c.Bool("stats")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("timeout") {
		cfg.Timeout = c.Duration("timeout")
	}

	if c.Args().Len() > 0 {
		cfg.Inputs = c.Args().Slice()
	}
	if len(cfg.Inputs) == 0 {
		cfg.Inputs = []string{config.DefaultInput}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
