// Command erasure-lab demonstrates what a nominally typed container
// does and does not guarantee at runtime: a string-declared sequence is
// violated through a privileged storage handle, and consumers that
// assume homogeneity fail while consumers that treat elements as opaque
// values do not.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/vajrock/erasure-lab/internal/config"
	"github.com/vajrock/erasure-lab/internal/lab"
	"github.com/vajrock/erasure-lab/internal/sequence"
)

var flagVerbose bool

func init() {
	flag.BoolVar(&flagVerbose, "v", false, "verbose output")
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "\nErasure-lab populates a string-declared sequence, forces a numeric")
		fmt.Fprintln(os.Stderr, "element into it past the type check, and shows which consumers notice.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(zerolog.InfoLevel)
	if flagVerbose {
		logger = logger.Level(zerolog.DebugLevel)
	}

	cfg := config.DefaultConfig()
	cfg.Verbose = flagVerbose

	l := lab.New(cfg)
	logger.Debug().Str("run_id", l.ID().String()).Msg("lab constructed")

	if err := l.Initialize(); err != nil {
		logger.Fatal().Err(err).Msg("initialization failed, the demonstration setup is broken")
	}

	// Opaque traversal succeeds even though the sequence is no longer
	// homogeneous.
	fmt.Println(l.FormatValues())

	// Invoking a string operation on the foreign element fails with a
	// different error kind than the cast failure below.
	if out, err := l.InvokeLengthOnForeignElement(); err != nil {
		reportFailure(logger, "length invocation", err)
	} else {
		fmt.Println(out)
	}

	// Declared-type traversal fails when it reaches the foreign element.
	if out, err := l.FormatReversedValues(); err != nil {
		reportFailure(logger, "reversed formatting", err)
	} else {
		fmt.Println(out)
	}
}

// reportFailure logs a demonstrated failure together with its error
// kind. The failures are the point of the demonstration, so they are
// reported in full and never swallowed.
func reportFailure(logger zerolog.Logger, op string, err error) {
	var mismatch *sequence.TypeMismatchError
	var invalid *sequence.InvalidOperationError
	switch {
	case errors.As(err, &mismatch):
		logger.Error().
			Str("operation", op).
			Str("kind", "type mismatch").
			Int("index", mismatch.Index).
			Str("actual", mismatch.Actual).
			Str("expected", mismatch.Expected).
			Msg(err.Error())
	case errors.As(err, &invalid):
		logger.Error().
			Str("operation", op).
			Str("kind", "invalid operation").
			Str("attempted", invalid.Op).
			Str("actual", invalid.Actual).
			Str("expected", invalid.Expected).
			Msg(err.Error())
	default:
		logger.Error().Str("operation", op).Msg(err.Error())
	}
}
