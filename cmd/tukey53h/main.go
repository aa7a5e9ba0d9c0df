// Command tukey53h smooths a sequence of samples with the Tukey 53H filter.
//
// Usage:
//
//	tukey53h [flags] < samples.txt
//
// Samples are read as whitespace-separated numbers from the input file or
// stdin and written one per line. The output is 8 samples shorter than the
// input; inputs shorter than that are passed through unchanged.
//
// Examples:
//
//	seq 1 10 | tukey53h -k 0.5
//	tukey53h -t decimal -i prices.txt
//	tukey53h -t int -k 2 -s < counts.txt
package main

import (
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
)

// AppName is the app name
const AppName = "tukey53h"

// AppDesc is the app description
const AppDesc = "Tukey 53H robust smoothing filter"

var version = "unknown"

func main() {
	log.SetFlags(0)

	cfg := newConfig()
	chk(parseFlags(&cfg, os.Args[1:]), "failed to parse arguments")
	chk(cfg.validate(), "invalid config")

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var in io.Reader = os.Stdin
	if cfg.input != "" && cfg.input != "-" {
		f, err := os.Open(cfg.input)
		chk(errors.Wrapf(err, "open %s", cfg.input), "failed to read input")
		defer f.Close()
		in = f
	}

	chk(run(cfg, in, os.Stdout, logger), "failed to filter")
}

func parseFlags(cfg *config, args []string) error {
	parser := flaggy.NewParser(AppName)
	parser.Description = AppDesc
	parser.Version = version

	parser.Float64(&cfg.k, "k", "sensitivity", "max deviation from the smoothed value before a sample is replaced")
	parser.String(&cfg.kind, "t", "type", "sample type (float, decimal, int)")
	parser.String(&cfg.input, "i", "input", "input file (default stdin)")
	parser.Bool(&cfg.stats, "s", "stats", "print a residual report to stderr")
	parser.Bool(&cfg.verbose, "d", "debug", "debug logging")

	return parser.ParseArgs(args)
}

func chk(err error, wrap string) {
	if err != nil {
		log.Fatalln(wrap+": ", err)
	}
}
