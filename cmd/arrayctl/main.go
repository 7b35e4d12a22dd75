// Command arrayctl loads a JSON or YAML array, applies a script of
// operations to it and writes the result.
//
//	arrayctl [-config f.toml] [-in file] [-out file] [-format json|yaml]
//	         [-type int|float|string] [-seed n] [-indent] op...
//
// Files ending in .zst are zstd compressed. "-" means stdin or stdout.
// Query ops (first, last, min, max, count) are reported on the log stream
// and leave the array untouched.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/rawbytedev/sharedarray/internal/config"
	"github.com/rawbytedev/sharedarray/internal/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "arrayctl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("arrayctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "TOML config file")
	in := fs.String("in", "", "input file, - for stdin")
	out := fs.String("out", "", "output file, - for stdout")
	format := fs.String("format", "", "json or yaml")
	typ := fs.String("type", "", "element type: int, float or string")
	seed := fs.String("seed", "", "shuffle seed")
	indent := fs.Bool("indent", false, "indent JSON output")
	logLevel := fs.String("log-level", "", "trace, debug, info, warn, error or off")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "in":
			cfg.In = *in
		case "out":
			cfg.Out = *out
		case "format":
			cfg.Format = *format
		case "type":
			cfg.Type = *typ
		case "indent":
			cfg.Indent = *indent
		case "log-level":
			cfg.LogLevel = *logLevel
		case "seed":
			n, err := strconv.ParseUint(*seed, 10, 64)
			if err != nil {
				flagErr = fmt.Errorf("parse -seed: %w", err)
				return
			}
			cfg.Seed, cfg.HasSeed = n, true
		}
	})
	if flagErr != nil {
		return flagErr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg, stderr)
	data, err := readInput(cfg.In, stdin)
	if err != nil {
		return err
	}
	logger.Debug().Str("in", cfg.In).Int("bytes", len(data)).Msg("read input")

	var result []byte
	switch cfg.Type {
	case "int":
		result, err = script(data, fs.Args(), cfg, logger, strconv.Atoi)
	case "float":
		result, err = script(data, fs.Args(), cfg, logger, func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		})
	default:
		result, err = script(data, fs.Args(), cfg, logger, func(s string) (string, error) { return s, nil })
	}
	if err != nil {
		return err
	}
	return writeOutput(cfg.Out, stdout, result)
}

func newLogger(cfg config.Config, stderr io.Writer) zerolog.Logger {
	lc := logging.DefaultConfig(logging.ProfileRuntime)
	lc.Out = stderr
	lc.NoColor = !logging.IsTerminal(stderr)
	lc.ApplyEnv(os.Getenv)
	if lvl, ok := logging.ParseLevel(cfg.LogLevel); ok {
		lc.Level = lvl
	}
	return logging.New("arrayctl", lc)
}
