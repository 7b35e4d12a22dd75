// Command wireprof runs the binary codec in a loop and writes a heap
// profile, optionally serving net/http/pprof while it runs.
package main

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/rawbytedev/sharedarray"
	"github.com/rawbytedev/sharedarray/internal/logging"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "wireprof: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("wireprof", flag.ContinueOnError)
	out := fs.String("out", "mem.prof", "heap profile path")
	iterations := fs.Int("n", 10000, "encode/decode iterations")
	addr := fs.String("http", "", "serve pprof on this address, e.g. localhost:6060")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logger := logging.Configure("wireprof", logging.ProfileRuntime)

	if *addr != "" {
		go func() {
			logger.Info().Str("addr", *addr).Msg("serving pprof")
			if err := http.ListenAndServe(*addr, nil); err != nil {
				logger.Error().Err(err).Msg("pprof server stopped")
			}
		}()
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	words := sharedarray.Of("azerty", "hello", "world", "random")
	temps := sharedarray.Of(100.5, 165.63, 153.5)
	for i := 0; i < *iterations; i++ {
		if err := roundTrip(words); err != nil {
			return err
		}
		if err := roundTrip(temps); err != nil {
			return err
		}
	}
	if err := pprof.WriteHeapProfile(f); err != nil {
		return err
	}
	logger.Info().Str("out", *out).Int("iterations", *iterations).Msg("wrote heap profile")
	return nil
}

func roundTrip[T any](a *sharedarray.Array[T]) error {
	data, err := a.MarshalBinary()
	if err != nil {
		return err
	}
	return sharedarray.New[T]().UnmarshalBinary(data)
}
