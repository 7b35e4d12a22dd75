package main

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/sharedarray"
	"github.com/rawbytedev/sharedarray/internal/config"
)

var (
	errUnknownOp  = errors.New("unknown op")
	errBadArgs    = errors.New("bad op arguments")
	errOutOfRange = errors.New("index out of range")
)

// script decodes data, applies ops in order and encodes the result in the
// configured format.
func script[T cmp.Ordered](data []byte, ops []string, cfg config.Config, logger zerolog.Logger, parse func(string) (T, error)) ([]byte, error) {
	a := sharedarray.New[T]()
	if err := decode(data, cfg.Format, a); err != nil {
		return nil, err
	}
	logger.Debug().Int("len", a.Len()).Msg("decoded")

	var r *rand.Rand
	if cfg.HasSeed {
		r = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}
	for _, op := range ops {
		if err := apply(a, op, r, logger, parse); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	return encode(a, cfg)
}

func apply[T cmp.Ordered](a *sharedarray.Array[T], op string, r *rand.Rand, logger zerolog.Logger, parse func(string) (T, error)) error {
	name, rest, _ := strings.Cut(op, ":")
	switch name {
	case "append":
		v, err := parse(rest)
		if err != nil {
			return err
		}
		a.Append(v)
	case "insert":
		is, vs, ok := strings.Cut(rest, ":")
		if !ok {
			return errBadArgs
		}
		i, err := index(is, a.Len()+1)
		if err != nil {
			return err
		}
		v, err := parse(vs)
		if err != nil {
			return err
		}
		a.Insert(i, v)
	case "remove":
		i, err := index(rest, a.Len())
		if err != nil {
			return err
		}
		a.Remove(i)
	case "removeall":
		v, err := parse(rest)
		if err != nil {
			return err
		}
		a.RemoveAllFunc(func(x T) bool { return x == v })
	case "sort":
		sharedarray.Sort(a)
	case "sort-desc":
		a.SortFunc(func(x, y T) int { return cmp.Compare(y, x) })
	case "reverse":
		a.Reverse()
	case "shuffle":
		a.Shuffle(r)
	case "swap":
		is, js, ok := strings.Cut(rest, ":")
		if !ok {
			return errBadArgs
		}
		i, err := index(is, a.Len())
		if err != nil {
			return err
		}
		j, err := index(js, a.Len())
		if err != nil {
			return err
		}
		a.SwapAt(i, j)
	case "dedupe":
		seen := make(map[T]struct{}, a.Len())
		a.RemoveAllFunc(func(x T) bool {
			if _, dup := seen[x]; dup {
				return true
			}
			seen[x] = struct{}{}
			return false
		})
	case "first", "last", "min", "max":
		var (
			v  T
			ok bool
		)
		switch name {
		case "first":
			v, ok = a.First()
		case "last":
			v, ok = a.Last()
		case "min":
			v, ok = sharedarray.Min(a)
		default:
			v, ok = sharedarray.Max(a)
		}
		ev := logger.Info().Str("op", name)
		if ok {
			ev = ev.Interface("value", v)
		}
		ev.Bool("found", ok).Msg("query")
	case "count":
		logger.Info().Str("op", name).Int("value", a.Len()).Msg("query")
	default:
		return errUnknownOp
	}
	return nil
}

// index parses s as an index in [0, n).
func index(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errBadArgs, err)
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%w: %d not in [0:%d)", errOutOfRange, i, n)
	}
	return i, nil
}

func decode[T any](data []byte, format string, a *sharedarray.Array[T]) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	var err error
	if format == "yaml" {
		err = yaml.Unmarshal(data, a)
	} else {
		err = json.Unmarshal(data, a)
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", format, err)
	}
	return nil
}

func encode[T any](a *sharedarray.Array[T], cfg config.Config) ([]byte, error) {
	if cfg.Format == "yaml" {
		return yaml.Marshal(a)
	}
	var (
		out []byte
		err error
	)
	if cfg.Indent {
		out, err = json.MarshalIndent(a, "", "  ")
	} else {
		out, err = json.Marshal(a)
	}
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
