// Package wire is a compact binary list encoding for plain slices.
//
// Layout: varint element count, then every element in order. Fixed-width
// kinds are little-endian (int and uint take 8 bytes), strings and []byte
// elements carry a varint length prefix. There is no header or envelope, so
// a slice and any wrapper delegating to it encode to the same bytes.
package wire

import (
	"errors"
	"reflect"

	"github.com/rawbytedev/sharedarray/internal/common"
)

var (
	ErrUnsupported = errors.New("wire: unsupported element type")
	ErrNotSlice    = errors.New("wire: expected slice")
	ErrNotSlicePtr = errors.New("wire: expected pointer to slice")
	ErrTruncated   = errors.New("wire: truncated input")
)

type Options struct {
	// UnsafeStrings decodes strings without copying; the caller must keep
	// the input buffer alive and unmodified while the strings are in use.
	UnsafeStrings bool
}

type Encoder struct {
	Opts Options
	buf  []byte
}

func NewEncoder(opts Options) *Encoder {
	return &Encoder{Opts: opts}
}

// EncodeSlice encodes v, a slice or pointer to slice. The returned bytes
// are only valid until the next call when the encoder is reused.
func (e *Encoder) EncodeSlice(v any) ([]byte, error) {
	e.buf = e.buf[:0]
	var fast []byte
	switch s := v.(type) {
	case []int8:
		fast = AppendIntegers(e.buf, s)
	case []int16:
		fast = AppendIntegers(e.buf, s)
	case []int32:
		fast = AppendIntegers(e.buf, s)
	case []int64:
		fast = AppendIntegers(e.buf, s)
	case []uint16:
		fast = AppendIntegers(e.buf, s)
	case []uint32:
		fast = AppendIntegers(e.buf, s)
	case []uint64:
		fast = AppendIntegers(e.buf, s)
	case []float32:
		fast = AppendFloats(e.buf, s)
	case []float64:
		fast = AppendFloats(e.buf, s)
	}
	if fast != nil {
		e.buf = fast
		return fast, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice {
		return nil, ErrNotSlice
	}
	out, err := appendSlice(e.buf, rv)
	if err != nil {
		return nil, err
	}
	e.buf = out
	return out, nil
}

func appendSlice(dst []byte, rv reflect.Value) ([]byte, error) {
	elem := rv.Type().Elem()
	k := elem.Kind()
	n := rv.Len()
	dst = common.AppendUvarint(dst, uint64(n))

	switch {
	case common.IsFixedKind(k):
		if k == reflect.Uint8 {
			return append(dst, rv.Bytes()...), nil
		}
		for i := 0; i < n; i++ {
			dst = common.AppendFixed(dst, rv.Index(i))
		}
	case k == reflect.String:
		for i := 0; i < n; i++ {
			s := rv.Index(i).String()
			dst = common.AppendUvarint(dst, uint64(len(s)))
			dst = append(dst, s...)
		}
	case k == reflect.Slice && elem.Elem().Kind() == reflect.Uint8:
		for i := 0; i < n; i++ {
			b := rv.Index(i).Bytes()
			dst = common.AppendUvarint(dst, uint64(len(b)))
			dst = append(dst, b...)
		}
	default:
		return nil, ErrUnsupported
	}
	return dst, nil
}
