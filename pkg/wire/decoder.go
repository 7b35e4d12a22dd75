package wire

import (
	"bytes"
	"errors"
	"reflect"
	"unsafe"

	"github.com/rawbytedev/sharedarray/internal/common"
)

var ErrTrailingData = errors.New("wire: trailing bytes after list")

type Decoder struct {
	Opts Options
}

func NewDecoder(opts Options) *Decoder {
	return &Decoder{Opts: opts}
}

// DecodeSlice decodes data into out, which must be a pointer to a slice.
// The whole input must be consumed.
func (d *Decoder) DecodeSlice(data []byte, out any) error {
	n, err := d.decodeFast(data, out)
	if err != nil {
		return err
	}
	if n < 0 {
		v := reflect.ValueOf(out)
		if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Slice {
			return ErrNotSlicePtr
		}
		n, err = d.decodeReflect(data, v.Elem())
		if err != nil {
			return err
		}
	}
	if n != len(data) {
		return ErrTrailingData
	}
	return nil
}

// decodeFast handles unnamed numeric slices; n is -1 when out is not one.
func (d *Decoder) decodeFast(data []byte, out any) (n int, err error) {
	switch p := out.(type) {
	case *[]int8:
		*p, n, err = ReadIntegers[int8](data)
	case *[]int16:
		*p, n, err = ReadIntegers[int16](data)
	case *[]int32:
		*p, n, err = ReadIntegers[int32](data)
	case *[]int64:
		*p, n, err = ReadIntegers[int64](data)
	case *[]uint16:
		*p, n, err = ReadIntegers[uint16](data)
	case *[]uint32:
		*p, n, err = ReadIntegers[uint32](data)
	case *[]uint64:
		*p, n, err = ReadIntegers[uint64](data)
	case *[]float32:
		*p, n, err = ReadFloats[float32](data)
	case *[]float64:
		*p, n, err = ReadFloats[float64](data)
	default:
		return -1, nil
	}
	return n, err
}

func (d *Decoder) decodeReflect(data []byte, dst reflect.Value) (int, error) {
	elem := dst.Type().Elem()
	k := elem.Kind()
	w := common.FixedSize(k)
	cnt, pos, err := readCount(data, max(w, 1))
	if err != nil {
		return 0, err
	}

	slice := reflect.MakeSlice(dst.Type(), cnt, cnt)
	switch {
	case w > 0:
		for i := 0; i < cnt; i++ {
			common.SetFixed(slice.Index(i), data[pos:pos+w], k)
			pos += w
		}
	case k == reflect.String:
		for i := 0; i < cnt; i++ {
			payload, next, err := readChunk(data, pos)
			if err != nil {
				return 0, err
			}
			pos = next
			if d.Opts.UnsafeStrings && len(payload) > 0 {
				slice.Index(i).SetString(unsafe.String(&payload[0], len(payload)))
			} else {
				slice.Index(i).SetString(string(payload))
			}
		}
	case k == reflect.Slice && elem.Elem().Kind() == reflect.Uint8:
		for i := 0; i < cnt; i++ {
			payload, next, err := readChunk(data, pos)
			if err != nil {
				return 0, err
			}
			pos = next
			slice.Index(i).SetBytes(bytes.Clone(payload))
		}
	default:
		return 0, ErrUnsupported
	}
	dst.Set(slice)
	return pos, nil
}

// readChunk reads a length-prefixed payload starting at pos.
func readChunk(data []byte, pos int) ([]byte, int, error) {
	l, n := common.ReadUvarint(data[pos:])
	if n == 0 {
		return nil, 0, ErrTruncated
	}
	pos += n
	if l > uint64(len(data)-pos) {
		return nil, 0, ErrTruncated
	}
	end := pos + int(l)
	return data[pos:end], end, nil
}
