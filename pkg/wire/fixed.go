package wire

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/rawbytedev/sharedarray/internal/common"
	"golang.org/x/exp/constraints"
)

// widthOf is the wire width of T. uintptr is written like uint64.
func widthOf[T any]() int {
	if w := common.FixedSize(reflect.TypeFor[T]().Kind()); w > 0 {
		return w
	}
	return 8
}

// AppendIntegers appends the list encoding of vals to dst.
func AppendIntegers[T constraints.Integer](dst []byte, vals []T) []byte {
	dst = common.AppendUvarint(dst, uint64(len(vals)))
	switch widthOf[T]() {
	case 1:
		for _, v := range vals {
			dst = append(dst, byte(v))
		}
	case 2:
		for _, v := range vals {
			dst = binary.LittleEndian.AppendUint16(dst, uint16(v))
		}
	case 4:
		for _, v := range vals {
			dst = binary.LittleEndian.AppendUint32(dst, uint32(v))
		}
	default:
		for _, v := range vals {
			dst = binary.LittleEndian.AppendUint64(dst, uint64(v))
		}
	}
	return dst
}

// AppendFloats appends the list encoding of vals to dst.
func AppendFloats[T constraints.Float](dst []byte, vals []T) []byte {
	dst = common.AppendUvarint(dst, uint64(len(vals)))
	if widthOf[T]() == 4 {
		for _, v := range vals {
			dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(v)))
		}
		return dst
	}
	for _, v := range vals {
		dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(float64(v)))
	}
	return dst
}

// ReadIntegers decodes a list of integers and returns it with the number of
// bytes consumed.
func ReadIntegers[T constraints.Integer](data []byte) ([]T, int, error) {
	w := widthOf[T]()
	cnt, pos, err := readCount(data, w)
	if err != nil {
		return nil, 0, err
	}
	out := make([]T, cnt)
	signed := reflect.TypeFor[T]().Kind() <= reflect.Int64 // Int..Int64 precede the unsigned kinds
	for i := range out {
		b := data[pos : pos+w]
		switch w {
		case 1:
			if signed {
				out[i] = T(int8(b[0]))
			} else {
				out[i] = T(b[0])
			}
		case 2:
			if signed {
				out[i] = T(int16(binary.LittleEndian.Uint16(b)))
			} else {
				out[i] = T(binary.LittleEndian.Uint16(b))
			}
		case 4:
			if signed {
				out[i] = T(int32(binary.LittleEndian.Uint32(b)))
			} else {
				out[i] = T(binary.LittleEndian.Uint32(b))
			}
		default:
			out[i] = T(binary.LittleEndian.Uint64(b))
		}
		pos += w
	}
	return out, pos, nil
}

// ReadFloats decodes a list of floats and returns it with the number of
// bytes consumed.
func ReadFloats[T constraints.Float](data []byte) ([]T, int, error) {
	w := widthOf[T]()
	cnt, pos, err := readCount(data, w)
	if err != nil {
		return nil, 0, err
	}
	out := make([]T, cnt)
	for i := range out {
		if w == 4 {
			out[i] = T(math.Float32frombits(binary.LittleEndian.Uint32(data[pos:])))
		} else {
			out[i] = T(math.Float64frombits(binary.LittleEndian.Uint64(data[pos:])))
		}
		pos += w
	}
	return out, pos, nil
}

// readCount reads the element count and checks that cnt elements of width
// w follow.
func readCount(data []byte, w int) (cnt, pos int, err error) {
	n, hdr := common.ReadUvarint(data)
	if hdr == 0 {
		return 0, 0, ErrTruncated
	}
	if w > 0 && n > uint64(len(data)-hdr)/uint64(w) {
		return 0, 0, ErrTruncated
	}
	return int(n), hdr, nil
}
