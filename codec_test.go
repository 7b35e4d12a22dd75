package sharedarray

import (
	stdjson "encoding/json"
	"testing"
	"testing/quick"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/sharedarray/pkg/wire"
)

type celsius float64

type reading struct {
	Station string          `json:"station" yaml:"station"`
	Temps   *Array[celsius] `json:"temps" yaml:"temps"`
}

func TestJSONTransparent(t *testing.T) {
	a := Of(1, 2, 3)
	got, err := json.Marshal(a)
	require.NoError(t, err)
	want, err := json.Marshal([]int{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, want, got)

	empty, err := json.Marshal(New[int]())
	require.NoError(t, err)
	require.Equal(t, "[]", string(empty))
	zero, err := json.Marshal(new(Array[int]))
	require.NoError(t, err)
	require.Equal(t, "[]", string(zero))
}

func TestJSONDecode(t *testing.T) {
	var a Array[string]
	require.NoError(t, json.Unmarshal([]byte(`["x","y"]`), &a))
	require.Equal(t, []string{"x", "y"}, a.Items())

	require.NoError(t, a.UnmarshalJSON([]byte("null")))
	require.True(t, a.IsEmpty())
	require.NotNil(t, a.Raw())

	b := Of(1, 2)
	require.Error(t, b.UnmarshalJSON([]byte(`[1,"x"]`)))
	require.Equal(t, []int{1, 2}, b.Items())
}

func TestJSONStructField(t *testing.T) {
	in := reading{Station: "north", Temps: Of[celsius](1.5, -2)}
	data, err := stdjson.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"station":"north","temps":[1.5,-2]}`, string(data))

	var out reading
	require.NoError(t, stdjson.Unmarshal(data, &out))
	require.True(t, Equal(in.Temps, out.Temps))

	var fast reading
	require.NoError(t, json.Unmarshal(data, &fast))
	require.True(t, Equal(in.Temps, fast.Temps))
}

func TestYAMLRoundTrip(t *testing.T) {
	data, err := yaml.Marshal(Of("a", "b"))
	require.NoError(t, err)
	want, err := yaml.Marshal([]string{"a", "b"})
	require.NoError(t, err)
	require.Equal(t, want, data)

	var a Array[string]
	require.NoError(t, yaml.Unmarshal(data, &a))
	require.Equal(t, []string{"a", "b"}, a.Items())

	empty, err := yaml.Marshal(new(Array[int]))
	require.NoError(t, err)
	require.Equal(t, "[]\n", string(empty))

	in := reading{Station: "south", Temps: Of[celsius](3)}
	data, err = yaml.Marshal(in)
	require.NoError(t, err)
	var out reading
	require.NoError(t, yaml.Unmarshal(data, &out))
	require.True(t, Equal(in.Temps, out.Temps))

	b := Of(1)
	require.Error(t, yaml.Unmarshal([]byte("[x, y]"), b))
	require.Equal(t, []int{1}, b.Items())
}

func TestBinaryTransparent(t *testing.T) {
	a := Of[int64](1, -2, 3)
	got, err := a.MarshalBinary()
	require.NoError(t, err)
	want, err := wire.NewEncoder(wire.Options{}).EncodeSlice([]int64{1, -2, 3})
	require.NoError(t, err)
	require.Equal(t, want, got)

	named, err := Of[celsius](1.5, 2).MarshalBinary()
	require.NoError(t, err)
	plain, err := wire.NewEncoder(wire.Options{}).EncodeSlice([]float64{1.5, 2})
	require.NoError(t, err)
	require.Equal(t, plain, named)

	var c Array[celsius]
	require.NoError(t, c.UnmarshalBinary(named))
	require.Equal(t, []celsius{1.5, 2}, c.Items())

	empty, err := new(Array[string]).MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{0}, empty)
}

func TestBinaryRoundTrip(t *testing.T) {
	ints := func(xs []int) bool {
		data, err := FromSlice(xs).MarshalBinary()
		if err != nil {
			return false
		}
		var a Array[int]
		return a.UnmarshalBinary(data) == nil && Equal(&a, FromSlice(xs))
	}
	require.NoError(t, quick.Check(ints, &quick.Config{}))

	strs := func(xs []string) bool {
		data, err := FromSlice(xs).MarshalBinary()
		if err != nil {
			return false
		}
		var a Array[string]
		return a.UnmarshalBinary(data) == nil && Equal(&a, FromSlice(xs))
	}
	require.NoError(t, quick.Check(strs, &quick.Config{}))
}

func TestBinaryErrors(t *testing.T) {
	_, err := Of(struct{ X int }{1}).MarshalBinary()
	require.ErrorIs(t, err, wire.ErrUnsupported)

	a := Of[int32](7)
	require.ErrorIs(t, a.UnmarshalBinary([]byte{2, 1, 0, 0, 0}), wire.ErrTruncated)
	require.ErrorIs(t, a.UnmarshalBinary([]byte{0, 0}), wire.ErrTrailingData)
	require.Equal(t, []int32{7}, a.Items())
}
