package sharedarray

import (
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/sharedarray/pkg/wire"
)

// storage never returns nil so an empty array encodes like an empty slice
// literal rather than a missing one.
func (a *Array[T]) storage() []T {
	if a.items == nil {
		return []T{}
	}
	return a.items
}

// MarshalJSON encodes the elements as a JSON array.
func (a *Array[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.storage())
}

// UnmarshalJSON replaces the contents with a decoded JSON array. null
// decodes to an empty array. On error the array is unchanged.
func (a *Array[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	a.items = nonNil(items)
	return nil
}

// MarshalYAML encodes the elements as a YAML sequence.
func (a *Array[T]) MarshalYAML() (any, error) {
	return a.storage(), nil
}

// UnmarshalYAML replaces the contents with a decoded YAML sequence.
func (a *Array[T]) UnmarshalYAML(node *yaml.Node) error {
	var items []T
	if err := node.Decode(&items); err != nil {
		return err
	}
	a.items = nonNil(items)
	return nil
}

// MarshalBinary encodes the elements with the wire list encoding.
// Element types the encoding cannot represent yield wire.ErrUnsupported.
func (a *Array[T]) MarshalBinary() ([]byte, error) {
	return wire.NewEncoder(wire.Options{}).EncodeSlice(a.storage())
}

// UnmarshalBinary replaces the contents with a decoded wire list.
func (a *Array[T]) UnmarshalBinary(data []byte) error {
	var items []T
	if err := wire.NewDecoder(wire.Options{}).DecodeSlice(data, &items); err != nil {
		return err
	}
	a.items = nonNil(items)
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
