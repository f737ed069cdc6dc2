package qdrant

// This file converts a generic map[string]any into map[string]*qdrant.Value,
// the strongly-typed payload representation Qdrant stores with each point.
// It is a custom implementation based on
// "google.golang.org/protobuf/types/known/structpb", extended to support
// IntegerValue and DoubleValue instead of a single NumberValue.
//
// Conversion is pure, depth-first and fail-fast: the first unsupported type
// or invalid UTF-8 string anywhere in the tree aborts the whole conversion
// with no partial output. Input is assumed to be a tree; cyclic metadata is
// a caller bug.

import (
	"encoding/base64"
	"fmt"
	"unicode/utf8"

	qdrant "github.com/qdrant/go-client/qdrant"
)

// NewValueMap converts a map of string to any into a map of string to
// *qdrant.Value.
//
//	╔════════════════════════╤════════════════════════════════════════════╗
//	║ Go type                │ Conversion                                 ║
//	╠════════════════════════╪════════════════════════════════════════════╣
//	║ nil                    │ stored as NullValue                        ║
//	║ bool                   │ stored as BoolValue                        ║
//	║ int, int32, int64      │ stored as IntegerValue                     ║
//	║ uint, uint32, uint64   │ stored as IntegerValue                     ║
//	║ float32, float64       │ stored as DoubleValue                      ║
//	║ string                 │ stored as StringValue; must be valid UTF-8 ║
//	║ []byte                 │ stored as StringValue; base64-encoded      ║
//	║ map[string]any         │ stored as StructValue                      ║
//	║ []any                  │ stored as ListValue                        ║
//	╚════════════════════════╧════════════════════════════════════════════╝
//
// Map keys must be valid UTF-8. Any other value type fails the conversion.
// Note the []byte asymmetry: bytes are base64-encoded on write and come
// back as plain strings on read; the reader must know to decode them.
func NewValueMap(inputMap map[string]any) (map[string]*qdrant.Value, error) {
	valueMap := make(map[string]*qdrant.Value, len(inputMap))
	for key, val := range inputMap {
		if !utf8.ValidString(key) {
			return nil, fmt.Errorf("invalid UTF-8 in string: %q", key)
		}
		value, err := NewValue(val)
		if err != nil {
			return nil, err
		}
		valueMap[key] = value
	}
	return valueMap, nil
}

// NewValue constructs a *qdrant.Value from a general-purpose Go interface.
func NewValue(v any) (*qdrant.Value, error) {
	switch v := v.(type) {
	case nil:
		return newNullValue(), nil
	case bool:
		return newBoolValue(v), nil
	case int:
		return newIntegerValue(int64(v)), nil
	case int8:
		return newIntegerValue(int64(v)), nil
	case int16:
		return newIntegerValue(int64(v)), nil
	case int32:
		return newIntegerValue(int64(v)), nil
	case int64:
		return newIntegerValue(v), nil
	case uint:
		return newIntegerValue(int64(v)), nil
	case uint8:
		return newIntegerValue(int64(v)), nil
	case uint16:
		return newIntegerValue(int64(v)), nil
	case uint32:
		return newIntegerValue(int64(v)), nil
	case uint64:
		return newIntegerValue(int64(v)), nil
	case float32:
		return newDoubleValue(float64(v)), nil
	case float64:
		return newDoubleValue(v), nil
	case string:
		if !utf8.ValidString(v) {
			return nil, fmt.Errorf("invalid UTF-8 in string: %q", v)
		}
		return newStringValue(v), nil
	case []byte:
		s := base64.StdEncoding.EncodeToString(v)
		return newStringValue(s), nil
	case map[string]any:
		v2, err := newStruct(v)
		if err != nil {
			return nil, err
		}
		return newStructValue(v2), nil
	case []any:
		v2, err := newList(v)
		if err != nil {
			return nil, err
		}
		return newListValue(v2), nil
	default:
		return nil, fmt.Errorf("invalid type: %T", v)
	}
}

// newNullValue constructs a new null Value.
func newNullValue() *qdrant.Value {
	return &qdrant.Value{Kind: &qdrant.Value_NullValue{NullValue: qdrant.NullValue_NULL_VALUE}}
}

// newBoolValue constructs a new boolean Value.
func newBoolValue(v bool) *qdrant.Value {
	return &qdrant.Value{Kind: &qdrant.Value_BoolValue{BoolValue: v}}
}

// newIntegerValue constructs a new integer Value.
func newIntegerValue(v int64) *qdrant.Value {
	return &qdrant.Value{Kind: &qdrant.Value_IntegerValue{IntegerValue: v}}
}

// newDoubleValue constructs a new double Value.
func newDoubleValue(v float64) *qdrant.Value {
	return &qdrant.Value{Kind: &qdrant.Value_DoubleValue{DoubleValue: v}}
}

// newStringValue constructs a new string Value.
func newStringValue(v string) *qdrant.Value {
	return &qdrant.Value{Kind: &qdrant.Value_StringValue{StringValue: v}}
}

// newStructValue constructs a new struct Value.
func newStructValue(v *qdrant.Struct) *qdrant.Value {
	return &qdrant.Value{Kind: &qdrant.Value_StructValue{StructValue: v}}
}

// newListValue constructs a new list Value.
func newListValue(v *qdrant.ListValue) *qdrant.Value {
	return &qdrant.Value{Kind: &qdrant.Value_ListValue{ListValue: v}}
}

// newList constructs a ListValue from a general-purpose Go slice.
// The slice elements are converted using NewValue, order preserved.
func newList(v []any) (*qdrant.ListValue, error) {
	x := &qdrant.ListValue{Values: make([]*qdrant.Value, len(v))}
	for i, v := range v {
		var err error
		x.Values[i], err = NewValue(v)
		if err != nil {
			return nil, err
		}
	}
	return x, nil
}

// newStruct constructs a Struct from a general-purpose Go map.
// The map keys must be valid UTF-8.
// The map values are converted using NewValue.
func newStruct(v map[string]any) (*qdrant.Struct, error) {
	x := &qdrant.Struct{Fields: make(map[string]*qdrant.Value, len(v))}
	for k, v := range v {
		if !utf8.ValidString(k) {
			return nil, fmt.Errorf("invalid UTF-8 in string: %q", k)
		}
		var err error
		x.Fields[k], err = NewValue(v)
		if err != nil {
			return nil, err
		}
	}
	return x, nil
}
