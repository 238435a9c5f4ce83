package types

import (
	"encoding/json"
	"strconv"
)

// Number is the set of types a decoded field can hold.
type Number interface {
	~int | ~int64 | ~float64
}

// Value is a decoded metadata field that is either known or explicitly unknown.
//
// The zero Value is unknown. A known zero (for example an MP3 free-format
// bit rate) is distinct from an unknown value and compares unequal to it.
type Value[T Number] struct {
	v  T
	ok bool
}

// Known wraps a decoded value.
func Known[T Number](v T) Value[T] {
	return Value[T]{v: v, ok: true}
}

// Unknown returns the absent value for T.
func Unknown[T Number]() Value[T] {
	return Value[T]{}
}

// Get returns the value and whether it is known.
func (v Value[T]) Get() (T, bool) {
	return v.v, v.ok
}

// IsKnown reports whether the value was decoded.
func (v Value[T]) IsKnown() bool {
	return v.ok
}

// Or returns the value if known, fallback otherwise.
func (v Value[T]) Or(fallback T) T {
	if !v.ok {
		return fallback
	}
	return v.v
}

// String renders the value, or "unknown" when absent.
func (v Value[T]) String() string {
	if !v.ok {
		return "unknown"
	}
	switch x := any(v.v).(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	}
	// Named types with a numeric underlying type.
	return strconv.FormatFloat(float64(v.v), 'f', -1, 64)
}

// MarshalJSON encodes unknown as null.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.ok {
		return []byte("null"), nil
	}
	return json.Marshal(v.v)
}

// UnmarshalJSON decodes null as unknown.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Value[T]{}
		return nil
	}
	var x T
	if err := json.Unmarshal(data, &x); err != nil {
		return err
	}
	*v = Known(x)
	return nil
}
