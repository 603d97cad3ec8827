package json2table

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Kind identifies a Value's shape.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a JSON-like value: null, a scalar, an array, or an object with
// ordered members. Values are immutable once built; conversion never mutates
// them, so sharing one across goroutines is safe.
type Value struct {
	kind    Kind
	boolVal bool
	numVal  float64
	strVal  string
	elems   []Value
	members []Member
}

// Member is a single key-value pair of an object. Objects are ordered member
// slices, not hash maps: member order is the row order the converter emits.
type Member struct {
	Key   string
	Value Value
}

// Kind returns the value's shape.
func (v Value) Kind() Kind { return v.kind }

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean scalar.
func Bool(b bool) Value { return Value{kind: KindBool, boolVal: b} }

// Number returns a numeric scalar.
func Number(f float64) Value { return Value{kind: KindNumber, numVal: f} }

// String returns a string scalar.
func String(s string) Value { return Value{kind: KindString, strVal: s} }

// Array returns an array of the given elements.
func Array(elems ...Value) Value { return Value{kind: KindArray, elems: elems} }

// Object returns an object with the given members, in the given order.
func Object(members ...Member) Value { return Value{kind: KindObject, members: members} }

// Pair returns a single object member.
func Pair(key string, value Value) Member { return Member{Key: key, Value: value} }

// member returns the value for key, scanning members in order.
func (v Value) member(key string) (Value, bool) {
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// text renders a scalar value. Null renders as the empty string.
func (v Value) text() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindBool:
		return strconv.FormatBool(v.boolVal)
	case KindNumber:
		if v.strVal != "" {
			return v.strVal
		}
		return formatNumber(v.numVal)
	default:
		return v.strVal
	}
}

// formatNumber renders a float the way encoding/json does: fixed notation in
// the human-readable range, exponent notation outside it.
func formatNumber(f float64) string {
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	return strconv.FormatFloat(f, format, -1, 64)
}

// numberLiteral keeps a numeric literal verbatim so large integers survive
// untouched.
func numberLiteral(lit string) Value {
	return Value{kind: KindNumber, strVal: lit}
}

// FromAny bridges a decoded in-memory JSON value (the map[string]any /
// []any / scalar shapes produced by encoding/json) to a Value.
//
// Go maps carry no key order, so map keys are sorted, recursively. Callers
// that need document order build values with [Object] and [Pair], or ingest
// text through [FromYAML].
func FromAny(input any) (Value, error) {
	switch v := input.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v, nil
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case float64:
		return Number(v), nil
	case float32:
		return Number(float64(v)), nil
	case int:
		return Number(float64(v)), nil
	case int8:
		return Number(float64(v)), nil
	case int16:
		return Number(float64(v)), nil
	case int32:
		return Number(float64(v)), nil
	case int64:
		return Number(float64(v)), nil
	case uint:
		return Number(float64(v)), nil
	case uint8:
		return Number(float64(v)), nil
	case uint16:
		return Number(float64(v)), nil
	case uint32:
		return Number(float64(v)), nil
	case uint64:
		return Number(float64(v)), nil
	case json.Number:
		return numberLiteral(string(v)), nil
	case []any:
		elems := make([]Value, len(v))
		for i, e := range v {
			elem, err := FromAny(e)
			if err != nil {
				return Value{}, err
			}
			elems[i] = elem
		}
		return Array(elems...), nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		members := make([]Member, len(keys))
		for i, k := range keys {
			val, err := FromAny(v[k])
			if err != nil {
				return Value{}, err
			}
			members[i] = Member{Key: k, Value: val}
		}
		return Object(members...), nil
	case map[string]string:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		members := make([]Member, len(keys))
		for i, k := range keys {
			members[i] = Member{Key: k, Value: String(v[k])}
		}
		return Object(members...), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedType, input)
	}
}
