package json2table

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidDirection  = errors.New("invalid build direction")
	ErrInvalidAttributes = errors.New("invalid table attributes")
	ErrNoInput           = errors.New("no input value")
	ErrUnsupportedType   = errors.New("unsupported value type")
)

// BuildDirection controls how a mapping's keys and values are laid out.
type BuildDirection string

const (
	// LeftToRight emits one row per key, header cell and data cell side by
	// side.
	LeftToRight BuildDirection = "LEFT_TO_RIGHT"
	// TopToBottom emits one header row of all keys followed by one data row
	// of all values.
	TopToBottom BuildDirection = "TOP_TO_BOTTOM"
)

var directions = []BuildDirection{LeftToRight, TopToBottom}

// String returns the direction name.
func (d BuildDirection) String() string { return string(d) }

func (d BuildDirection) valid() bool {
	return d == LeftToRight || d == TopToBottom
}

// Directions returns all recognized build directions.
func Directions() []BuildDirection {
	out := make([]BuildDirection, len(directions))
	copy(out, directions)
	return out
}

// ParseDirection parses a build direction string.
func ParseDirection(s string) (BuildDirection, error) {
	for _, d := range directions {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Attribute is a single name="value" pair on the outermost table tag.
type Attribute struct {
	Name  string
	Value string
}

// Attributes is an ordered attribute list. Serialization preserves slice
// order.
type Attributes []Attribute

// Convert renders input as a single self-contained HTML table string.
//
// input is a [Value] or any JSON-like decoded value accepted by [FromAny].
// A nil input fails with [ErrNoInput]; there is no markup for a missing
// document.
//
// direction must be [LeftToRight] or [TopToBottom]; the zero value is
// rejected with [ErrInvalidDirection], not defaulted.
//
// attrs may be nil, an [Attributes] slice (order preserved), or a
// map[string]string / map[string]any (sorted by name). Attributes appear in
// the outermost <table> tag only. Any other attrs type fails with
// [ErrInvalidAttributes].
//
// Scalar text and keys are embedded verbatim; no HTML escaping is performed.
func Convert(input any, direction BuildDirection, attrs any) (string, error) {
	if !direction.valid() {
		return "", fmt.Errorf("%w: %q (valid: %s, %s)", ErrInvalidDirection, direction, LeftToRight, TopToBottom)
	}
	attrString, err := attributeString(attrs)
	if err != nil {
		return "", err
	}
	if input == nil {
		return "", ErrNoInput
	}
	v, err := FromAny(input)
	if err != nil {
		return "", err
	}
	c := newConverter(direction, attrString)
	return c.document(v), nil
}

// Write renders input as HTML table markup and writes it to w.
func Write(w io.Writer, input any, direction BuildDirection, attrs any) error {
	s, err := Convert(input, direction, attrs)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

func attributeString(attrs any) (string, error) {
	switch a := attrs.(type) {
	case nil:
		return "", nil
	case Attributes:
		return joinAttributes(a), nil
	case []Attribute:
		return joinAttributes(a), nil
	case map[string]string:
		pairs := make(Attributes, 0, len(a))
		for name, value := range a {
			pairs = append(pairs, Attribute{Name: name, Value: value})
		}
		sort.Slice(pairs, func(i, j int) bool { return pairs[i].Name < pairs[j].Name })
		return joinAttributes(pairs), nil
	case map[string]any:
		pairs := make(Attributes, 0, len(a))
		for name, value := range a {
			pairs = append(pairs, Attribute{Name: name, Value: scalarString(value)})
		}
		sort.Slice(pairs, func(i, j int) bool { return pairs[i].Name < pairs[j].Name })
		return joinAttributes(pairs), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrInvalidAttributes, attrs)
	}
}

func joinAttributes(attrs []Attribute) string {
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = a.Name + `="` + a.Value + `"`
	}
	return strings.Join(parts, " ")
}

func scalarString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
