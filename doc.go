// Package json2table converts a JSON-like value into an HTML table string.
//
// The central entry points are [Convert] and [Write], which accept a decoded
// JSON-like value (or a [Value] built with the package constructors), a
// [BuildDirection], and optional table attributes:
//
//	html, err := json2table.Convert(map[string]any{"key": "value"}, json2table.LeftToRight, nil)
//	// <table><tr><th>key</th><td>value</td></tr></table>
//
// The output is a single self-contained <table> element with no whitespace
// between tags. Nested mappings become nested tables, sequences become
// nested lists, and scalars are embedded as text.
//
// # Build Direction
//
// [LeftToRight] lays a mapping out as one row per key, header cell beside
// data cell. [TopToBottom] lays it out as one header row of all keys
// followed by one data row of all values. The direction is fixed for a
// whole conversion and applies at every nesting level. Use [ParseDirection]
// to convert a flag or config string into a [BuildDirection].
//
// # Values
//
// A [Value] is a tagged union over null, bool, number, string, array, and
// object. Objects are ordered [Member] slices; member order is row order in
// the output. Three ways to build one:
//
//   - [FromAny] bridges decoded JSON (map[string]any, []any, scalars).
//     Go maps have no key order, so map keys are sorted recursively.
//   - [Object], [Array], [Pair], and the scalar constructors build values
//     with explicit member order.
//   - [FromYAML] decodes YAML text with document key order preserved.
//     YAML is a superset of JSON, so this also ingests JSON text.
//
// # Clubbing
//
// A sequence of two or more mappings that share one key set collapses into
// a single table: one header row of the sorted shared keys, then one data
// row per mapping. Sequences that do not qualify render as a list, with
// each mapping expanding to its own nested table.
//
// # Attributes
//
// Attributes are serialized name="value" into the outermost <table> tag
// only. Pass an [Attributes] slice to control their order, or a
// map[string]string / map[string]any to have them sorted by name.
//
// # Escaping
//
// None. Keys and scalar text are embedded verbatim; embedding safety is the
// caller's concern.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidDirection] — unrecognized build direction
//   - [ErrInvalidAttributes] — attributes argument is not an attribute
//     mapping or slice
//   - [ErrNoInput] — nil top-level input
//   - [ErrUnsupportedType] — input outside the JSON-like domain
package json2table
