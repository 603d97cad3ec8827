package json2table

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClubHeaders(t *testing.T) {
	t.Parallel()
	ab := Object(Pair("a", Number(1)), Pair("b", Number(2)))
	ba := Object(Pair("b", Number(3)), Pair("a", Number(4)))
	tests := []struct {
		name  string
		elems []Value
		want  []string
	}{
		{"empty", nil, nil},
		{"single", []Value{ab}, nil},
		{"mismatched keys", []Value{ab, Object(Pair("a", Number(1)))}, nil},
		{"disjoint keys", []Value{Object(Pair("key", String("value"))), Object(Pair("value", String("key")))}, nil},
		{"empty key sets", []Value{Object(), Object()}, nil},
		{"shared keys sorted", []Value{ba, ab}, []string{"a", "b"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, clubHeaders(tt.elems))
		})
	}
}

func TestMarkupNull(t *testing.T) {
	t.Parallel()
	c := newConverter(LeftToRight, "")
	assert.Equal(t, "", c.markup(Null()))
}

func TestMarkupList(t *testing.T) {
	t.Parallel()
	c := newConverter(LeftToRight, "")
	got := c.markup(Array(Number(1), Number(2), Number(3)))
	assert.Equal(t, "<ul><li>1</li><li>2</li><li>3</li></ul>", got)
}

func TestMarkupEmptyList(t *testing.T) {
	t.Parallel()
	c := newConverter(LeftToRight, "")
	assert.Equal(t, "<ul></ul>", c.markup(Array()))
}

func TestCellListFallback(t *testing.T) {
	t.Parallel()
	// A non-clubbable list in cell position renders through the generic
	// list path, null element included.
	c := newConverter(LeftToRight, "")
	assert.Equal(t, "<td><ul><li></li></ul></td>", c.cell(Array(Null())))
}

func TestMarkupClubbedList(t *testing.T) {
	t.Parallel()
	c := newConverter(LeftToRight, "")
	got := c.markup(Array(
		Object(Pair("a", Number(1))),
		Object(Pair("a", Number(2))),
	))
	assert.Equal(t, "<table><tr><th>a</th></tr><tr><td>1</td></tr><tr><td>2</td></tr></table>", got)
}

func TestRowsEmpty(t *testing.T) {
	t.Parallel()
	for _, d := range Directions() {
		c := newConverter(d, "")
		assert.Equal(t, "", c.rows(nil), "direction %s", d)
	}
}

func TestAllObjects(t *testing.T) {
	t.Parallel()
	assert.False(t, allObjects(nil))
	assert.False(t, allObjects([]Value{Object(), Number(1)}))
	assert.True(t, allObjects([]Value{Object(), Object()}))
}

func TestAttributeString(t *testing.T) {
	t.Parallel()
	got, err := attributeString(nil)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = attributeString(Attributes{{Name: "border", Value: "1"}, {Name: "class", Value: "x"}})
	require.NoError(t, err)
	assert.Equal(t, `border="1" class="x"`, got)

	got, err = attributeString(map[string]any{"border": 1})
	require.NoError(t, err)
	assert.Equal(t, `border="1"`, got)

	_, err = attributeString("border=1")
	assert.ErrorIs(t, err, ErrInvalidAttributes)
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{1.5, "1.5"},
		{-2.25, "-2.25"},
		{1e21, "1e+21"},
		{1e-7, "1e-07"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatNumber(tt.in))
	}
}

func TestFromAnyNumberLiteral(t *testing.T) {
	t.Parallel()
	v, err := FromAny(json.Number("12345678901234567890"))
	require.NoError(t, err)
	assert.Equal(t, "12345678901234567890", v.text())
}

func TestValueMemberLookup(t *testing.T) {
	t.Parallel()
	obj := Object(Pair("a", Number(1)), Pair("b", String("x")))
	v, ok := obj.member("b")
	require.True(t, ok)
	assert.Equal(t, "x", v.text())
	_, ok = obj.member("missing")
	assert.False(t, ok)
}

func TestKindString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "null", KindNull.String())
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
