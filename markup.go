package json2table

import (
	"sort"
	"strings"
)

// converter builds markup for one Convert call. It holds no mutable state;
// the direction and the attributed outer open tag are fixed up front and
// every method is a pure function of its arguments.
type converter struct {
	direction BuildDirection
	openTag   string
}

func newConverter(direction BuildDirection, attrString string) converter {
	openTag := "<table>"
	if attrString != "" {
		openTag = "<table " + attrString + ">"
	}
	return converter{direction: direction, openTag: openTag}
}

// document wraps the top-level value so the outermost element is always a
// table. Objects and clubbed arrays open the outer table themselves, so the
// attributes splice into that tag instead of nesting a second one.
func (c converter) document(v Value) string {
	var body string
	switch {
	case v.kind == KindObject:
		body = c.rows(v.members)
	case v.kind == KindArray && allObjects(v.elems):
		if headers := clubHeaders(v.elems); headers != nil {
			body = c.clubRows(v.elems, headers)
		} else {
			body = c.list(v.elems)
		}
	default:
		body = c.markup(v)
	}
	return c.openTag + body + "</table>"
}

// markup dispatches on a value's shape and returns its HTML fragment.
// Nested tables carry no attributes.
func (c converter) markup(v Value) string {
	switch v.kind {
	case KindObject:
		return "<table>" + c.rows(v.members) + "</table>"
	case KindArray:
		if allObjects(v.elems) {
			if headers := clubHeaders(v.elems); headers != nil {
				return "<table>" + c.clubRows(v.elems, headers) + "</table>"
			}
		}
		return c.list(v.elems)
	default:
		return v.text()
	}
}

// rows emits an object's members as table rows, in member order. An empty
// object emits nothing, so {} converts to <table></table> in either
// direction.
func (c converter) rows(members []Member) string {
	if len(members) == 0 {
		return ""
	}
	var b strings.Builder
	if c.direction == TopToBottom {
		b.WriteString("<tr>")
		for _, m := range members {
			b.WriteString("<th>")
			b.WriteString(m.Key)
			b.WriteString("</th>")
		}
		b.WriteString("</tr><tr>")
		for _, m := range members {
			b.WriteString(c.cell(m.Value))
		}
		b.WriteString("</tr>")
		return b.String()
	}
	for _, m := range members {
		b.WriteString("<tr><th>")
		b.WriteString(m.Key)
		b.WriteString("</th>")
		b.WriteString(c.cell(m.Value))
		b.WriteString("</tr>")
	}
	return b.String()
}

// cell wraps a value's markup in a data cell.
func (c converter) cell(v Value) string {
	return "<td>" + c.markup(v) + "</td>"
}

// list emits a generic sequence as an unordered list. Null elements still
// get their own (empty) item.
func (c converter) list(elems []Value) string {
	var b strings.Builder
	b.WriteString("<ul>")
	for _, e := range elems {
		b.WriteString("<li>")
		b.WriteString(c.markup(e))
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
	return b.String()
}

// clubRows emits a clubbed sequence of objects: one header row of the shared
// keys, then one data row per object in sequence order, cells in header
// order. The layout is the same in both build directions.
func (c converter) clubRows(elems []Value, headers []string) string {
	var b strings.Builder
	b.WriteString("<tr>")
	for _, h := range headers {
		b.WriteString("<th>")
		b.WriteString(h)
		b.WriteString("</th>")
	}
	b.WriteString("</tr>")
	for _, e := range elems {
		b.WriteString("<tr>")
		for _, h := range headers {
			v, _ := e.member(h)
			b.WriteString(c.cell(v))
		}
		b.WriteString("</tr>")
	}
	return b.String()
}

// allObjects reports whether elems is non-empty and every element is an
// object.
func allObjects(elems []Value) bool {
	if len(elems) == 0 {
		return false
	}
	for _, e := range elems {
		if e.kind != KindObject {
			return false
		}
	}
	return true
}

// clubHeaders reports whether a sequence of objects can collapse into one
// shared-header table. It returns the sorted shared keys, or nil when the
// sequence has fewer than two elements, the key sets differ, or the shared
// key set is empty.
func clubHeaders(elems []Value) []string {
	if len(elems) < 2 {
		return nil
	}
	first := elems[0].members
	if len(first) == 0 {
		return nil
	}
	keys := make(map[string]struct{}, len(first))
	for _, m := range first {
		keys[m.Key] = struct{}{}
	}
	for _, e := range elems[1:] {
		if len(e.members) != len(keys) {
			return nil
		}
		for _, m := range e.members {
			if _, ok := keys[m.Key]; !ok {
				return nil
			}
		}
	}
	headers := make([]string, 0, len(keys))
	for k := range keys {
		headers = append(headers, k)
	}
	sort.Strings(headers)
	return headers
}
