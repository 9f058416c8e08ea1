package header

import (
	"bufio"
	"io"
	"iter"
	"log/slog"
	"net/http"
	"net/textproto"
	"slices"
	"strings"

	"github.com/yndnr/vecmap-go/pkg/vecmap"
)

// Name is a header name as it was first written.
type Name string

// Equal reports whether n names the same header as s, ignoring case.
func (n Name) Equal(s string) bool {
	return strings.EqualFold(string(n), s)
}

// Canonical returns the canonical MIME form of n, e.g. "Content-Type".
func (n Name) Canonical() string {
	return textproto.CanonicalMIMEHeaderKey(string(n))
}

func equalNames(a, b Name) bool {
	return strings.EqualFold(string(a), string(b))
}

func matchName(q string, k Name) bool {
	return k.Equal(q)
}

// Map is an ordered, case-insensitive multi-value header map.
// It is not safe for concurrent use.
type Map struct {
	m *vecmap.Map[Name, []string]
}

// New creates an empty Map with room for capacity distinct names.
func New(capacity int) *Map {
	return &Map{m: vecmap.NewFunc[Name, []string](capacity, equalNames)}
}

// FromHTTP copies h into a new Map. Since http.Header is unordered, names
// are added in sorted order to keep the result deterministic.
func FromHTTP(h http.Header) *Map {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	slices.Sort(names)

	m := New(len(names))
	for _, name := range names {
		for _, v := range h[name] {
			m.Add(name, v)
		}
	}
	return m
}

// Set replaces all values of name with value. An existing name keeps its
// position but takes the new spelling.
func (h *Map) Set(name, value string) {
	h.m.Insert(Name(name), []string{value})
}

// Add appends value to the values of name, adding the name if needed.
func (h *Map) Add(name, value string) {
	p := h.m.Entry(Name(name)).OrInsertWith(func() []string { return make([]string, 0, 1) })
	*p = append(*p, value)
}

// Get returns the first value of name, or "" if absent.
func (h *Map) Get(name string) string {
	v, _ := h.Lookup(name)
	return v
}

// Lookup returns the first value of name and whether the name is present.
func (h *Map) Lookup(name string) (string, bool) {
	values, ok := vecmap.Lookup(h.m, name, matchName)
	if !ok || len(values) == 0 {
		return "", ok
	}
	return values[0], true
}

// Values returns a copy of all values of name.
func (h *Map) Values(name string) []string {
	values, _ := vecmap.Lookup(h.m, name, matchName)
	return slices.Clone(values)
}

// Has reports whether name is present.
func (h *Map) Has(name string) bool {
	return vecmap.Contains(h.m, name, matchName)
}

// Del removes name and all its values. It reports whether name was present.
func (h *Map) Del(name string) bool {
	_, ok := vecmap.Delete(h.m, name, matchName)
	return ok
}

// Len returns the number of distinct names.
func (h *Map) Len() int {
	return h.m.Len()
}

// Clear removes all headers.
func (h *Map) Clear() {
	h.m.Clear()
}

// Names returns an iterator over the header names in arrival order.
func (h *Map) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for name := range h.m.Keys() {
			if !yield(string(name)) {
				return
			}
		}
	}
}

// All returns an iterator over every (name, value) pair, names in arrival
// order and each name's values in the order they were added.
func (h *Map) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for name, values := range h.m.All() {
			for _, v := range values {
				if !yield(string(name), v) {
					return
				}
			}
		}
	}
}

// Clone returns a deep copy of h.
func (h *Map) Clone() *Map {
	c := h.m.Clone()
	for name := range c.Keys() {
		p, _ := c.GetMut(name)
		*p = slices.Clone(*p)
	}
	return &Map{m: c}
}

// HTTPHeader converts h to an http.Header with canonical names.
func (h *Map) HTTPHeader() http.Header {
	out := make(http.Header, h.m.Len())
	for name, values := range h.m.All() {
		key := name.Canonical()
		out[key] = append(out[key], values...)
	}
	return out
}

// WriteTo writes h in wire format, one "Name: value\r\n" line per value.
// The returned count is what w accepted, not what was buffered.
func (h *Map) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	for name, value := range h.All() {
		if _, err := bw.WriteString(name + ": " + value + "\r\n"); err != nil {
			return cw.n, err
		}
	}
	err := bw.Flush()
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// LogValue implements slog.LogValuer. Values of sensitive headers are
// replaced with RedactedValue.
func (h *Map) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, h.m.Len())
	for name, values := range h.m.All() {
		value := strings.Join(values, ", ")
		if IsSensitive(string(name)) && value != "" {
			value = RedactedValue
		}
		attrs = append(attrs, slog.String(string(name), value))
	}
	return slog.GroupValue(attrs...)
}
