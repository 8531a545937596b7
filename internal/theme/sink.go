package theme

import (
	"fmt"
	"strings"
)

// MapSink records style properties in a plain map. It stands in for the
// document-root style object in tests and machine-readable CLI output.
type MapSink map[string]string

// SetProperty stores value under name, overwriting any previous value.
func (m MapSink) SetProperty(name, value string) { m[name] = value }

// Get returns the stored value for name, or "" when unset.
func (m MapSink) Get(name string) string { return m[name] }

// CSSWriter collects style properties and renders them as a :root rule a
// widget author can paste into a stylesheet. Properties render in first-set
// order; setting a name again updates the value in place.
type CSSWriter struct {
	names  []string
	values map[string]string
}

// NewCSSWriter returns an empty CSSWriter.
func NewCSSWriter() *CSSWriter {
	return &CSSWriter{values: make(map[string]string)}
}

// SetProperty records value under name.
func (w *CSSWriter) SetProperty(name, value string) {
	if _, seen := w.values[name]; !seen {
		w.names = append(w.names, name)
	}
	w.values[name] = value
}

// String renders the collected properties as a :root block.
func (w *CSSWriter) String() string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, name := range w.names {
		fmt.Fprintf(&b, "  %s: %s;\n", name, w.values[name])
	}
	b.WriteString("}\n")
	return b.String()
}
