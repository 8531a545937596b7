package creator

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Record is one Creator row. Reports are schemaless from the client's
// perspective, so records stay generic maps keyed by field link name.
// Numeric values decode as json.Number: Creator record IDs are 19-digit
// integers that do not survive a float64 round trip.
type Record map[string]any

// ID returns the record's "ID" value as a string. Creator returns IDs as
// JSON numbers on some endpoints and strings on others; both are
// accepted. Returns "" when the field is absent.
func (r Record) ID() string {
	switch v := r["ID"].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

// Field renders the named field as display text. Lookup and composite
// values render their "display_value" when present, the way Creator's own
// list views do.
func (r Record) Field(name string) string {
	return renderValue(r[name])
}

// FieldNames returns the record's field link names sorted alphabetically,
// with "ID" first when present.
func (r Record) FieldNames() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		if name != "ID" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := r["ID"]; ok {
		names = append([]string{"ID"}, names...)
	}
	return names
}

func renderValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case map[string]any:
		if dv, ok := t["display_value"]; ok {
			return renderValue(dv)
		}
		encoded, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(encoded)
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, renderValue(item))
		}
		return strings.Join(parts, ", ")
	}
	return fmt.Sprintf("%v", v)
}
