package creator

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRecordID(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want string
	}{
		{"string id", Record{"ID": "123"}, "123"},
		{"number id", Record{"ID": json.Number("3888833000000114027")}, "3888833000000114027"},
		{"float id", Record{"ID": float64(42)}, "42"},
		{"missing", Record{"Name": "x"}, ""},
		{"nil record", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.ID(); got != tt.want {
				t.Errorf("ID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecordField(t *testing.T) {
	rec := Record{
		"Name":   "Acme Corp",
		"Count":  json.Number("7"),
		"Active": true,
		"Owner": map[string]any{
			"display_value": "Avery Quinn",
			"ID":            json.Number("55"),
		},
		"Tags":  []any{"a", "b"},
		"Blank": nil,
	}

	tests := []struct {
		field string
		want  string
	}{
		{"Name", "Acme Corp"},
		{"Count", "7"},
		{"Active", "true"},
		{"Owner", "Avery Quinn"},
		{"Tags", "a, b"},
		{"Blank", ""},
		{"Missing", ""},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			if got := rec.Field(tt.field); got != tt.want {
				t.Errorf("Field(%q) = %q, want %q", tt.field, got, tt.want)
			}
		})
	}
}

func TestRecordFieldNames(t *testing.T) {
	rec := Record{"Zeta": 1, "Alpha": 2, "ID": "9", "Mid": 3}

	want := []string{"ID", "Alpha", "Mid", "Zeta"}
	if diff := cmp.Diff(want, rec.FieldNames()); diff != "" {
		t.Errorf("FieldNames mismatch (-want +got):\n%s", diff)
	}
}
