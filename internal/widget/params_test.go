package widget

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseParams(t *testing.T) {
	tests := []struct {
		name     string
		rawQuery string
		want     Params
	}{
		{
			name:     "full set",
			rawQuery: "recordId=123&appLinkName=crm&viewLinkName=All_Leads&formLinkName=Lead",
			want: Params{
				RecordID:     "123",
				AppLinkName:  "crm",
				ViewLinkName: "All_Leads",
				FormLinkName: "Lead",
			},
		},
		{
			name:     "leading question mark",
			rawQuery: "?recordId=42",
			want:     Params{RecordID: "42"},
		},
		{
			name:     "bare load",
			rawQuery: "",
			want:     Params{},
		},
		{
			name:     "unrecognized keys collected",
			rawQuery: "recordId=7&mode=edit&source=email",
			want: Params{
				RecordID: "7",
				Extra:    map[string]string{"mode": "edit", "source": "email"},
			},
		},
		{
			name:     "percent encoding decoded",
			rawQuery: "viewLinkName=All%5FLeads&note=a%20b",
			want: Params{
				ViewLinkName: "All_Leads",
				Extra:        map[string]string{"note": "a b"},
			},
		},
		{
			name:     "repeated key takes first value",
			rawQuery: "mode=edit&mode=view",
			want:     Params{Extra: map[string]string{"mode": "edit"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseParams(tt.rawQuery)
			if err != nil {
				t.Fatalf("ParseParams(%q) returned error: %v", tt.rawQuery, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseParams(%q) mismatch (-want +got):\n%s", tt.rawQuery, diff)
			}
		})
	}
}

func TestParseParams_MalformedEncoding(t *testing.T) {
	if _, err := ParseParams("recordId=%zz"); err == nil {
		t.Error("expected error for malformed percent encoding, got nil")
	}
}
