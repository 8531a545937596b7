package fields

import "testing"

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"ten digits", "5551234567", "(555) 123-4567"},
		{"ten digits with punctuation", "555-123-4567", "(555) 123-4567"},
		{"already formatted", "(555) 123-4567", "(555) 123-4567"},
		{"eleven with country code", "15551234567", "+1 (555) 123-4567"},
		{"plus one spaced", "+1 555 123 4567", "+1 (555) 123-4567"},
		{"eleven without leading one", "25551234567", "25551234567"},
		{"too short", "12345", "12345"},
		{"too long", "555123456789", "555123456789"},
		{"empty", "", ""},
		{"letters only", "call me", "call me"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPhone(tt.raw); got != tt.want {
				t.Errorf("FormatPhone(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
