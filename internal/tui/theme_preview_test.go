package tui

import "testing"

func TestHSLLabel(t *testing.T) {
	if got := hslLabel("#0F699D"); got != "hsl(202, 83%, 34%)" {
		t.Errorf("unexpected label: %q", got)
	}
	if got := hslLabel("#D0EBFB"); got != "hsl(202, 84%, 90%)" {
		t.Errorf("unexpected accent label: %q", got)
	}
	if got := hslLabel("not-a-color"); got != "" {
		t.Errorf("expected empty label for malformed hex, got %q", got)
	}
}
