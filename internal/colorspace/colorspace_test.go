package colorspace

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

// approx reports whether a and b are within tol of each other.
func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestHexToHSL(t *testing.T) {
	tests := []struct {
		hex     string
		h, s, l float64
	}{
		{"#3498DB", 204.07, 69.87, 53.14},
		{"3498DB", 204.07, 69.87, 53.14},
		{"#0F699D", 201.97, 82.56, 33.73},
		{"#000", 0, 0, 0},
		{"#FFF", 0, 0, 100},
		{"#fff", 0, 0, 100},
		{"#808080", 0, 0, 50.2},
		{"#FF0000", 0, 100, 50},
		{"#00FF00", 120, 100, 50},
		{"#0000FF", 240, 100, 50},
		{"#FF00FF", 300, 100, 50},
	}
	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			h, s, l, err := HexToHSL(tt.hex)
			if err != nil {
				t.Fatalf("HexToHSL(%q) returned error: %v", tt.hex, err)
			}
			if !approx(h, tt.h, 0.5) || !approx(s, tt.s, 0.5) || !approx(l, tt.l, 0.5) {
				t.Errorf("HexToHSL(%q) = (%.2f, %.2f, %.2f), want (%.2f, %.2f, %.2f)",
					tt.hex, h, s, l, tt.h, tt.s, tt.l)
			}
		})
	}
}

func TestHexToHSL_InvalidFormat(t *testing.T) {
	inputs := []string{
		"",
		"12",
		"#12",
		"#12345",
		"#1234567",
		"#GGGGGG",
		"#xyz",
		"not a color",
	}
	for _, hex := range inputs {
		t.Run(hex, func(t *testing.T) {
			_, _, _, err := HexToHSL(hex)
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("HexToHSL(%q) error = %v, want ErrInvalidFormat", hex, err)
			}
		})
	}
}

func TestHSLToHex(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    string
	}{
		{"mid blue", 200, 50, 50, "#4095BF"},
		{"black", 0, 0, 0, "#000000"},
		{"white", 0, 0, 100, "#FFFFFF"},
		{"red", 0, 100, 50, "#FF0000"},
		{"yellow", 60, 100, 50, "#FFFF00"},
		{"green", 120, 100, 50, "#00FF00"},
		{"blue", 240, 100, 50, "#0000FF"},
		{"magenta", 300, 100, 50, "#FF00FF"},
		{"widget blue", 204, 70, 53, "#3398DB"},
		{"gray", 0, 0, 50.2, "#808080"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSLToHex(tt.h, tt.s, tt.l)
			if got != tt.want {
				t.Errorf("HSLToHex(%v, %v, %v) = %q, want %q", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

// Hues outside [0,360) match none of the six sectors, so every channel
// collapses to the lightness offset.
func TestHSLToHex_OutOfRangeHue(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    string
	}{
		{"above range", 400, 50, 50, "#404040"},
		{"negative", -10, 50, 50, "#404040"},
		{"exactly 360", 360, 100, 50, "#000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSLToHex(tt.h, tt.s, tt.l)
			if got != tt.want {
				t.Errorf("HSLToHex(%v, %v, %v) = %q, want %q", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	colors := []string{
		"#3498DB",
		"#0F699D",
		"#FF0000",
		"#00FF00",
		"#0000FF",
		"#FF00FF",
		"#123456",
		"#FEDCBA",
		"#808080",
		"#010203",
		"#F0E1D2",
		"#D0EBFB",
	}
	for _, hex := range colors {
		t.Run(hex, func(t *testing.T) {
			h, s, l, err := HexToHSL(hex)
			if err != nil {
				t.Fatalf("HexToHSL(%q) returned error: %v", hex, err)
			}
			got := HSLToHex(h, s, l)

			wantR, wantG, wantB := mustChannels(t, hex)
			gotR, gotG, gotB := mustChannels(t, got)
			if absInt(gotR-wantR) > 1 || absInt(gotG-wantG) > 1 || absInt(gotB-wantB) > 1 {
				t.Errorf("round trip %q -> (%v, %v, %v) -> %q, channels differ by more than 1",
					hex, h, s, l, got)
			}
		})
	}
}

func TestLighten(t *testing.T) {
	h, s, _, err := HexToHSL("#0F699D")
	if err != nil {
		t.Fatal(err)
	}
	want := HSLToHex(h, s, 90)

	got, err := Lighten("#0F699D", 46.3)
	if err != nil {
		t.Fatalf("Lighten returned error: %v", err)
	}
	if got != want {
		t.Errorf("Lighten(#0F699D, 46.3) = %q, want %q", got, want)
	}
	if got != "#D0EBFB" {
		t.Errorf("Lighten(#0F699D, 46.3) = %q, want #D0EBFB", got)
	}
}

// The percent argument never reaches the encoder: lightness is pinned to
// the constant 90 regardless of what the caller asks for.
func TestLighten_PercentIgnored(t *testing.T) {
	percents := []float64{0, 5, 46.3, 99, 200, -50}
	first, err := Lighten("#3498DB", percents[0])
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range percents[1:] {
		got, err := Lighten("#3498DB", p)
		if err != nil {
			t.Fatalf("Lighten(#3498DB, %v) returned error: %v", p, err)
		}
		if got != first {
			t.Errorf("Lighten(#3498DB, %v) = %q, want %q regardless of percent", p, got, first)
		}
	}
}

func TestLighten_InvalidFormat(t *testing.T) {
	_, err := Lighten("bogus", 10)
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Lighten(bogus) error = %v, want ErrInvalidFormat", err)
	}
}

func mustChannels(t *testing.T, hex string) (r, g, b int) {
	t.Helper()
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		t.Fatalf("parsing %q: %v", hex, err)
	}
	return int(v >> 16), int(v >> 8 & 0xFF), int(v & 0xFF)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
