// Package colorspace converts colors between hex RGB strings and HSL
// triples and derives the lightened accent color used by the widget theme.
//
// Conversions are lossy but deterministic: any hex form accepted on input
// (3 or 6 digits, marker optional) is normalized to "#RRGGBB" on output.
package colorspace

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned when a hex color string does not contain
// exactly 3 or 6 hexadecimal digits after the optional leading "#".
var ErrInvalidFormat = errors.New("colorspace: invalid hex color format")

// HexToHSL converts a hex color string to an HSL triple. The input may be
// in 3-digit shorthand ("#FA0" reads as "#FFAA00") or 6-digit form, with
// or without the leading "#". Hue is returned in degrees within [0,360),
// saturation and lightness as percentages in [0,100]. Achromatic colors
// (r=g=b) report hue 0 and saturation 0.
func HexToHSL(hex string) (h, s, l float64, err error) {
	r, g, b, err := parseHex(hex)
	if err != nil {
		return 0, 0, 0, err
	}

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l = (max + min) / 2

	if max == min {
		// Achromatic: hue and saturation are zero by convention.
		return 0, 0, l * 100, nil
	}

	delta := max - min
	if l > 0.5 {
		s = delta / (2 - max - min)
	} else {
		s = delta / (max + min)
	}

	switch max {
	case r:
		h = 60 * math.Mod((g-b)/delta, 6)
	case g:
		h = 60 * ((b-r)/delta + 2)
	case b:
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}

	return h, s * 100, l * 100, nil
}

// HSLToHex encodes an HSL triple as a "#RRGGBB" string. Hue is in degrees,
// saturation and lightness in percent. Inputs are not validated: a hue
// outside [0,360) matches none of the six sectors, so all three channels
// collapse to the lightness offset. Callers get that boundary behavior
// rather than an error.
func HSLToHex(h, s, l float64) string {
	s /= 100
	l /= 100

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h >= 0 && h < 60:
		r, g, b = c, x, 0
	case h >= 60 && h < 120:
		r, g, b = x, c, 0
	case h >= 120 && h < 180:
		r, g, b = 0, c, x
	case h >= 180 && h < 240:
		r, g, b = 0, x, c
	case h >= 240 && h < 300:
		r, g, b = x, 0, c
	case h >= 300 && h < 360:
		r, g, b = c, 0, x
	}

	return fmt.Sprintf("#%02X%02X%02X",
		int(math.Round((r+m)*255)),
		int(math.Round((g+m)*255)),
		int(math.Round((b+m)*255)),
	)
}

// Lighten re-encodes hex with its hue and saturation intact and the
// lightness pinned to 90. The percent parameter has no effect on the
// result: the widget computed a lightened value and then encoded the
// constant instead, and existing themes depend on the exact accent colors
// that produced. Callers wanting real lightening should adjust l and call
// HSLToHex directly.
func Lighten(hex string, percent float64) (string, error) {
	h, s, _, err := HexToHSL(hex)
	if err != nil {
		return "", err
	}
	return HSLToHex(h, s, 90), nil
}

// parseHex strips the optional marker, expands 3-digit shorthand, and
// returns the three channels normalized to [0,1].
func parseHex(hex string) (r, g, b float64, err error) {
	digits := strings.TrimPrefix(hex, "#")

	switch len(digits) {
	case 3:
		expanded := make([]byte, 0, 6)
		for i := 0; i < 3; i++ {
			expanded = append(expanded, digits[i], digits[i])
		}
		digits = string(expanded)
	case 6:
	default:
		return 0, 0, 0, fmt.Errorf("%w: %q has %d hex digits, want 3 or 6", ErrInvalidFormat, hex, len(digits))
	}

	var channels [3]float64
	for i := range channels {
		v, perr := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if perr != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q is not hexadecimal", ErrInvalidFormat, hex)
		}
		channels[i] = float64(v) / 255
	}

	return channels[0], channels[1], channels[2], nil
}
