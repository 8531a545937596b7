// Package styles provides the centralized color palette and style definitions
// for the tppg TUI. All visual constants live here so the rest of the TUI
// code can reference a single source of truth.
//
// The accent ramp is not fixed: ApplyPrimary re-derives it from the
// configured theme primary, so the TUI chrome picks up the same color the
// widget itself is themed with.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pgrowth/tppgUtil/internal/colorspace"
	"github.com/pgrowth/tppgUtil/internal/theme"
)

// --- Color palette ---

var (
	// Core text
	White   = lipgloss.Color("#E2E2E2")
	Gray    = lipgloss.Color("#888888")
	Muted   = lipgloss.Color("#555555")
	DimGray = lipgloss.Color("#444444")

	// Accent ramp. Defaults are the ramp ApplyPrimary derives from
	// theme.DefaultPrimary; ApplyPrimary replaces them when a primary
	// color is configured.
	Primary    = lipgloss.Color("#4EB4EE")
	PrimaryDim = lipgloss.Color("#1383C4")
	Accent     = lipgloss.Color("#D0EBFB")
	SelectedBg = lipgloss.Color("#07324A")

	// Status
	Green  = lipgloss.Color("#5FD787")
	Yellow = lipgloss.Color("#FFD787")
	Red    = lipgloss.Color("#FF8787")
)

// Lightness targets for the derived ramp. A configured primary can be
// arbitrarily dark, so the display colors are re-encoded at a fixed
// lightness per role rather than used as-is.
const (
	primaryLightness    = 62
	primaryDimLightness = 42
	selectedBgLightness = 16
)

// ApplyPrimary re-derives the accent ramp from a primary hex color. Hue
// and saturation carry into every derived color; lightness is pinned per
// role. The pale Accent comes from colorspace.Lighten, so it is the same
// accent the widget theme publishes for that primary. An empty string
// selects theme.DefaultPrimary; a malformed color returns
// colorspace.ErrInvalidFormat and leaves the palette untouched.
func ApplyPrimary(hex string) error {
	if hex == "" {
		hex = theme.DefaultPrimary
	}

	h, s, _, err := colorspace.HexToHSL(hex)
	if err != nil {
		return err
	}
	accent, err := colorspace.Lighten(hex, theme.AccentLightenPercent)
	if err != nil {
		return err
	}

	Primary = lipgloss.Color(colorspace.HSLToHex(h, s, primaryLightness))
	PrimaryDim = lipgloss.Color(colorspace.HSLToHex(h, s, primaryDimLightness))
	SelectedBg = lipgloss.Color(colorspace.HSLToHex(h, s, selectedBgLightness))
	Accent = lipgloss.Color(accent)

	refreshPrimaryStyles()
	return nil
}
