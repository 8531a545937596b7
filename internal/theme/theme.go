// Package theme derives and publishes the two custom style properties the
// widget stylesheet reads: the primary color and its lightened accent.
package theme

import (
	"fmt"

	"github.com/pgrowth/tppgUtil/internal/colorspace"
)

const (
	// DefaultPrimary is applied when no primary color is configured.
	DefaultPrimary = "#0F699D"

	// AccentLightenPercent is the percent handed to colorspace.Lighten
	// when deriving the accent. Lighten pins lightness to 90 regardless
	// of this value, but the widget passes exactly 46.3 and the derived
	// accent is part of the published contract.
	AccentLightenPercent = 46.3

	// PrimaryProperty and AccentProperty name the custom properties the
	// widget stylesheet reads.
	PrimaryProperty = "--primary-color"
	AccentProperty  = "--accent-color"
)

// StyleSink receives named style properties. In the browser the sink is
// the document root's style object; the CLI and tests substitute their
// own implementations.
type StyleSink interface {
	SetProperty(name, value string)
}

// Apply writes the primary color and its derived accent to sink. An empty
// primary selects DefaultPrimary. The primary value is written verbatim;
// the accent comes from colorspace.Lighten with AccentLightenPercent. A
// malformed primary returns colorspace.ErrInvalidFormat and leaves the
// sink untouched. Apply is idempotent: repeated calls with the same input
// overwrite the same two properties with the same values.
func Apply(sink StyleSink, primary string) error {
	if primary == "" {
		primary = DefaultPrimary
	}

	accent, err := colorspace.Lighten(primary, AccentLightenPercent)
	if err != nil {
		return fmt.Errorf("theme: deriving accent from %q: %w", primary, err)
	}

	sink.SetProperty(PrimaryProperty, primary)
	sink.SetProperty(AccentProperty, accent)
	return nil
}
