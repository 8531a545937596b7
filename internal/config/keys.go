package config

import (
	"fmt"
	"strings"

	"github.com/pgrowth/tppgUtil/internal/colorspace"
	"github.com/pgrowth/tppgUtil/internal/creator"
	"github.com/pgrowth/tppgUtil/internal/util"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "default-report").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Save).
	Set func(cfg *Config, value string)

	// Validate rejects malformed values before they are stored. A nil
	// Validate accepts anything. Callers should go through CheckValue,
	// which also admits empty values.
	Validate func(value string) error
}

// CheckValue validates a proposed value for the key. Empty values are
// always accepted, since setting a key to "" clears it.
func (k *KeySpec) CheckValue(value string) error {
	if value == "" || k.Validate == nil {
		return nil
	}
	return k.Validate(value)
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "owner",
		Description: "Creator account owner the application belongs to",
		Get:         func(cfg *Config) string { return cfg.Owner },
		Set:         func(cfg *Config, v string) { cfg.Owner = v },
	},
	{
		Name:        "app",
		Description: "Link name of the Creator application",
		Get:         func(cfg *Config) string { return cfg.AppLinkName },
		Set:         func(cfg *Config, v string) { cfg.AppLinkName = v },
		Validate:    util.ValidateLinkName,
	},
	{
		Name:        "default-report",
		Description: "Report used when --report is not specified",
		Get:         func(cfg *Config) string { return cfg.DefaultReport },
		Set:         func(cfg *Config, v string) { cfg.DefaultReport = v },
		Validate:    util.ValidateLinkName,
	},
	{
		Name:        "default-form",
		Description: "Form used when --form is not specified",
		Get:         func(cfg *Config) string { return cfg.DefaultForm },
		Set:         func(cfg *Config, v string) { cfg.DefaultForm = v },
		Validate:    util.ValidateLinkName,
	},
	{
		Name:        "data-center",
		Description: "Zoho data center the account lives in (us, eu, in, au, jp)",
		Get:         func(cfg *Config) string { return cfg.DataCenter },
		Set:         func(cfg *Config, v string) { cfg.DataCenter = v },
		Validate: func(v string) error {
			_, err := creator.ParseDataCenter(v)
			return err
		},
	},
	{
		Name:        "theme-primary",
		Description: "Hex color themed output is derived from",
		Get:         func(cfg *Config) string { return cfg.ThemePrimary },
		Set:         func(cfg *Config, v string) { cfg.ThemePrimary = v },
		Validate: func(v string) error {
			_, _, _, err := colorspace.HexToHSL(v)
			return err
		},
	},
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := util.NormalizeKey(name)
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	// Find the longest key name for alignment.
	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}
