// Package widget models the glue between a Creator page and the embedded
// widget: the query parameters the host page passes at load time and the
// deep links the widget redirects to.
package widget

import (
	"fmt"
	"net/url"
	"strings"
)

// Params carries the values the host page hands to the widget iframe.
// Absent keys stay empty; the widget tolerates a bare load with no
// parameters at all.
type Params struct {
	RecordID     string `json:"recordId"`
	AppLinkName  string `json:"appLinkName"`
	ViewLinkName string `json:"viewLinkName"`
	FormLinkName string `json:"formLinkName"`

	// Extra holds query keys the widget does not recognize, first value
	// per key.
	Extra map[string]string `json:"extra,omitempty"`
}

// ParseParams parses a widget iframe query string, with or without the
// leading "?". Only malformed percent-encoding errors; missing keys never
// do.
func ParseParams(rawQuery string) (Params, error) {
	rawQuery = strings.TrimPrefix(rawQuery, "?")

	vals, err := url.ParseQuery(rawQuery)
	if err != nil {
		return Params{}, fmt.Errorf("widget: parsing query: %w", err)
	}

	p := Params{
		RecordID:     vals.Get("recordId"),
		AppLinkName:  vals.Get("appLinkName"),
		ViewLinkName: vals.Get("viewLinkName"),
		FormLinkName: vals.Get("formLinkName"),
	}
	for key, vv := range vals {
		switch key {
		case "recordId", "appLinkName", "viewLinkName", "formLinkName":
			continue
		}
		if len(vv) > 0 {
			if p.Extra == nil {
				p.Extra = make(map[string]string)
			}
			p.Extra[key] = vv[0]
		}
	}
	return p, nil
}
