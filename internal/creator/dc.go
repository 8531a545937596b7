package creator

import (
	"fmt"
	"strings"
)

// DataCenter identifies the Zoho data center an account lives in. The API
// origin and the web origin both depend on it.
type DataCenter string

const (
	US DataCenter = "us"
	EU DataCenter = "eu"
	IN DataCenter = "in"
	AU DataCenter = "au"
	JP DataCenter = "jp"
)

// apiOrigins maps each data center to its REST API origin.
var apiOrigins = map[DataCenter]string{
	US: "https://www.zohoapis.com",
	EU: "https://www.zohoapis.eu",
	IN: "https://www.zohoapis.in",
	AU: "https://www.zohoapis.com.au",
	JP: "https://www.zohoapis.jp",
}

// webOrigins maps each data center to the Creator web origin used for
// deep links into the product UI.
var webOrigins = map[DataCenter]string{
	US: "https://creator.zoho.com",
	EU: "https://creator.zoho.eu",
	IN: "https://creator.zoho.in",
	AU: "https://creator.zoho.com.au",
	JP: "https://creator.zoho.jp",
}

// BaseURL returns the REST API origin for dc. Unknown values fall back to
// the US origin.
func BaseURL(dc DataCenter) string {
	if origin, ok := apiOrigins[dc]; ok {
		return origin
	}
	return apiOrigins[US]
}

// WebBaseURL returns the Creator web origin for dc. Unknown values fall
// back to the US origin.
func WebBaseURL(dc DataCenter) string {
	if origin, ok := webOrigins[dc]; ok {
		return origin
	}
	return webOrigins[US]
}

// DataCenters returns the recognized data center names in display order.
func DataCenters() []string {
	return []string{string(US), string(EU), string(IN), string(AU), string(JP)}
}

// ParseDataCenter normalizes a user-supplied data center name. The empty
// string parses as US.
func ParseDataCenter(s string) (DataCenter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return US, nil
	}
	dc := DataCenter(s)
	if _, ok := apiOrigins[dc]; !ok {
		return "", fmt.Errorf("creator: unknown data center %q (valid: %s)", s, strings.Join(DataCenters(), ", "))
	}
	return dc, nil
}
