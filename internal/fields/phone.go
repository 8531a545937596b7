package fields

import (
	"fmt"
	"strings"
)

// FormatPhone renders raw as a US phone number. Ten digits become
// "(AAA) BBB-CCCC"; eleven digits with a leading 1 become
// "+1 (AAA) BBB-CCCC". Everything else is returned unchanged, punctuation
// and all; the widget never rejects a phone value.
func FormatPhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	d := b.String()

	switch {
	case len(d) == 10:
		return fmt.Sprintf("(%s) %s-%s", d[:3], d[3:6], d[6:])
	case len(d) == 11 && d[0] == '1':
		return fmt.Sprintf("+1 (%s) %s-%s", d[1:4], d[4:7], d[7:])
	default:
		return raw
	}
}
