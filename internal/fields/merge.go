// Package fields reproduces the widget's field value formatting: merge
// field substitution in message templates and US phone number display.
package fields

import "regexp"

// mergeToken matches ${Name} placeholders. Names follow the Creator field
// link-name shape: a letter or underscore followed by letters, digits,
// underscores, or dots.
var mergeToken = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_.]*)\}`)

// Merge replaces every ${Name} token in template with values[Name].
// Unknown names become the empty string, matching how the widget renders
// missing record fields as blanks. Text outside well-formed tokens passes
// through unchanged, including bare "$" and "${" without a closing brace.
func Merge(template string, values map[string]string) string {
	return mergeToken.ReplaceAllStringFunc(template, func(token string) string {
		name := token[2 : len(token)-1]
		return values[name]
	})
}
