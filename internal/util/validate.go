package util

import (
	"fmt"
	"regexp"
)

// validLinkChars matches only alphanumeric characters and underscores.
var validLinkChars = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// maxLinkNameLen is the longest link name Creator will generate.
const maxLinkNameLen = 50

// ValidateLinkName checks that a form, report, or application link name
// conforms to the rules Zoho Creator applies when generating them:
//   - Between 1 and 50 characters
//   - Only alphanumeric characters (a-z, A-Z, 0-9) and underscores (_)
//   - First character must be a letter
//   - Last character must not be an underscore
func ValidateLinkName(name string) error {
	if name == "" {
		return fmt.Errorf("link name must not be empty")
	}
	if len(name) > maxLinkNameLen {
		return fmt.Errorf("link name must be at most %d characters, got %d", maxLinkNameLen, len(name))
	}

	if !validLinkChars.MatchString(name) {
		return fmt.Errorf("link name %q contains invalid characters (only a-z, A-Z, 0-9, and underscores are allowed)", name)
	}

	first := name[0]
	if !isLetter(first) {
		return fmt.Errorf("link name must start with a letter, got %q", string(first))
	}

	if name[len(name)-1] == '_' {
		return fmt.Errorf("link name must not end with an underscore, got %q", name)
	}

	return nil
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
