// internal/ident/parser.go
package ident

import (
	"fmt"
	"regexp"
	"strings"
)

// identRegex matches a single identifier, e.g. `Core` or `Unreal5_4`.
var identRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// reserved lists names that match the pattern but cannot name anything.
var reserved = map[string]struct{}{
	"_":    {},
	"null": {},
}

// Parse trims the raw identifier and checks that it is well formed. It
// returns the trimmed form.
func Parse(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", fmt.Errorf("identifier cannot be empty")
	}
	if name != raw {
		return "", fmt.Errorf("identifier %q has surrounding whitespace", raw)
	}
	if !identRegex.MatchString(name) {
		return "", fmt.Errorf("invalid identifier format: %q", raw)
	}
	if _, ok := reserved[name]; ok {
		return "", fmt.Errorf("reserved identifier: %q", raw)
	}
	return name, nil
}

// Valid reports whether raw would be accepted by Parse.
func Valid(raw string) bool {
	_, err := Parse(raw)
	return err == nil
}
