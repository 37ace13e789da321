package modgraph

import "strings"

// FormatPath renders a dependency path as "A -> B -> C".
func FormatPath(path []string) string {
	return strings.Join(path, " -> ")
}
