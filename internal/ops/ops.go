// Package ops implements the application's operations. Each operation
// validates its input, talks to the database, and returns a typed
// output; HTTP handlers, MCP tools, and CLI commands are thin wrappers
// around these functions.
package ops

import "strings"

// blank reports whether s is empty after trimming whitespace.
func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
