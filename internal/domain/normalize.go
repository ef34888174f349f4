package domain

import "strings"

// NormalizeHumanName trims leading/trailing whitespace and collapses internal
// whitespace runs. Applied to user names at registration.
func NormalizeHumanName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
