package auth

import "strings"

// Allowed reports whether the identity may access the note collection. An
// unconfigured allow-list admits any signed-in identity; otherwise only the
// single configured address is granted access.
func Allowed(allowedEmail string, id Identity) bool {
	allowed := strings.TrimSpace(allowedEmail)
	if allowed == "" {
		return true
	}
	return strings.EqualFold(allowed, strings.TrimSpace(id.Email))
}
