package domain

import "strings"

// Credential authenticates this service against a remote API rooted at APIRoot.
type Credential struct {
	APIRoot  string
	ClientID string
	Secret   string
}

// Matches reports whether url lives under the credential's API root.
func (c Credential) Matches(url string) bool {
	return c.APIRoot != "" && strings.HasPrefix(url, c.APIRoot)
}
