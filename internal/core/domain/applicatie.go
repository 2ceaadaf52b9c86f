package domain

import (
	"strings"
	"time"
)

// Scopes granted to consumer applications. A scope is "<group>.<action>".
const (
	ScopeKlantenLezen       = "klanten.lezen"
	ScopeKlantenAanmaken    = "klanten.aanmaken"
	ScopeKlantenBijwerken   = "klanten.bijwerken"
	ScopeKlantenVerwijderen = "klanten.verwijderen"

	ScopeContactMomentenLezen       = "contactmomenten.lezen"
	ScopeContactMomentenAanmaken    = "contactmomenten.aanmaken"
	ScopeContactMomentenBijwerken   = "contactmomenten.bijwerken"
	ScopeContactMomentenVerwijderen = "contactmomenten.verwijderen"

	ScopeVerzoekenLezen       = "verzoeken.lezen"
	ScopeVerzoekenAanmaken    = "verzoeken.aanmaken"
	ScopeVerzoekenBijwerken   = "verzoeken.bijwerken"
	ScopeVerzoekenVerwijderen = "verzoeken.verwijderen"

	ScopeAutorisatiesBijwerken = "autorisaties.bijwerken"
)

// AllScopes is every scope this API knows about.
var AllScopes = []string{
	ScopeKlantenLezen, ScopeKlantenAanmaken, ScopeKlantenBijwerken, ScopeKlantenVerwijderen,
	ScopeContactMomentenLezen, ScopeContactMomentenAanmaken, ScopeContactMomentenBijwerken, ScopeContactMomentenVerwijderen,
	ScopeVerzoekenLezen, ScopeVerzoekenAanmaken, ScopeVerzoekenBijwerken, ScopeVerzoekenVerwijderen,
	ScopeAutorisatiesBijwerken,
}

// KnownScope reports whether s is in AllScopes.
func KnownScope(s string) bool {
	for _, known := range AllScopes {
		if s == known {
			return true
		}
	}
	return false
}

// Applicatie is a consumer of the API, authenticated by client id and secret.
type Applicatie struct {
	ID         string    `json:"-"`
	ClientID   string    `json:"clientId"`
	Label      string    `json:"label"`
	SecretHash string    `json:"-"`
	Scopes     []string  `json:"scopes"`
	CreatedAt  time.Time `json:"createdAt"`
}

// HasScope reports whether the applicatie was granted scope.
func (a *Applicatie) HasScope(scope string) bool {
	return HasScope(a.Scopes, scope)
}

// HasScope reports whether scope is in granted.
func HasScope(granted []string, scope string) bool {
	for _, g := range granted {
		if strings.EqualFold(g, scope) {
			return true
		}
	}
	return false
}
