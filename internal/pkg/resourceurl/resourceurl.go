// Package resourceurl builds and parses the public URLs of this API's resources.
package resourceurl

import (
	"strings"

	"github.com/google/uuid"
)

const apiPrefix = "/api/v1/"

// Collection names as they appear in resource URLs.
const (
	Klanten                   = "klanten"
	ContactMomenten           = "contactmomenten"
	Verzoeken                 = "verzoeken"
	ObjectContactMomenten     = "objectcontactmomenten"
	ObjectVerzoeken           = "objectverzoeken"
	VerzoekInformatieObjecten = "verzoekinformatieobjecten"
	VerzoekProducten          = "verzoekproducten"
	VerzoekContactMomenten    = "verzoekcontactmomenten"
)

// Builder turns (collection, uuid) pairs into absolute URLs under a base URL.
type Builder struct {
	base string
}

func New(baseURL string) Builder {
	return Builder{base: strings.TrimRight(baseURL, "/")}
}

// URL returns the absolute URL of a resource.
func (b Builder) URL(collection, id string) string {
	return b.base + apiPrefix + collection + "/" + id
}

// UUID extracts the resource UUID from url when it points at collection of
// this API. A trailing slash is tolerated.
func (b Builder) UUID(collection, url string) (string, bool) {
	prefix := b.base + apiPrefix + collection + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(url, prefix), "/")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// NewUUID returns a fresh random resource UUID.
func NewUUID() string {
	return uuid.NewString()
}
