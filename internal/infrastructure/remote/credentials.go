package remote

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
)

// Credentials picks the credential of the API a URL belongs to and signs a
// short lived bearer token for it.
type Credentials struct {
	entries []domain.Credential
	now     func() time.Time
}

func NewCredentials(entries []domain.Credential) *Credentials {
	return &Credentials{entries: entries, now: time.Now}
}

// ParseCredentials reads entries of the form apiRoot|clientId|secret.
func ParseCredentials(raw []string) ([]domain.Credential, error) {
	creds := make([]domain.Credential, 0, len(raw))
	for _, entry := range raw {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, "|")
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid remote credential %q: want apiRoot|clientId|secret", entry)
		}
		root := parts[0]
		if !strings.HasSuffix(root, "/") {
			root += "/"
		}
		creds = append(creds, domain.Credential{APIRoot: root, ClientID: parts[1], Secret: parts[2]})
	}
	return creds, nil
}

// For returns the credential whose API root is the longest prefix of url.
func (c *Credentials) For(url string) (domain.Credential, bool) {
	var best domain.Credential
	found := false
	for _, cred := range c.entries {
		if cred.Matches(url) && len(cred.APIRoot) > len(best.APIRoot) {
			best, found = cred, true
		}
	}
	return best, found
}

// Token signs the ZGW style JWT for cred.
func (c *Credentials) Token(cred domain.Credential) (string, error) {
	claims := jwt.MapClaims{
		"iss":                 cred.ClientID,
		"iat":                 c.now().Unix(),
		"client_id":           cred.ClientID,
		"user_id":             cred.ClientID,
		"user_representation": cred.ClientID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cred.Secret))
	if err != nil {
		return "", fmt.Errorf("sign remote token: %w", err)
	}
	return signed, nil
}
