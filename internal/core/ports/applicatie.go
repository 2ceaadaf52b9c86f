package ports

import (
	"context"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
)

// ApplicatieRepository defines persistence for consumer applications.
type ApplicatieRepository interface {
	FindByClientID(ctx context.Context, clientID string) (*domain.Applicatie, error)
	Create(ctx context.Context, app *domain.Applicatie) (*domain.Applicatie, error)
}

// AuthService registers applicaties and issues bearer tokens.
type AuthService interface {
	Register(ctx context.Context, clientID, secret, label string, scopes []string) (*domain.Applicatie, error)
	Token(ctx context.Context, clientID, secret string) (string, *domain.Applicatie, error)
	// EnsureApplicatie registers clientID with every scope unless it already exists.
	EnsureApplicatie(ctx context.Context, clientID, secret string) error
}
