package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
	"github.com/vng-realisatie/klantinteracties/internal/core/ports"
)

// AuthService registers applicaties and issues scoped bearer tokens.
type AuthService struct {
	repo      ports.ApplicatieRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.ApplicatieRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Register(ctx context.Context, clientID, secret, label string, scopes []string) (*domain.Applicatie, error) {
	if clientID == "" || secret == "" {
		return nil, domain.ErrInvalidCredentials
	}
	for _, scope := range scopes {
		if !domain.KnownScope(scope) {
			return nil, domain.NewValidationError("scopes", domain.CodeInvalidChoice,
				fmt.Sprintf("%q is een ongeldige keuze.", scope))
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	app := &domain.Applicatie{
		ClientID:   clientID,
		Label:      label,
		SecretHash: string(hash),
		Scopes:     scopes,
		CreatedAt:  time.Now().UTC(),
	}
	return s.repo.Create(ctx, app)
}

// Token checks the client credentials and returns a signed JWT carrying the
// granted scopes.
func (s *AuthService) Token(ctx context.Context, clientID, secret string) (string, *domain.Applicatie, error) {
	if clientID == "" || secret == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	app, err := s.repo.FindByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, domain.ErrApplicatieNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(app.SecretHash), []byte(secret)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(app)
	if err != nil {
		return "", nil, err
	}
	return token, app, nil
}

func (s *AuthService) EnsureApplicatie(ctx context.Context, clientID, secret string) error {
	if clientID == "" {
		return nil
	}
	_, err := s.repo.FindByClientID(ctx, clientID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrApplicatieNotFound) {
		return err
	}
	_, err = s.Register(ctx, clientID, secret, clientID, domain.AllScopes)
	if errors.Is(err, domain.ErrApplicatieExists) {
		return nil
	}
	return err
}

func (s *AuthService) generateToken(app *domain.Applicatie) (string, error) {
	claims := jwt.MapClaims{
		"client_id": app.ClientID,
		"scopes":    app.Scopes,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
