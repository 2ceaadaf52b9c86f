package ports

import (
	"context"
	"time"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
)

// VerzoekRepository defines persistence operations for verzoeken.
type VerzoekRepository interface {
	// Create fails with domain.ErrDuplicate when (bronorganisatie, identificatie) is taken.
	Create(ctx context.Context, v *domain.Verzoek) error
	FindByUUID(ctx context.Context, uuid string) (*domain.Verzoek, error)
	Update(ctx context.Context, v *domain.Verzoek) error
	Delete(ctx context.Context, uuid string) error
	List(ctx context.Context) ([]*domain.Verzoek, error)
	// ExistsIdentificatie reports whether another verzoek (not excludeUUID)
	// already uses identificatie within bronorganisatie.
	ExistsIdentificatie(ctx context.Context, bronorganisatie, identificatie, excludeUUID string) (bool, error)
	// NextSequence returns the next identificatie sequence number for year.
	NextSequence(ctx context.Context, year int) (int64, error)
}

// VerzoekInput carries the writable fields of a Verzoek. A nil pointer means
// "not provided".
type VerzoekInput struct {
	Bronorganisatie      *string
	Identificatie        *string
	ExterneIdentificatie *string
	Klant                *string
	Interactiedatum      *time.Time
	Voorkeurskanaal      *string
	Tekst                *string
	Status               *string
}

// VerzoekService defines use-case operations for verzoeken.
type VerzoekService interface {
	Create(ctx context.Context, input VerzoekInput) (*domain.Verzoek, error)
	Get(ctx context.Context, uuid string) (*domain.Verzoek, error)
	List(ctx context.Context) ([]*domain.Verzoek, error)
	Update(ctx context.Context, uuid string, input VerzoekInput) (*domain.Verzoek, error)
	Delete(ctx context.Context, uuid string) error
}
