package ports

import (
	"context"
	"time"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
)

// ContactMomentRepository defines persistence operations for contactmomenten.
// Reads load the embedded medewerkerIdentificatie.
type ContactMomentRepository interface {
	Create(ctx context.Context, cm *domain.ContactMoment) error
	FindByUUID(ctx context.Context, uuid string) (*domain.ContactMoment, error)
	// Update replaces the contactmoment row; the medewerker is saved separately.
	Update(ctx context.Context, cm *domain.ContactMoment) error
	// Delete removes the contactmoment together with its medewerkerIdentificatie.
	Delete(ctx context.Context, uuid string) error
	List(ctx context.Context) ([]*domain.ContactMoment, error)
	// SaveMedewerker inserts or replaces the medewerkerIdentificatie of a contactmoment.
	SaveMedewerker(ctx context.Context, m *domain.Medewerker) error
}

// MedewerkerInput carries the fields of an embedded medewerkerIdentificatie.
type MedewerkerInput struct {
	Identificatie         *string
	Achternaam            *string
	Voorletters           *string
	VoorvoegselAchternaam *string
}

// ContactMomentInput carries the writable fields of a ContactMoment. A nil
// pointer means "not provided".
type ContactMomentInput struct {
	Bronorganisatie         *string
	Klant                   *string
	Interactiedatum         *time.Time
	Kanaal                  *string
	Voorkeurskanaal         *string
	Voorkeurstaal           *string
	Tekst                   *string
	OnderwerpLinks          *[]string
	Initiatiefnemer         *string
	Medewerker              *string
	MedewerkerIdentificatie *MedewerkerInput
	Zaak                    *string
}

// ContactMomentService defines use-case operations for contactmomenten.
type ContactMomentService interface {
	Create(ctx context.Context, input ContactMomentInput) (*domain.ContactMoment, error)
	Get(ctx context.Context, uuid string) (*domain.ContactMoment, error)
	List(ctx context.Context) ([]*domain.ContactMoment, error)
	Update(ctx context.Context, uuid string, input ContactMomentInput) (*domain.ContactMoment, error)
	Delete(ctx context.Context, uuid string) error
}
