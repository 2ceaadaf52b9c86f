package ports

import (
	"context"
	"encoding/json"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
)

// KlantRepository defines persistence operations for klanten.
type KlantRepository interface {
	Create(ctx context.Context, k *domain.Klant) error
	FindByUUID(ctx context.Context, uuid string) (*domain.Klant, error)
	Update(ctx context.Context, k *domain.Klant) error
	Delete(ctx context.Context, uuid string) error
	List(ctx context.Context) ([]*domain.Klant, error)
}

// SubjectRepository stores the subject variant of a Klant together with its
// verblijfsadres and subVerblijfBuitenland children.
type SubjectRepository interface {
	// FindByKlant returns the variant row of type t owned by klantID, with its
	// children loaded. Returns domain.ErrNotFound when none exists.
	FindByKlant(ctx context.Context, klantID string, t domain.SubjectType) (domain.SubjectIdentificatie, error)
	// Save inserts the variant when its record has no ID yet and replaces it
	// otherwise. Children follow the same rule and are bound to the variant.
	Save(ctx context.Context, s domain.SubjectIdentificatie) error
	// DeleteByKlant removes every variant row owned by klantID and their children.
	DeleteByKlant(ctx context.Context, klantID string) error
}

// KlantInput carries the writable fields of a Klant. For partial updates a nil
// pointer means "not provided".
type KlantInput struct {
	Bronorganisatie *string
	Voornaam        *string
	Achternaam      *string
	Adres           *string
	Functie         *string
	Telefoonnummer  *string
	Emailadres      *string
	Subject         *string
	SubjectType     *string
	// SubjectIdentificatie is the raw nested payload; nil when absent or null.
	SubjectIdentificatie json.RawMessage
}

// KlantDetail is a Klant with its resolved subject variant (nil when none exists).
type KlantDetail struct {
	Klant                *domain.Klant
	SubjectIdentificatie domain.SubjectIdentificatie
}

// KlantService defines use-case operations for klanten.
type KlantService interface {
	Create(ctx context.Context, input KlantInput) (*KlantDetail, error)
	Get(ctx context.Context, uuid string) (*KlantDetail, error)
	List(ctx context.Context) ([]*KlantDetail, error)
	// Update applies the provided fields of input to an existing Klant.
	// Omitted fields keep their stored values.
	Update(ctx context.Context, uuid string, input KlantInput) (*KlantDetail, error)
	Delete(ctx context.Context, uuid string) error
}
