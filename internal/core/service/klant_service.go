package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/vng-realisatie/klantinteracties/internal/api/metrics"
	"github.com/vng-realisatie/klantinteracties/internal/core/codec"
	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
	"github.com/vng-realisatie/klantinteracties/internal/core/ports"
	"github.com/vng-realisatie/klantinteracties/internal/pkg/resourceurl"
)

const fieldSubjectType = "subjectType"

type KlantService struct {
	klanten  ports.KlantRepository
	subjects ports.SubjectRepository
	tx       ports.TxManager
	logger   zerolog.Logger
}

func NewKlantService(klanten ports.KlantRepository, subjects ports.SubjectRepository, tx ports.TxManager, logger zerolog.Logger) *KlantService {
	return &KlantService{klanten: klanten, subjects: subjects, tx: tx, logger: logger}
}

// Create stores a Klant and, when given, its subject variant with children.
// All rows are written in one transaction.
func (s *KlantService) Create(ctx context.Context, input ports.KlantInput) (*ports.KlantDetail, error) {
	subjectType := domain.SubjectType(deref(input.SubjectType))

	patch, variant, err := decodeSubject(subjectType, input.SubjectIdentificatie)
	if err != nil {
		return nil, err
	}
	if err := checkSubject(deref(input.Subject), patch != nil); err != nil {
		return nil, err
	}

	var subject domain.SubjectIdentificatie
	if patch != nil {
		subject = variant.New("")
		if err := patch.Apply(subject); err != nil {
			return nil, err
		}
	}

	k := &domain.Klant{
		UUID:        resourceurl.NewUUID(),
		SubjectType: subjectType,
		CreatedAt:   time.Now().UTC(),
	}
	applyKlantInput(k, input)

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.klanten.Create(ctx, k); err != nil {
			return fmt.Errorf("create klant: %w", err)
		}
		if subject == nil {
			return nil
		}
		subject.Record().KlantID = k.ID
		if err := s.subjects.Save(ctx, subject); err != nil {
			return fmt.Errorf("create %s: %w", subjectType, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create klant")
		return nil, err
	}

	metrics.ResourcesCreatedTotal.WithLabelValues(resourceurl.Klanten).Inc()
	s.logger.Info().Str("uuid", k.UUID).Str("subject_type", string(k.SubjectType)).Msg("klant created")
	return &ports.KlantDetail{Klant: k, SubjectIdentificatie: subject}, nil
}

// Get returns the Klant with its resolved subject variant.
func (s *KlantService) Get(ctx context.Context, uuid string) (*ports.KlantDetail, error) {
	k, err := s.klanten.FindByUUID(ctx, uuid)
	if err != nil {
		return nil, err
	}
	subject, err := s.resolveSubject(ctx, k, k.SubjectType)
	if err != nil {
		return nil, err
	}
	return &ports.KlantDetail{Klant: k, SubjectIdentificatie: subject}, nil
}

func (s *KlantService) List(ctx context.Context) ([]*ports.KlantDetail, error) {
	klanten, err := s.klanten.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*ports.KlantDetail, 0, len(klanten))
	for _, k := range klanten {
		subject, err := s.resolveSubject(ctx, k, k.SubjectType)
		if err != nil {
			return nil, err
		}
		out = append(out, &ports.KlantDetail{Klant: k, SubjectIdentificatie: subject})
	}
	return out, nil
}

// Update applies input to the Klant identified by uuid. An omitted
// subjectType reuses the stored one; changing a stored subjectType is
// rejected. The nested variant and its children are updated in place when
// they exist and created otherwise.
func (s *KlantService) Update(ctx context.Context, uuid string, input ports.KlantInput) (*ports.KlantDetail, error) {
	k, err := s.klanten.FindByUUID(ctx, uuid)
	if err != nil {
		return nil, err
	}

	subjectType := k.SubjectType
	if input.SubjectType != nil {
		requested := domain.SubjectType(*input.SubjectType)
		if k.SubjectType != "" && requested != k.SubjectType {
			return nil, domain.NewValidationError(fieldSubjectType, domain.CodeImmutable,
				"Dit veld mag niet gewijzigd worden.")
		}
		subjectType = requested
	}

	patch, variant, err := decodeSubject(subjectType, input.SubjectIdentificatie)
	if err != nil {
		return nil, err
	}

	current, err := s.resolveSubject(ctx, k, subjectType)
	if err != nil {
		return nil, err
	}

	subjectURL := k.Subject
	if input.Subject != nil {
		subjectURL = *input.Subject
	}
	if err := checkSubject(subjectURL, patch != nil || current != nil); err != nil {
		return nil, err
	}

	target := current
	if patch != nil {
		if target == nil {
			target = variant.New(k.ID)
		}
		if err := patch.Apply(target); err != nil {
			return nil, err
		}
	}

	k.SubjectType = subjectType
	applyKlantInput(k, input)

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.klanten.Update(ctx, k); err != nil {
			return fmt.Errorf("update klant: %w", err)
		}
		if patch == nil {
			return nil
		}
		if err := s.subjects.Save(ctx, target); err != nil {
			return fmt.Errorf("save %s: %w", subjectType, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Str("uuid", uuid).Msg("failed to update klant")
		return nil, err
	}

	s.logger.Info().Str("uuid", uuid).Msg("klant updated")
	return &ports.KlantDetail{Klant: k, SubjectIdentificatie: target}, nil
}

// Delete removes the Klant with its subject variant and the variant's children.
func (s *KlantService) Delete(ctx context.Context, uuid string) error {
	k, err := s.klanten.FindByUUID(ctx, uuid)
	if err != nil {
		return err
	}
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.subjects.DeleteByKlant(ctx, k.ID); err != nil {
			return fmt.Errorf("delete subject: %w", err)
		}
		return s.klanten.Delete(ctx, uuid)
	})
	if err != nil {
		s.logger.Error().Err(err).Str("uuid", uuid).Msg("failed to delete klant")
		return err
	}
	s.logger.Info().Str("uuid", uuid).Msg("klant deleted")
	return nil
}

// resolveSubject loads the variant of type t owned by k, or nil when there is none.
func (s *KlantService) resolveSubject(ctx context.Context, k *domain.Klant, t domain.SubjectType) (domain.SubjectIdentificatie, error) {
	if t == "" || k.ID == "" {
		return nil, nil
	}
	subject, err := s.subjects.FindByKlant(ctx, k.ID, t)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return subject, nil
}

// decodeSubject validates the discriminator against the nested payload and
// decodes the payload. It returns a nil patch when no payload was sent.
func decodeSubject(t domain.SubjectType, raw []byte) (codec.Patch, codec.Variant, error) {
	var variant codec.Variant
	if t != "" {
		v, ok := codec.Lookup(t)
		if !ok {
			return nil, variant, domain.NewValidationError(fieldSubjectType, domain.CodeInvalidChoice,
				fmt.Sprintf("%q is een ongeldige keuze, kies uit: %s.", t, codec.Choices()))
		}
		variant = v
	}
	if codec.IsNull(raw) {
		return nil, variant, nil
	}
	if t == "" {
		return nil, variant, domain.NewValidationError(fieldSubjectType, domain.CodeRequired,
			"subjectType is vereist bij subjectIdentificatie.")
	}
	patch, err := variant.Decode(raw)
	if err != nil {
		return nil, variant, err
	}
	return patch, variant, nil
}

// checkSubject requires exactly one of a subject URL or a subject variant.
func checkSubject(subjectURL string, hasIdentificatie bool) error {
	switch {
	case subjectURL == "" && !hasIdentificatie:
		return domain.NonFieldError(domain.CodeInvalidSubject,
			"subject or subjectIdentificatie must be provided")
	case subjectURL != "" && hasIdentificatie:
		return domain.NonFieldError(domain.CodeInvalidSubject,
			"subject and subjectIdentificatie cannot both be set")
	}
	return nil
}

func applyKlantInput(k *domain.Klant, in ports.KlantInput) {
	set(&k.Bronorganisatie, in.Bronorganisatie)
	set(&k.Voornaam, in.Voornaam)
	set(&k.Achternaam, in.Achternaam)
	set(&k.Adres, in.Adres)
	set(&k.Functie, in.Functie)
	set(&k.Telefoonnummer, in.Telefoonnummer)
	set(&k.Emailadres, in.Emailadres)
	set(&k.Subject, in.Subject)
}
