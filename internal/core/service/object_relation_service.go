package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vng-realisatie/klantinteracties/internal/api/metrics"
	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
	"github.com/vng-realisatie/klantinteracties/internal/core/ports"
	"github.com/vng-realisatie/klantinteracties/internal/pkg/resourceurl"
)

// Local kinds as used in remote relation resource names.
const (
	kindContactMoment = "contactmoment"
	kindVerzoek       = "verzoek"
)

// ObjectRelationService manages ObjectContactMoment and ObjectVerzoek. Both
// are checked against the remote API before they are created or deleted.
type ObjectRelationService struct {
	objectContactMomenten ports.ObjectContactMomentRepository
	objectVerzoeken       ports.ObjectVerzoekRepository
	contactMomenten       ports.ContactMomentRepository
	verzoeken             ports.VerzoekRepository
	validator             *RelationValidator
	urls                  resourceurl.Builder
	logger                zerolog.Logger
}

func NewObjectRelationService(
	objectContactMomenten ports.ObjectContactMomentRepository,
	objectVerzoeken ports.ObjectVerzoekRepository,
	contactMomenten ports.ContactMomentRepository,
	verzoeken ports.VerzoekRepository,
	validator *RelationValidator,
	urls resourceurl.Builder,
	logger zerolog.Logger,
) *ObjectRelationService {
	return &ObjectRelationService{
		objectContactMomenten: objectContactMomenten,
		objectVerzoeken:       objectVerzoeken,
		contactMomenten:       contactMomenten,
		verzoeken:             verzoeken,
		validator:             validator,
		urls:                  urls,
		logger:                logger,
	}
}

// ── ObjectContactMoment ──────────────────────────────────────────────────────

func (s *ObjectRelationService) CreateObjectContactMoment(ctx context.Context, input ports.ObjectRelationInput) (*domain.ObjectContactMoment, error) {
	objectType, err := checkObjectType(input.ObjectType)
	if err != nil {
		return nil, err
	}
	parent, err := s.checkParent(ctx, kindContactMoment, input.Parent)
	if err != nil {
		return nil, err
	}

	existing, err := s.objectContactMomenten.List(ctx, ports.ObjectContactMomentFilter{Object: input.Object, ContactMoment: parent})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, relationNotUnique(kindContactMoment)
	}

	if err := s.validator.ValidateCreate(ctx, kindContactMoment, objectType, input.Object, parent); err != nil {
		return nil, err
	}

	r := &domain.ObjectContactMoment{
		UUID:          resourceurl.NewUUID(),
		ContactMoment: parent,
		Object:        input.Object,
		ObjectType:    objectType,
	}
	if err := s.objectContactMomenten.Create(ctx, r); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, relationNotUnique(kindContactMoment)
		}
		s.logger.Error().Err(err).Msg("failed to create objectcontactmoment")
		return nil, err
	}

	metrics.ResourcesCreatedTotal.WithLabelValues(resourceurl.ObjectContactMomenten).Inc()
	s.logger.Info().Str("uuid", r.UUID).Str("object", r.Object).Msg("objectcontactmoment created")
	return r, nil
}

func (s *ObjectRelationService) GetObjectContactMoment(ctx context.Context, uuid string) (*domain.ObjectContactMoment, error) {
	return s.objectContactMomenten.FindByUUID(ctx, uuid)
}

func (s *ObjectRelationService) ListObjectContactMomenten(ctx context.Context, filter ports.ObjectContactMomentFilter) ([]*domain.ObjectContactMoment, error) {
	return s.objectContactMomenten.List(ctx, filter)
}

// DeleteObjectContactMoment refuses while the remote API still holds the relation.
func (s *ObjectRelationService) DeleteObjectContactMoment(ctx context.Context, uuid string) error {
	r, err := s.objectContactMomenten.FindByUUID(ctx, uuid)
	if err != nil {
		return err
	}
	if err := s.validator.ValidateDelete(ctx, kindContactMoment, r.ObjectType, r.Object, r.ContactMoment); err != nil {
		return err
	}
	if err := s.objectContactMomenten.Delete(ctx, uuid); err != nil {
		s.logger.Error().Err(err).Str("uuid", uuid).Msg("failed to delete objectcontactmoment")
		return err
	}
	s.logger.Info().Str("uuid", uuid).Msg("objectcontactmoment deleted")
	return nil
}

// ── ObjectVerzoek ────────────────────────────────────────────────────────────

func (s *ObjectRelationService) CreateObjectVerzoek(ctx context.Context, input ports.ObjectRelationInput) (*domain.ObjectVerzoek, error) {
	objectType, err := checkObjectType(input.ObjectType)
	if err != nil {
		return nil, err
	}
	parent, err := s.checkParent(ctx, kindVerzoek, input.Parent)
	if err != nil {
		return nil, err
	}

	existing, err := s.objectVerzoeken.List(ctx, ports.ObjectVerzoekFilter{Object: input.Object, Verzoek: parent})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, relationNotUnique(kindVerzoek)
	}

	if err := s.validator.ValidateCreate(ctx, kindVerzoek, objectType, input.Object, parent); err != nil {
		return nil, err
	}

	r := &domain.ObjectVerzoek{
		UUID:       resourceurl.NewUUID(),
		Verzoek:    parent,
		Object:     input.Object,
		ObjectType: objectType,
	}
	if err := s.objectVerzoeken.Create(ctx, r); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, relationNotUnique(kindVerzoek)
		}
		s.logger.Error().Err(err).Msg("failed to create objectverzoek")
		return nil, err
	}

	metrics.ResourcesCreatedTotal.WithLabelValues(resourceurl.ObjectVerzoeken).Inc()
	s.logger.Info().Str("uuid", r.UUID).Str("object", r.Object).Msg("objectverzoek created")
	return r, nil
}

func (s *ObjectRelationService) GetObjectVerzoek(ctx context.Context, uuid string) (*domain.ObjectVerzoek, error) {
	return s.objectVerzoeken.FindByUUID(ctx, uuid)
}

func (s *ObjectRelationService) ListObjectVerzoeken(ctx context.Context, filter ports.ObjectVerzoekFilter) ([]*domain.ObjectVerzoek, error) {
	return s.objectVerzoeken.List(ctx, filter)
}

// DeleteObjectVerzoek refuses while the remote API still holds the relation.
func (s *ObjectRelationService) DeleteObjectVerzoek(ctx context.Context, uuid string) error {
	r, err := s.objectVerzoeken.FindByUUID(ctx, uuid)
	if err != nil {
		return err
	}
	if err := s.validator.ValidateDelete(ctx, kindVerzoek, r.ObjectType, r.Object, r.Verzoek); err != nil {
		return err
	}
	if err := s.objectVerzoeken.Delete(ctx, uuid); err != nil {
		s.logger.Error().Err(err).Str("uuid", uuid).Msg("failed to delete objectverzoek")
		return err
	}
	s.logger.Info().Str("uuid", uuid).Msg("objectverzoek deleted")
	return nil
}

// checkParent requires parentURL to point at an existing contactmoment or
// verzoek of this API and returns its canonical URL.
func (s *ObjectRelationService) checkParent(ctx context.Context, kind, parentURL string) (string, error) {
	collection := resourceurl.ContactMomenten
	if kind == kindVerzoek {
		collection = resourceurl.Verzoeken
	}
	return checkLocalRef(ctx, s.urls, kind, collection, parentURL, func(ctx context.Context, id string) error {
		if kind == kindVerzoek {
			_, err := s.verzoeken.FindByUUID(ctx, id)
			return err
		}
		_, err := s.contactMomenten.FindByUUID(ctx, id)
		return err
	})
}

// checkLocalRef resolves a hyperlink to a resource of this API through find
// and returns the canonical URL of that resource.
func checkLocalRef(ctx context.Context, urls resourceurl.Builder, field, collection, url string, find func(ctx context.Context, uuid string) error) (string, error) {
	if url == "" {
		return "", domain.NewValidationError(field, domain.CodeRequired, "Dit veld is vereist.")
	}
	id, ok := urls.UUID(collection, url)
	if !ok {
		return "", domain.NewValidationError(field, domain.CodeBadURL, "Ongeldige hyperlink - Onjuiste URL.")
	}
	if err := find(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.NewValidationError(field, domain.CodeDoesNotExist, "Ongeldige hyperlink - Object bestaat niet.")
		}
		return "", err
	}
	return urls.URL(collection, id), nil
}

func checkObjectType(raw string) (domain.ObjectType, error) {
	t := domain.ObjectType(raw)
	if !t.Valid() {
		return "", domain.NewValidationError("objectType", domain.CodeInvalidChoice,
			fmt.Sprintf("%q is een ongeldige keuze.", raw))
	}
	return t, nil
}

func relationNotUnique(kind string) error {
	return domain.NonFieldError(domain.CodeUnique,
		fmt.Sprintf("De velden %s en object moeten een unieke set zijn.", kind))
}
