package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/vng-realisatie/klantinteracties/internal/api/metrics"
	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
	"github.com/vng-realisatie/klantinteracties/internal/core/ports"
	"github.com/vng-realisatie/klantinteracties/internal/pkg/resourceurl"
)

// VerzoekLinkService manages VerzoekProduct and VerzoekContactMoment. Neither
// has a remote counterpart.
type VerzoekLinkService struct {
	producten              ports.VerzoekProductRepository
	verzoekContactMomenten ports.VerzoekContactMomentRepository
	verzoeken              ports.VerzoekRepository
	contactMomenten        ports.ContactMomentRepository
	urls                   resourceurl.Builder
	logger                 zerolog.Logger
}

func NewVerzoekLinkService(
	producten ports.VerzoekProductRepository,
	verzoekContactMomenten ports.VerzoekContactMomentRepository,
	verzoeken ports.VerzoekRepository,
	contactMomenten ports.ContactMomentRepository,
	urls resourceurl.Builder,
	logger zerolog.Logger,
) *VerzoekLinkService {
	return &VerzoekLinkService{
		producten:              producten,
		verzoekContactMomenten: verzoekContactMomenten,
		verzoeken:              verzoeken,
		contactMomenten:        contactMomenten,
		urls:                   urls,
		logger:                 logger,
	}
}

// ── VerzoekProduct ───────────────────────────────────────────────────────────

func (s *VerzoekLinkService) CreateVerzoekProduct(ctx context.Context, input ports.VerzoekProductInput) (*domain.VerzoekProduct, error) {
	verzoek, err := s.checkVerzoek(ctx, input.Verzoek)
	if err != nil {
		return nil, err
	}
	if input.Product == "" && input.ProductIdentificatieCode == "" {
		return nil, domain.NonFieldError(domain.CodeInvalidProduct,
			"product or productIdentificatie must be provided")
	}

	if input.Product != "" {
		existing, err := s.producten.List(ctx, ports.VerzoekProductFilter{Verzoek: verzoek, Product: input.Product})
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			return nil, productNotUnique()
		}
	}

	r := &domain.VerzoekProduct{
		UUID:                     resourceurl.NewUUID(),
		Verzoek:                  verzoek,
		Product:                  input.Product,
		ProductIdentificatieCode: input.ProductIdentificatieCode,
	}
	if err := s.producten.Create(ctx, r); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, productNotUnique()
		}
		s.logger.Error().Err(err).Msg("failed to create verzoekproduct")
		return nil, err
	}

	metrics.ResourcesCreatedTotal.WithLabelValues(resourceurl.VerzoekProducten).Inc()
	s.logger.Info().Str("uuid", r.UUID).Msg("verzoekproduct created")
	return r, nil
}

func (s *VerzoekLinkService) GetVerzoekProduct(ctx context.Context, uuid string) (*domain.VerzoekProduct, error) {
	return s.producten.FindByUUID(ctx, uuid)
}

func (s *VerzoekLinkService) ListVerzoekProducten(ctx context.Context, filter ports.VerzoekProductFilter) ([]*domain.VerzoekProduct, error) {
	return s.producten.List(ctx, filter)
}

func (s *VerzoekLinkService) DeleteVerzoekProduct(ctx context.Context, uuid string) error {
	if err := s.producten.Delete(ctx, uuid); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error().Err(err).Str("uuid", uuid).Msg("failed to delete verzoekproduct")
		}
		return err
	}
	s.logger.Info().Str("uuid", uuid).Msg("verzoekproduct deleted")
	return nil
}

// ── VerzoekContactMoment ─────────────────────────────────────────────────────

func (s *VerzoekLinkService) CreateVerzoekContactMoment(ctx context.Context, input ports.VerzoekContactMomentInput) (*domain.VerzoekContactMoment, error) {
	verzoek, err := s.checkVerzoek(ctx, input.Verzoek)
	if err != nil {
		return nil, err
	}
	contactMoment, err := checkLocalRef(ctx, s.urls, "contactmoment", resourceurl.ContactMomenten, input.ContactMoment, func(ctx context.Context, id string) error {
		_, err := s.contactMomenten.FindByUUID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	existing, err := s.verzoekContactMomenten.List(ctx, ports.VerzoekContactMomentFilter{Verzoek: verzoek, ContactMoment: contactMoment})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, verzoekContactMomentNotUnique()
	}

	r := &domain.VerzoekContactMoment{
		UUID:          resourceurl.NewUUID(),
		Verzoek:       verzoek,
		ContactMoment: contactMoment,
	}
	if err := s.verzoekContactMomenten.Create(ctx, r); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, verzoekContactMomentNotUnique()
		}
		s.logger.Error().Err(err).Msg("failed to create verzoekcontactmoment")
		return nil, err
	}

	metrics.ResourcesCreatedTotal.WithLabelValues(resourceurl.VerzoekContactMomenten).Inc()
	s.logger.Info().Str("uuid", r.UUID).Msg("verzoekcontactmoment created")
	return r, nil
}

func (s *VerzoekLinkService) GetVerzoekContactMoment(ctx context.Context, uuid string) (*domain.VerzoekContactMoment, error) {
	return s.verzoekContactMomenten.FindByUUID(ctx, uuid)
}

func (s *VerzoekLinkService) ListVerzoekContactMomenten(ctx context.Context, filter ports.VerzoekContactMomentFilter) ([]*domain.VerzoekContactMoment, error) {
	return s.verzoekContactMomenten.List(ctx, filter)
}

func (s *VerzoekLinkService) DeleteVerzoekContactMoment(ctx context.Context, uuid string) error {
	if err := s.verzoekContactMomenten.Delete(ctx, uuid); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error().Err(err).Str("uuid", uuid).Msg("failed to delete verzoekcontactmoment")
		}
		return err
	}
	s.logger.Info().Str("uuid", uuid).Msg("verzoekcontactmoment deleted")
	return nil
}

func (s *VerzoekLinkService) checkVerzoek(ctx context.Context, verzoekURL string) (string, error) {
	return checkLocalRef(ctx, s.urls, "verzoek", resourceurl.Verzoeken, verzoekURL, func(ctx context.Context, id string) error {
		_, err := s.verzoeken.FindByUUID(ctx, id)
		return err
	})
}

func productNotUnique() error {
	return domain.NonFieldError(domain.CodeUnique, "De velden verzoek en product moeten een unieke set zijn.")
}

func verzoekContactMomentNotUnique() error {
	return domain.NonFieldError(domain.CodeUnique, "De velden verzoek en contactmoment moeten een unieke set zijn.")
}
