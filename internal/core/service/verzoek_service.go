package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/vng-realisatie/klantinteracties/internal/api/metrics"
	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
	"github.com/vng-realisatie/klantinteracties/internal/core/ports"
	"github.com/vng-realisatie/klantinteracties/internal/pkg/resourceurl"
)

// maxIdentificatieAttempts bounds the search for a free generated identificatie.
const maxIdentificatieAttempts = 10

type VerzoekService struct {
	repo                   ports.VerzoekRepository
	klanten                ports.KlantRepository
	objectVerzoeken        ports.ObjectVerzoekRepository
	informatieObjecten     ports.VerzoekInformatieObjectRepository
	producten              ports.VerzoekProductRepository
	verzoekContactMomenten ports.VerzoekContactMomentRepository
	tx                     ports.TxManager
	urls                   resourceurl.Builder
	logger                 zerolog.Logger
	now                    func() time.Time
}

func NewVerzoekService(
	repo ports.VerzoekRepository,
	klanten ports.KlantRepository,
	objectVerzoeken ports.ObjectVerzoekRepository,
	informatieObjecten ports.VerzoekInformatieObjectRepository,
	producten ports.VerzoekProductRepository,
	verzoekContactMomenten ports.VerzoekContactMomentRepository,
	tx ports.TxManager,
	urls resourceurl.Builder,
	logger zerolog.Logger,
) *VerzoekService {
	return &VerzoekService{
		repo:                   repo,
		klanten:                klanten,
		objectVerzoeken:        objectVerzoeken,
		informatieObjecten:     informatieObjecten,
		producten:              producten,
		verzoekContactMomenten: verzoekContactMomenten,
		tx:                     tx,
		urls:                   urls,
		logger:                 logger,
		now:                    func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a Verzoek. An empty identificatie is generated as
// VERZOEK-<year>-<sequence>; a given one must be unique within bronorganisatie.
func (s *VerzoekService) Create(ctx context.Context, input ports.VerzoekInput) (*domain.Verzoek, error) {
	klant, err := checkKlant(ctx, s.klanten, s.urls, deref(input.Klant))
	if err != nil {
		return nil, err
	}
	if klant != "" {
		input.Klant = &klant
	}

	now := s.now()
	v := &domain.Verzoek{
		UUID:            resourceurl.NewUUID(),
		Interactiedatum: now,
		Status:          domain.VerzoekOntvangen,
		CreatedAt:       now,
	}
	applyVerzoekInput(v, input)

	if v.Identificatie == "" {
		ident, err := s.generateIdentificatie(ctx, v.Bronorganisatie, now.Year())
		if err != nil {
			return nil, err
		}
		v.Identificatie = ident
	} else if err := s.checkUnique(ctx, v.Bronorganisatie, v.Identificatie, ""); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, v); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, identificatieTaken()
		}
		s.logger.Error().Err(err).Msg("failed to create verzoek")
		return nil, err
	}

	metrics.ResourcesCreatedTotal.WithLabelValues(resourceurl.Verzoeken).Inc()
	s.logger.Info().Str("uuid", v.UUID).Str("identificatie", v.Identificatie).Msg("verzoek created")
	return v, nil
}

func (s *VerzoekService) Get(ctx context.Context, uuid string) (*domain.Verzoek, error) {
	return s.repo.FindByUUID(ctx, uuid)
}

func (s *VerzoekService) List(ctx context.Context) ([]*domain.Verzoek, error) {
	return s.repo.List(ctx)
}

// Update applies the provided fields. identificatie cannot change once set.
func (s *VerzoekService) Update(ctx context.Context, uuid string, input ports.VerzoekInput) (*domain.Verzoek, error) {
	v, err := s.repo.FindByUUID(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if input.Identificatie != nil && *input.Identificatie != v.Identificatie {
		return nil, domain.NewValidationError("identificatie", domain.CodeImmutable,
			"Dit veld mag niet gewijzigd worden.")
	}
	if input.Klant != nil {
		klant, err := checkKlant(ctx, s.klanten, s.urls, *input.Klant)
		if err != nil {
			return nil, err
		}
		input.Klant = &klant
	}

	bronorganisatie := v.Bronorganisatie
	applyVerzoekInput(v, input)
	if v.Bronorganisatie != bronorganisatie {
		if err := s.checkUnique(ctx, v.Bronorganisatie, v.Identificatie, v.UUID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, v); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, identificatieTaken()
		}
		s.logger.Error().Err(err).Str("uuid", uuid).Msg("failed to update verzoek")
		return nil, err
	}
	s.logger.Info().Str("uuid", uuid).Str("status", string(v.Status)).Msg("verzoek updated")
	return v, nil
}

// Delete removes the verzoek with all its local relations. Mirrored
// objectinformatieobjecten in the documenten API are left alone.
func (s *VerzoekService) Delete(ctx context.Context, uuid string) error {
	if _, err := s.repo.FindByUUID(ctx, uuid); err != nil {
		return err
	}
	url := s.urls.URL(resourceurl.Verzoeken, uuid)

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.objectVerzoeken.DeleteMatching(ctx, ports.ObjectVerzoekFilter{Verzoek: url}); err != nil {
			return fmt.Errorf("delete objectverzoeken: %w", err)
		}
		if err := s.informatieObjecten.DeleteMatching(ctx, ports.VerzoekInformatieObjectFilter{Verzoek: url}); err != nil {
			return fmt.Errorf("delete verzoekinformatieobjecten: %w", err)
		}
		if err := s.producten.DeleteMatching(ctx, ports.VerzoekProductFilter{Verzoek: url}); err != nil {
			return fmt.Errorf("delete verzoekproducten: %w", err)
		}
		if err := s.verzoekContactMomenten.DeleteMatching(ctx, ports.VerzoekContactMomentFilter{Verzoek: url}); err != nil {
			return fmt.Errorf("delete verzoekcontactmomenten: %w", err)
		}
		return s.repo.Delete(ctx, uuid)
	})
	if err != nil {
		s.logger.Error().Err(err).Str("uuid", uuid).Msg("failed to delete verzoek")
		return err
	}
	s.logger.Info().Str("uuid", uuid).Msg("verzoek deleted")
	return nil
}

func (s *VerzoekService) generateIdentificatie(ctx context.Context, bronorganisatie string, year int) (string, error) {
	for range maxIdentificatieAttempts {
		seq, err := s.repo.NextSequence(ctx, year)
		if err != nil {
			return "", fmt.Errorf("next verzoek sequence: %w", err)
		}
		ident := domain.VerzoekIdentificatie(year, seq)
		taken, err := s.repo.ExistsIdentificatie(ctx, bronorganisatie, ident, "")
		if err != nil {
			return "", err
		}
		if !taken {
			return ident, nil
		}
	}
	return "", fmt.Errorf("no free verzoek identificatie for %d after %d attempts", year, maxIdentificatieAttempts)
}

func (s *VerzoekService) checkUnique(ctx context.Context, bronorganisatie, identificatie, excludeUUID string) error {
	taken, err := s.repo.ExistsIdentificatie(ctx, bronorganisatie, identificatie, excludeUUID)
	if err != nil {
		return err
	}
	if taken {
		return identificatieTaken()
	}
	return nil
}

func identificatieTaken() error {
	return domain.NewValidationError("identificatie", domain.CodeIdentificatieNotUnique,
		"Deze identificatie bestaat al voor deze bronorganisatie")
}

func applyVerzoekInput(v *domain.Verzoek, in ports.VerzoekInput) {
	set(&v.Bronorganisatie, in.Bronorganisatie)
	set(&v.Identificatie, in.Identificatie)
	set(&v.ExterneIdentificatie, in.ExterneIdentificatie)
	set(&v.Klant, in.Klant)
	set(&v.Interactiedatum, in.Interactiedatum)
	set(&v.Voorkeurskanaal, in.Voorkeurskanaal)
	set(&v.Tekst, in.Tekst)
	if in.Status != nil {
		v.Status = domain.VerzoekStatus(*in.Status)
	}
}
