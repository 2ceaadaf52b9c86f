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

type ContactMomentService struct {
	repo                   ports.ContactMomentRepository
	klanten                ports.KlantRepository
	objectContactMomenten  ports.ObjectContactMomentRepository
	verzoekContactMomenten ports.VerzoekContactMomentRepository
	tx                     ports.TxManager
	notifier               *SyncNotifier
	pending                pendingReader
	urls                   resourceurl.Builder
	logger                 zerolog.Logger
}

func NewContactMomentService(
	repo ports.ContactMomentRepository,
	klanten ports.KlantRepository,
	objectContactMomenten ports.ObjectContactMomentRepository,
	verzoekContactMomenten ports.VerzoekContactMomentRepository,
	tx ports.TxManager,
	notifier *SyncNotifier,
	pending ports.PendingDeletes,
	urls resourceurl.Builder,
	logger zerolog.Logger,
) *ContactMomentService {
	return &ContactMomentService{
		repo:                   repo,
		klanten:                klanten,
		objectContactMomenten:  objectContactMomenten,
		verzoekContactMomenten: verzoekContactMomenten,
		tx:                     tx,
		notifier:               notifier,
		pending:                pendingReader{pending: pending, logger: logger},
		urls:                   urls,
		logger:                 logger,
	}
}

// Create stores a ContactMoment with its medewerkerIdentificatie. When zaak is
// set the zaakcontactmoment is created in the zaken API afterwards; if that
// fails the local rows are removed again and a sync-with-zrc error is returned.
func (s *ContactMomentService) Create(ctx context.Context, input ports.ContactMomentInput) (*domain.ContactMoment, error) {
	if err := checkMedewerker(deref(input.Medewerker), input.MedewerkerIdentificatie != nil); err != nil {
		return nil, err
	}
	klant, err := checkKlant(ctx, s.klanten, s.urls, deref(input.Klant))
	if err != nil {
		return nil, err
	}
	if klant != "" {
		input.Klant = &klant
	}

	now := time.Now().UTC()
	cm := &domain.ContactMoment{
		UUID:            resourceurl.NewUUID(),
		Interactiedatum: now,
		CreatedAt:       now,
	}
	applyContactMomentInput(cm, input)
	if input.MedewerkerIdentificatie != nil {
		cm.MedewerkerIdentificatie = &domain.Medewerker{}
		applyMedewerkerInput(cm.MedewerkerIdentificatie, *input.MedewerkerIdentificatie)
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, cm); err != nil {
			return fmt.Errorf("create contactmoment: %w", err)
		}
		if cm.MedewerkerIdentificatie == nil {
			return nil
		}
		cm.MedewerkerIdentificatie.ContactMomentID = cm.ID
		return s.repo.SaveMedewerker(ctx, cm.MedewerkerIdentificatie)
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create contactmoment")
		return nil, err
	}

	if cm.Zaak != "" {
		remote, err := s.notifier.PushZaakContactMoment(ctx, cm.Zaak, s.urls.URL(resourceurl.ContactMomenten, cm.UUID))
		if err != nil {
			s.compensate(ctx, cm)
			return nil, err
		}
		cm.ZaakContactMoment = remote
		if err := s.repo.Update(ctx, cm); err != nil {
			s.logger.Error().Err(err).Str("uuid", cm.UUID).Msg("failed to store zaakcontactmoment")
			return nil, err
		}
	}

	metrics.ResourcesCreatedTotal.WithLabelValues(resourceurl.ContactMomenten).Inc()
	s.logger.Info().Str("uuid", cm.UUID).Str("kanaal", cm.Kanaal).Msg("contactmoment created")
	return cm, nil
}

// compensate removes a contactmoment whose outbound sync failed.
func (s *ContactMomentService) compensate(ctx context.Context, cm *domain.ContactMoment) {
	if err := s.repo.Delete(context.WithoutCancel(ctx), cm.UUID); err != nil {
		s.logger.Error().Err(err).Str("uuid", cm.UUID).Msg("failed to roll back contactmoment")
	}
}

func (s *ContactMomentService) Get(ctx context.Context, uuid string) (*domain.ContactMoment, error) {
	if s.pending.hidden(ctx, ports.PendingContactMomenten, uuid) {
		return nil, domain.ErrNotFound
	}
	return s.repo.FindByUUID(ctx, uuid)
}

// List returns all contactmomenten except those being deleted.
func (s *ContactMomentService) List(ctx context.Context) ([]*domain.ContactMoment, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	pending := s.pending.members(ctx, ports.PendingContactMomenten)
	return visible(items, pending, func(cm *domain.ContactMoment) string { return cm.UUID }), nil
}

// Update applies the provided fields. A changed zaak is pushed to the zaken
// API before the local write; the previous zaakcontactmoment is retracted
// afterwards.
func (s *ContactMomentService) Update(ctx context.Context, uuid string, input ports.ContactMomentInput) (*domain.ContactMoment, error) {
	cm, err := s.Get(ctx, uuid)
	if err != nil {
		return nil, err
	}

	medewerker := cm.Medewerker
	if input.Medewerker != nil {
		medewerker = *input.Medewerker
	}
	hasIdentificatie := input.MedewerkerIdentificatie != nil || cm.MedewerkerIdentificatie != nil
	if err := checkMedewerker(medewerker, hasIdentificatie); err != nil {
		return nil, err
	}
	if input.Klant != nil {
		klant, err := checkKlant(ctx, s.klanten, s.urls, *input.Klant)
		if err != nil {
			return nil, err
		}
		input.Klant = &klant
	}

	previous := *cm
	applyContactMomentInput(cm, input)
	if input.MedewerkerIdentificatie != nil {
		if cm.MedewerkerIdentificatie == nil {
			cm.MedewerkerIdentificatie = &domain.Medewerker{ContactMomentID: cm.ID}
		}
		applyMedewerkerInput(cm.MedewerkerIdentificatie, *input.MedewerkerIdentificatie)
	}

	zaakChanged := cm.Zaak != previous.Zaak
	if zaakChanged {
		cm.ZaakContactMoment = ""
		if cm.Zaak != "" {
			remote, err := s.notifier.PushZaakContactMoment(ctx, cm.Zaak, s.urls.URL(resourceurl.ContactMomenten, cm.UUID))
			if err != nil {
				return nil, err
			}
			cm.ZaakContactMoment = remote
		}
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, cm); err != nil {
			return fmt.Errorf("update contactmoment: %w", err)
		}
		if input.MedewerkerIdentificatie == nil {
			return nil
		}
		return s.repo.SaveMedewerker(ctx, cm.MedewerkerIdentificatie)
	})
	if err != nil {
		s.logger.Error().Err(err).Str("uuid", uuid).Msg("failed to update contactmoment")
		if zaakChanged {
			s.notifier.RetractZaakContactMoment(context.WithoutCancel(ctx), cm)
		}
		return nil, err
	}

	if zaakChanged {
		s.notifier.RetractZaakContactMoment(ctx, &previous)
	}
	s.logger.Info().Str("uuid", uuid).Msg("contactmoment updated")
	return cm, nil
}

// Delete retracts the zaakcontactmoment and removes the contactmoment with its
// medewerkerIdentificatie and local relations. The contactmoment is hidden
// from reads for the duration.
func (s *ContactMomentService) Delete(ctx context.Context, uuid string) error {
	cm, err := s.Get(ctx, uuid)
	if err != nil {
		return err
	}
	url := s.urls.URL(resourceurl.ContactMomenten, uuid)

	err = s.notifier.WithPendingDelete(ctx, ports.PendingContactMomenten, uuid, func() error {
		s.notifier.RetractZaakContactMoment(ctx, cm)
		return s.tx.WithinTx(ctx, func(ctx context.Context) error {
			if err := s.objectContactMomenten.DeleteMatching(ctx, ports.ObjectContactMomentFilter{ContactMoment: url}); err != nil {
				return fmt.Errorf("delete objectcontactmomenten: %w", err)
			}
			if err := s.verzoekContactMomenten.DeleteMatching(ctx, ports.VerzoekContactMomentFilter{ContactMoment: url}); err != nil {
				return fmt.Errorf("delete verzoekcontactmomenten: %w", err)
			}
			return s.repo.Delete(ctx, uuid)
		})
	})
	if err != nil {
		s.logger.Error().Err(err).Str("uuid", uuid).Msg("failed to delete contactmoment")
		return err
	}
	s.logger.Info().Str("uuid", uuid).Msg("contactmoment deleted")
	return nil
}

// checkMedewerker requires exactly one of a medewerker URL or an embedded
// medewerkerIdentificatie.
func checkMedewerker(medewerkerURL string, hasIdentificatie bool) error {
	switch {
	case medewerkerURL == "" && !hasIdentificatie:
		return domain.NonFieldError(domain.CodeInvalidMedewerker,
			"medewerker or medewerkerIdentificatie must be provided")
	case medewerkerURL != "" && hasIdentificatie:
		return domain.NonFieldError(domain.CodeInvalidMedewerker,
			"medewerker and medewerkerIdentificatie cannot both be set")
	}
	return nil
}

// checkKlant requires a non-empty klant URL to point at an existing Klant of
// this API and returns its canonical URL.
func checkKlant(ctx context.Context, klanten ports.KlantRepository, urls resourceurl.Builder, klantURL string) (string, error) {
	if klantURL == "" {
		return "", nil
	}
	id, ok := urls.UUID(resourceurl.Klanten, klantURL)
	if !ok {
		return "", domain.NewValidationError("klant", domain.CodeBadURL, "Ongeldige hyperlink - Onjuiste URL.")
	}
	if _, err := klanten.FindByUUID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.NewValidationError("klant", domain.CodeDoesNotExist, "Ongeldige hyperlink - Object bestaat niet.")
		}
		return "", err
	}
	return urls.URL(resourceurl.Klanten, id), nil
}

func applyContactMomentInput(cm *domain.ContactMoment, in ports.ContactMomentInput) {
	set(&cm.Bronorganisatie, in.Bronorganisatie)
	set(&cm.Klant, in.Klant)
	set(&cm.Interactiedatum, in.Interactiedatum)
	set(&cm.Kanaal, in.Kanaal)
	set(&cm.Voorkeurskanaal, in.Voorkeurskanaal)
	set(&cm.Voorkeurstaal, in.Voorkeurstaal)
	set(&cm.Tekst, in.Tekst)
	set(&cm.OnderwerpLinks, in.OnderwerpLinks)
	set(&cm.Initiatiefnemer, in.Initiatiefnemer)
	set(&cm.Medewerker, in.Medewerker)
	set(&cm.Zaak, in.Zaak)
}

func applyMedewerkerInput(m *domain.Medewerker, in ports.MedewerkerInput) {
	set(&m.Identificatie, in.Identificatie)
	set(&m.Achternaam, in.Achternaam)
	set(&m.Voorletters, in.Voorletters)
	set(&m.VoorvoegselAchternaam, in.VoorvoegselAchternaam)
}
