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

// schemaInformatieObject is the documenten API schema an informatieobject URL must match.
const schemaInformatieObject = "EnkelvoudigInformatieObject"

// VerzoekInformatieObjectService manages verzoek-document links. This API is
// canonical for them; the documenten API receives a mirrored
// objectinformatieobject on create and loses it on delete.
type VerzoekInformatieObjectService struct {
	repo      ports.VerzoekInformatieObjectRepository
	verzoeken ports.VerzoekRepository
	resources ports.ResourceValidator
	notifier  *SyncNotifier
	pending   pendingReader
	urls      resourceurl.Builder
	logger    zerolog.Logger
}

func NewVerzoekInformatieObjectService(
	repo ports.VerzoekInformatieObjectRepository,
	verzoeken ports.VerzoekRepository,
	resources ports.ResourceValidator,
	notifier *SyncNotifier,
	pending ports.PendingDeletes,
	urls resourceurl.Builder,
	logger zerolog.Logger,
) *VerzoekInformatieObjectService {
	return &VerzoekInformatieObjectService{
		repo:      repo,
		verzoeken: verzoeken,
		resources: resources,
		notifier:  notifier,
		pending:   pendingReader{pending: pending, logger: logger},
		urls:      urls,
		logger:    logger,
	}
}

// Create stores the link and mirrors it to the documenten API. When the
// mirror cannot be created the local row is removed and a sync-with-drc
// error is returned.
func (s *VerzoekInformatieObjectService) Create(ctx context.Context, input ports.VerzoekInformatieObjectInput) (*domain.VerzoekInformatieObject, error) {
	verzoek, err := checkLocalRef(ctx, s.urls, "verzoek", resourceurl.Verzoeken, input.Verzoek, func(ctx context.Context, id string) error {
		_, err := s.verzoeken.FindByUUID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if err := s.resources.Validate(ctx, "informatieobject", schemaInformatieObject, input.Informatieobject); err != nil {
		return nil, err
	}

	existing, err := s.repo.List(ctx, ports.VerzoekInformatieObjectFilter{Verzoek: verzoek, Informatieobject: input.Informatieobject})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, vioNotUnique()
	}

	vio := &domain.VerzoekInformatieObject{
		UUID:             resourceurl.NewUUID(),
		Verzoek:          verzoek,
		Informatieobject: input.Informatieobject,
	}
	if err := s.repo.Create(ctx, vio); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, vioNotUnique()
		}
		s.logger.Error().Err(err).Msg("failed to create verzoekinformatieobject")
		return nil, err
	}

	remote, err := s.notifier.PushInformatieObject(ctx, vio.Verzoek, vio.Informatieobject)
	if err != nil {
		if derr := s.repo.Delete(context.WithoutCancel(ctx), vio.UUID); derr != nil {
			s.logger.Error().Err(derr).Str("uuid", vio.UUID).Msg("failed to roll back verzoekinformatieobject")
		}
		return nil, err
	}
	vio.Remote = remote
	if err := s.repo.SetRemote(ctx, vio.UUID, remote); err != nil {
		s.logger.Error().Err(err).Str("uuid", vio.UUID).Msg("failed to store objectinformatieobject")
		return nil, err
	}

	metrics.ResourcesCreatedTotal.WithLabelValues(resourceurl.VerzoekInformatieObjecten).Inc()
	s.logger.Info().Str("uuid", vio.UUID).Str("informatieobject", vio.Informatieobject).Msg("verzoekinformatieobject created")
	return vio, nil
}

// Get hides links whose delete is in flight.
func (s *VerzoekInformatieObjectService) Get(ctx context.Context, uuid string) (*domain.VerzoekInformatieObject, error) {
	if s.pending.hidden(ctx, ports.PendingVerzoekInformatieObjecten, uuid) {
		return nil, domain.ErrNotFound
	}
	return s.repo.FindByUUID(ctx, uuid)
}

// List hides links whose delete is in flight, so the documenten API sees
// them as gone while it validates the retraction.
func (s *VerzoekInformatieObjectService) List(ctx context.Context, filter ports.VerzoekInformatieObjectFilter) ([]*domain.VerzoekInformatieObject, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	pending := s.pending.members(ctx, ports.PendingVerzoekInformatieObjecten)
	return visible(items, pending, func(v *domain.VerzoekInformatieObject) string { return v.UUID }), nil
}

// Delete retracts the mirror and removes the link. A failed retraction is
// logged and does not stop the local delete.
func (s *VerzoekInformatieObjectService) Delete(ctx context.Context, uuid string) error {
	vio, err := s.Get(ctx, uuid)
	if err != nil {
		return err
	}
	err = s.notifier.WithPendingDelete(ctx, ports.PendingVerzoekInformatieObjecten, uuid, func() error {
		s.notifier.RetractInformatieObject(ctx, vio)
		return s.repo.Delete(ctx, uuid)
	})
	if err != nil {
		s.logger.Error().Err(err).Str("uuid", uuid).Msg("failed to delete verzoekinformatieobject")
		return err
	}
	s.logger.Info().Str("uuid", uuid).Msg("verzoekinformatieobject deleted")
	return nil
}

func vioNotUnique() error {
	return domain.NonFieldError(domain.CodeUnique, "De velden verzoek en informatieobject moeten een unieke set zijn.")
}
