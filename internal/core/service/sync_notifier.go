package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vng-realisatie/klantinteracties/internal/api/metrics"
	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
	"github.com/vng-realisatie/klantinteracties/internal/core/ports"
)

// Remote relation resources mirrored by this API.
const (
	remoteZaakContactMoment      = "zaakcontactmoment"
	remoteObjectInformatieObject = "objectinformatieobject"
)

var errNoRemoteRelation = errors.New("no remote relation found")

// SyncNotifier mirrors relations whose canonical side is local onto the
// remote API that needs to know about them.
type SyncNotifier struct {
	remote  ports.RemoteClient
	pending ports.PendingDeletes
	logger  zerolog.Logger
}

func NewSyncNotifier(remote ports.RemoteClient, pending ports.PendingDeletes, logger zerolog.Logger) *SyncNotifier {
	return &SyncNotifier{remote: remote, pending: pending, logger: logger}
}

// PushZaakContactMoment creates the zaakcontactmoment for a contactmoment in
// the zaken API and returns its URL.
func (n *SyncNotifier) PushZaakContactMoment(ctx context.Context, zaakURL, contactMomentURL string) (string, error) {
	body := map[string]any{"zaak": zaakURL, "contactmoment": contactMomentURL}
	return n.push(ctx, zaakURL, remoteZaakContactMoment, body, domain.CodeSyncWithZRC)
}

// RetractZaakContactMoment deletes the zaakcontactmoment stored on cm. Nothing
// happens when none was stored. Failures are logged and counted; they never
// block the local delete.
func (n *SyncNotifier) RetractZaakContactMoment(ctx context.Context, cm *domain.ContactMoment) {
	if cm.ZaakContactMoment == "" {
		return
	}
	n.report(remoteZaakContactMoment, cm.UUID, n.retract(ctx, remoteZaakContactMoment, cm.ZaakContactMoment))
}

// PushInformatieObject creates the objectinformatieobject for a verzoek in
// the documenten API and returns its URL.
func (n *SyncNotifier) PushInformatieObject(ctx context.Context, verzoekURL, informatieobjectURL string) (string, error) {
	body := map[string]any{
		"object":           verzoekURL,
		"informatieobject": informatieobjectURL,
		"objectType":       "verzoek",
	}
	return n.push(ctx, informatieobjectURL, remoteObjectInformatieObject, body, domain.CodeSyncWithDRC)
}

// RetractInformatieObject deletes the mirrored objectinformatieobject of vio.
// The stored remote URL is used when known; otherwise it is looked up by
// object and informatieobject. Failures are logged and counted.
func (n *SyncNotifier) RetractInformatieObject(ctx context.Context, vio *domain.VerzoekInformatieObject) {
	target := vio.Remote
	if target == "" {
		found, err := n.lookup(ctx, vio.Informatieobject, remoteObjectInformatieObject,
			map[string]string{"object": vio.Verzoek, "informatieobject": vio.Informatieobject})
		if err != nil {
			n.report(remoteObjectInformatieObject, vio.UUID, err)
			return
		}
		target = found
	}
	n.report(remoteObjectInformatieObject, vio.UUID, n.retract(ctx, remoteObjectInformatieObject, target))
}

// WithPendingDelete marks uuid in the kind set, runs fn and always clears the
// mark afterwards. Reads hide marked resources, so fn should cover both the
// remote retraction and the local delete.
func (n *SyncNotifier) WithPendingDelete(ctx context.Context, kind, uuid string, fn func() error) error {
	log := n.logger.With().Str("kind", kind).Str("uuid", uuid).Logger()

	if err := n.pending.Mark(ctx, kind, uuid); err != nil {
		log.Warn().Err(err).Msg("failed to mark pending delete")
	}
	metrics.PendingDeletes.WithLabelValues(kind).Inc()
	defer func() {
		metrics.PendingDeletes.WithLabelValues(kind).Dec()
		if err := n.pending.Clear(context.WithoutCancel(ctx), kind, uuid); err != nil {
			log.Warn().Err(err).Msg("failed to clear pending delete")
		}
	}()

	return fn()
}

func (n *SyncNotifier) push(ctx context.Context, ref, resource string, body map[string]any, code string) (string, error) {
	created, err := n.remote.Create(ctx, ref, resource, body)
	if err != nil {
		metrics.SyncFailuresTotal.WithLabelValues(resource, "create").Inc()
		n.logger.Error().Err(err).Str("resource", resource).Str("ref", ref).Msg("failed to push remote relation")
		return "", domain.NonFieldError(code, err.Error())
	}
	url, _ := created["url"].(string)
	n.logger.Info().Str("resource", resource).Str("remote", url).Msg("remote relation created")
	return url, nil
}

func (n *SyncNotifier) retract(ctx context.Context, resource, url string) error {
	if err := n.remote.Delete(ctx, url); err != nil {
		return fmt.Errorf("delete %s %s: %w", resource, url, err)
	}
	n.logger.Info().Str("resource", resource).Str("remote", url).Msg("remote relation deleted")
	return nil
}

// lookup returns the URL of the first remote relation matching query.
func (n *SyncNotifier) lookup(ctx context.Context, ref, resource string, query map[string]string) (string, error) {
	results, err := n.remote.List(ctx, ref, resource, query)
	if err != nil {
		return "", fmt.Errorf("list %s: %w", resource, err)
	}
	if len(results) == 0 {
		return "", errNoRemoteRelation
	}
	url, _ := results[0]["url"].(string)
	if url == "" {
		return "", errNoRemoteRelation
	}
	return url, nil
}

// report logs and counts a failed retraction.
func (n *SyncNotifier) report(resource, uuid string, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, errNoRemoteRelation) {
		n.logger.Warn().Str("resource", resource).Str("uuid", uuid).Msg("no remote relation to retract")
		return
	}
	metrics.SyncFailuresTotal.WithLabelValues(resource, "delete").Inc()
	n.logger.Error().Err(err).Str("resource", resource).Str("uuid", uuid).Msg("failed to retract remote relation")
}
