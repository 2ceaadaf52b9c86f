package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vng-realisatie/klantinteracties/internal/api/metrics"
	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
	"github.com/vng-realisatie/klantinteracties/internal/core/ports"
)

// RelationValidator checks a local object relation against the API that
// owns the canonical side of it. kind is the local parent resource
// ("contactmoment" or "verzoek"); the remote relation resource is named
// objectType+kind, e.g. "zaakcontactmoment".
type RelationValidator struct {
	remote    ports.RemoteClient
	resources ports.ResourceValidator
	logger    zerolog.Logger
}

func NewRelationValidator(remote ports.RemoteClient, resources ports.ResourceValidator, logger zerolog.Logger) *RelationValidator {
	return &RelationValidator{remote: remote, resources: resources, logger: logger}
}

// ValidateCreate requires objectURL to be a valid remote object and the
// remote API to already hold the relation between objectURL and ownURL.
func (v *RelationValidator) ValidateCreate(ctx context.Context, kind string, objectType domain.ObjectType, objectURL, ownURL string) error {
	if err := v.resources.Validate(ctx, "object", schemaName(objectType), objectURL); err != nil {
		v.record("create", err)
		return err
	}

	results, err := v.remote.List(ctx, objectURL, string(objectType)+kind, relationQuery(kind, objectType, objectURL, ownURL))
	if err != nil {
		v.logger.Warn().Err(err).Str("object", objectURL).Str("kind", kind).Msg("remote relation lookup failed")
		verr := domain.NonFieldError(domain.CodeRelationValidationError, err.Error())
		v.record("create", verr)
		return verr
	}
	if len(results) == 0 {
		verr := domain.NonFieldError(domain.CodeInconsistentRelation,
			fmt.Sprintf("The %s has no relations to %s", kind, objectType))
		v.record("create", verr)
		return verr
	}

	v.record("create", nil)
	return nil
}

// ValidateDelete refuses the deletion while the remote API still holds the
// relation between objectURL and ownURL.
func (v *RelationValidator) ValidateDelete(ctx context.Context, kind string, objectType domain.ObjectType, objectURL, ownURL string) error {
	results, err := v.remote.List(ctx, objectURL, string(objectType)+kind, relationQuery(kind, objectType, objectURL, ownURL))
	if err != nil {
		v.logger.Warn().Err(err).Str("object", objectURL).Str("kind", kind).Msg("remote relation lookup failed")
		verr := domain.NonFieldError(domain.CodeRelationLookupError, err.Error())
		v.record("delete", verr)
		return verr
	}
	if len(results) > 0 {
		verr := domain.NonFieldError(domain.CodeRemoteRelationExists,
			"The canonical remote relation still exists, this relation cannot be deleted.")
		v.record("delete", verr)
		return verr
	}

	v.record("delete", nil)
	return nil
}

func (v *RelationValidator) record(phase string, err error) {
	result := "ok"
	if err != nil {
		result = errorCode(err)
	}
	metrics.RelationValidationsTotal.WithLabelValues(phase, result).Inc()
}

func relationQuery(kind string, objectType domain.ObjectType, objectURL, ownURL string) map[string]string {
	return map[string]string{string(objectType): objectURL, kind: ownURL}
}

// schemaName is the remote schema component for an object type, e.g. "Zaak".
func schemaName(t domain.ObjectType) string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
