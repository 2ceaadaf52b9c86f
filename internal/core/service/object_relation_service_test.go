package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
	"github.com/vng-realisatie/klantinteracties/internal/core/ports"
	"github.com/vng-realisatie/klantinteracties/internal/pkg/resourceurl"
)

func TestObjectRelationService_CreateObjectContactMoment_Consistent(t *testing.T) {
	f := newFixture(t)
	cm := f.createContactMoment(t, "")
	cmURL := f.urls.URL(resourceurl.ContactMomenten, cm.UUID)
	f.remote.results["zaakcontactmoment"] = []ports.Object{{"url": "http://zaken.test/zcm/1"}}

	r, err := f.relationSvc.CreateObjectContactMoment(context.Background(), ports.ObjectRelationInput{
		Parent: cmURL, Object: testZaak, ObjectType: "zaak",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ObjectTypeZaak, r.ObjectType)

	assert.Equal(t, []string{"Zaak " + testZaak}, f.resources.checked)
	require.Len(t, f.remote.listed, 1)
	assert.Equal(t, "zaakcontactmoment", f.remote.listed[0].Resource)
	assert.Equal(t, map[string]string{"zaak": testZaak, "contactmoment": cmURL}, f.remote.listed[0].Query)
}

func TestObjectRelationService_CreateObjectContactMoment_ValidationCodes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cm := f.createContactMoment(t, "")
	cmURL := f.urls.URL(resourceurl.ContactMomenten, cm.UUID)

	tests := []struct {
		name  string
		setup func()
		input ports.ObjectRelationInput
		field string
		code  string
	}{
		{
			name:  "unknown object type",
			input: ports.ObjectRelationInput{Parent: cmURL, Object: testZaak, ObjectType: "besluit"},
			field: "objectType",
			code:  domain.CodeInvalidChoice,
		},
		{
			name:  "parent missing",
			input: ports.ObjectRelationInput{Parent: f.urls.URL(resourceurl.ContactMomenten, resourceurl.NewUUID()), Object: testZaak, ObjectType: "zaak"},
			field: "contactmoment",
			code:  domain.CodeDoesNotExist,
		},
		{
			name:  "object not a zaak",
			setup: func() { f.resources.invalid[testZaak] = domain.CodeInvalidResource },
			input: ports.ObjectRelationInput{Parent: cmURL, Object: testZaak, ObjectType: "zaak"},
			field: "object",
			code:  domain.CodeInvalidResource,
		},
		{
			name:  "no remote relation",
			input: ports.ObjectRelationInput{Parent: cmURL, Object: testZaak, ObjectType: "zaak"},
			field: domain.NonFieldErrors,
			code:  domain.CodeInconsistentRelation,
		},
		{
			name:  "remote lookup fails",
			setup: func() { f.remote.listErr = errors.New("timeout") },
			input: ports.ObjectRelationInput{Parent: cmURL, Object: testZaak, ObjectType: "zaak"},
			field: domain.NonFieldErrors,
			code:  domain.CodeRelationValidationError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f.resources.invalid = map[string]string{}
			f.remote.listErr = nil
			if tc.setup != nil {
				tc.setup()
			}

			_, err := f.relationSvc.CreateObjectContactMoment(ctx, tc.input)

			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Errors[0].Field)
			assert.Equal(t, tc.code, ve.Errors[0].Code)
			assert.Empty(t, f.objectContactMomenten.rows)
		})
	}
}

func TestObjectRelationService_CreateObjectVerzoek_Unique(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, url := f.createVerzoek(t)
	f.remote.results["zaakverzoek"] = []ports.Object{{"url": "http://zaken.test/zv/1"}}
	in := ports.ObjectRelationInput{Parent: url, Object: testZaak, ObjectType: "zaak"}

	_, err := f.relationSvc.CreateObjectVerzoek(ctx, in)
	require.NoError(t, err)
	_, err = f.relationSvc.CreateObjectVerzoek(ctx, in)
	assert.True(t, domain.HasCode(err, domain.CodeUnique), "got %v", err)

	list, err := f.relationSvc.ListObjectVerzoeken(ctx, ports.ObjectVerzoekFilter{Verzoek: url})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestObjectRelationService_Delete_RemoteRelationExists(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, url := f.createVerzoek(t)
	f.remote.results["zaakverzoek"] = []ports.Object{{"url": "http://zaken.test/zv/1"}}
	r, err := f.relationSvc.CreateObjectVerzoek(ctx, ports.ObjectRelationInput{Parent: url, Object: testZaak, ObjectType: "zaak"})
	require.NoError(t, err)

	err = f.relationSvc.DeleteObjectVerzoek(ctx, r.UUID)
	assert.True(t, domain.HasCode(err, domain.CodeRemoteRelationExists), "got %v", err)
	_, err = f.relationSvc.GetObjectVerzoek(ctx, r.UUID)
	require.NoError(t, err)

	f.remote.results["zaakverzoek"] = nil
	require.NoError(t, f.relationSvc.DeleteObjectVerzoek(ctx, r.UUID))
	_, err = f.relationSvc.GetObjectVerzoek(ctx, r.UUID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestObjectRelationService_Delete_LookupError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cm := f.createContactMoment(t, "")
	f.remote.results["zaakcontactmoment"] = []ports.Object{{"url": "http://zaken.test/zcm/1"}}
	r, err := f.relationSvc.CreateObjectContactMoment(ctx, ports.ObjectRelationInput{
		Parent: f.urls.URL(resourceurl.ContactMomenten, cm.UUID), Object: testZaak, ObjectType: "zaak",
	})
	require.NoError(t, err)
	f.remote.listErr = errors.New("connection refused")

	err = f.relationSvc.DeleteObjectContactMoment(ctx, r.UUID)
	assert.True(t, domain.HasCode(err, domain.CodeRelationLookupError), "got %v", err)
	assert.Len(t, f.objectContactMomenten.rows, 1)
}

func TestObjectRelationService_ParentWithTrailingSlash(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cm := f.createContactMoment(t, "")
	cmURL := f.urls.URL(resourceurl.ContactMomenten, cm.UUID)
	f.remote.results["zaakcontactmoment"] = []ports.Object{{"url": "http://zaken.test/zcm/1"}}

	r, err := f.relationSvc.CreateObjectContactMoment(ctx, ports.ObjectRelationInput{
		Parent: cmURL + "/", Object: testZaak, ObjectType: "zaak",
	})
	require.NoError(t, err)
	assert.Equal(t, cmURL, r.ContactMoment)
	require.Len(t, f.remote.listed, 1)
	assert.Equal(t, cmURL, f.remote.listed[0].Query["contactmoment"])

	_, err = f.relationSvc.CreateObjectContactMoment(ctx, ports.ObjectRelationInput{
		Parent: cmURL, Object: testZaak, ObjectType: "zaak",
	})
	assert.True(t, domain.HasCode(err, domain.CodeUnique), "got %v", err)
	assert.Len(t, f.objectContactMomenten.rows, 1)

	require.NoError(t, f.cmSvc.Delete(ctx, cm.UUID))
	assert.Empty(t, f.objectContactMomenten.rows)
}

func TestObjectRelationService_VerzoekWithTrailingSlash(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	v, url := f.createVerzoek(t)
	f.remote.results["zaakverzoek"] = []ports.Object{{"url": "http://zaken.test/zv/1"}}

	r, err := f.relationSvc.CreateObjectVerzoek(ctx, ports.ObjectRelationInput{
		Parent: url + "/", Object: testZaak, ObjectType: "zaak",
	})
	require.NoError(t, err)
	assert.Equal(t, url, r.Verzoek)
	require.Len(t, f.remote.listed, 1)
	assert.Equal(t, url, f.remote.listed[0].Query["verzoek"])

	_, err = f.relationSvc.CreateObjectVerzoek(ctx, ports.ObjectRelationInput{Parent: url, Object: testZaak, ObjectType: "zaak"})
	assert.True(t, domain.HasCode(err, domain.CodeUnique), "got %v", err)

	require.NoError(t, f.verzoekSvc.Delete(ctx, v.UUID))
	assert.Empty(t, f.objectVerzoeken.rows)
}
