package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
	"github.com/vng-realisatie/klantinteracties/internal/core/ports"
)

const natuurlijkPersoonPayload = `{
	"inpBsn": "123456782",
	"geslachtsnaam": "Jackson2",
	"voornamen": "Jesse",
	"geslachtsaanduiding": "m",
	"geboortedatum": "1962-06-28",
	"verblijfsadres": {
		"aoaIdentificatie": "1234",
		"wplWoonplaatsNaam": "East Meaganchester",
		"gorOpenbareRuimteNaam": "New Amsterdam",
		"aoaHuisnummer": 21
	},
	"subVerblijfBuitenland": {
		"lndLandcode": "ABCD",
		"lndLandnaam": "Hollywood"
	}
}`

func natuurlijkPersoonInput() ports.KlantInput {
	return ports.KlantInput{
		Bronorganisatie:      ptr("123456782"),
		Voornaam:             ptr(gofakeit.FirstName()),
		Achternaam:           ptr(gofakeit.LastName()),
		Emailadres:           ptr(gofakeit.Email()),
		Subject:              ptr(""),
		SubjectType:          ptr(string(domain.SubjectTypeNatuurlijkPersoon)),
		SubjectIdentificatie: json.RawMessage(natuurlijkPersoonPayload),
	}
}

func TestKlantService_Create_WithNatuurlijkPersoon(t *testing.T) {
	f := newFixture(t)

	detail, err := f.klantSvc.Create(context.Background(), natuurlijkPersoonInput())
	require.NoError(t, err)
	require.NotNil(t, detail.SubjectIdentificatie)

	np, ok := detail.SubjectIdentificatie.(*domain.NatuurlijkPersoon)
	require.True(t, ok)
	assert.Equal(t, "Jackson2", np.Geslachtsnaam)
	assert.Equal(t, detail.Klant.ID, np.KlantID)

	stored, err := f.subjects.FindByKlant(context.Background(), detail.Klant.ID, domain.SubjectTypeNatuurlijkPersoon)
	require.NoError(t, err)
	rec := stored.Record()
	require.NotNil(t, rec.Verblijfsadres)
	require.NotNil(t, rec.SubVerblijfBuitenland)
	assert.Equal(t, rec.ID, rec.Verblijfsadres.NatuurlijkPersoonID)
	assert.Empty(t, rec.Verblijfsadres.VestigingID)
	assert.Equal(t, "Hollywood", rec.SubVerblijfBuitenland.LndLandnaam)
	assert.Equal(t, 1, f.tx.calls)
}

func TestKlantService_Create_RequiresExactlyOneSubject(t *testing.T) {
	f := newFixture(t)

	neither := ports.KlantInput{Bronorganisatie: ptr("123456782")}
	_, err := f.klantSvc.Create(context.Background(), neither)
	assert.True(t, domain.HasCode(err, domain.CodeInvalidSubject), "got %v", err)

	both := natuurlijkPersoonInput()
	both.Subject = ptr("https://brp.example.com/api/v1/ingeschrevenpersonen/123")
	_, err = f.klantSvc.Create(context.Background(), both)
	assert.True(t, domain.HasCode(err, domain.CodeInvalidSubject), "got %v", err)

	assert.Empty(t, f.klanten.rows)
}

func TestKlantService_Update_SubjectURLBesideStoredVariant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	detail, err := f.klantSvc.Create(ctx, natuurlijkPersoonInput())
	require.NoError(t, err)

	_, err = f.klantSvc.Update(ctx, detail.Klant.UUID, ports.KlantInput{
		Subject: ptr("https://brp.example.com/api/v1/ingeschrevenpersonen/123"),
	})
	assert.True(t, domain.HasCode(err, domain.CodeInvalidSubject), "got %v", err)

	stored, err := f.klanten.FindByUUID(ctx, detail.Klant.UUID)
	require.NoError(t, err)
	assert.Empty(t, stored.Subject)
	assert.Equal(t, 1, f.subjects.count())
}

func TestKlantService_Create_SubjectURLOnly(t *testing.T) {
	f := newFixture(t)

	detail, err := f.klantSvc.Create(context.Background(), ports.KlantInput{
		Bronorganisatie: ptr("123456782"),
		Subject:         ptr("https://brp.example.com/api/v1/ingeschrevenpersonen/123"),
	})
	require.NoError(t, err)
	assert.Nil(t, detail.SubjectIdentificatie)
	assert.Empty(t, detail.Klant.SubjectType)
	assert.Zero(t, f.subjects.count())
}

func TestKlantService_Create_DiscriminatorErrors(t *testing.T) {
	f := newFixture(t)

	unknown := natuurlijkPersoonInput()
	unknown.SubjectType = ptr("medewerker")
	_, err := f.klantSvc.Create(context.Background(), unknown)
	assert.True(t, domain.HasCode(err, domain.CodeInvalidChoice), "got %v", err)

	untyped := natuurlijkPersoonInput()
	untyped.SubjectType = nil
	_, err = f.klantSvc.Create(context.Background(), untyped)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "subjectType", ve.Errors[0].Field)
	assert.Equal(t, domain.CodeRequired, ve.Errors[0].Code)
}

func TestKlantService_Create_NestedFieldError(t *testing.T) {
	f := newFixture(t)

	in := natuurlijkPersoonInput()
	in.SubjectIdentificatie = json.RawMessage(`{"geslachtsaanduiding": "x"}`)
	_, err := f.klantSvc.Create(context.Background(), in)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "subjectIdentificatie.geslachtsaanduiding", ve.Errors[0].Field)
	assert.Empty(t, f.klanten.rows)
}

func TestKlantService_Create_RollsBackOnSubjectFailure(t *testing.T) {
	f := newFixture(t)
	f.subjects.saveErr = errors.New("disk full")

	_, err := f.klantSvc.Create(context.Background(), natuurlijkPersoonInput())
	require.Error(t, err)

	assert.Empty(t, f.klanten.rows, "klant row must not survive a failed subject write")
	assert.Zero(t, f.subjects.count())
}

func TestKlantService_Update_SubjectTypeImmutable(t *testing.T) {
	f := newFixture(t)
	created, err := f.klantSvc.Create(context.Background(), natuurlijkPersoonInput())
	require.NoError(t, err)

	_, err = f.klantSvc.Update(context.Background(), created.Klant.UUID, ports.KlantInput{
		SubjectType:          ptr(string(domain.SubjectTypeVestiging)),
		SubjectIdentificatie: json.RawMessage(`{"vestigingsNummer": "123"}`),
	})

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "subjectType", ve.Errors[0].Field)
	assert.Equal(t, domain.CodeImmutable, ve.Errors[0].Code)
}

func TestKlantService_Update_PatchesNestedInPlace(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.klantSvc.Create(ctx, natuurlijkPersoonInput())
	require.NoError(t, err)
	before, err := f.subjects.FindByKlant(ctx, created.Klant.ID, domain.SubjectTypeNatuurlijkPersoon)
	require.NoError(t, err)

	updated, err := f.klantSvc.Update(ctx, created.Klant.UUID, ports.KlantInput{
		SubjectIdentificatie: json.RawMessage(`{
			"geslachtsnaam": "Jackson3",
			"verblijfsadres": {"wplWoonplaatsNaam": "Lake Sarah"}
		}`),
	})
	require.NoError(t, err)

	after, err := f.subjects.FindByKlant(ctx, created.Klant.ID, domain.SubjectTypeNatuurlijkPersoon)
	require.NoError(t, err)
	assert.Equal(t, before.Record().ID, after.Record().ID)
	assert.Equal(t, before.Record().Verblijfsadres.ID, after.Record().Verblijfsadres.ID)
	assert.Equal(t, "Lake Sarah", after.Record().Verblijfsadres.WplWoonplaatsNaam)
	assert.Equal(t, "1234", after.Record().Verblijfsadres.AoaIdentificatie)
	assert.Equal(t, "Jackson3", after.(*domain.NatuurlijkPersoon).Geslachtsnaam)
	assert.Equal(t, "Jesse", after.(*domain.NatuurlijkPersoon).Voornamen)
	assert.Equal(t, domain.SubjectTypeNatuurlijkPersoon, updated.Klant.SubjectType)
	assert.Equal(t, 1, f.subjects.count())
}

func TestKlantService_Update_SetsFirstSubjectType(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.klantSvc.Create(ctx, ports.KlantInput{
		Bronorganisatie: ptr("123456782"),
		Subject:         ptr("https://kvk.example.com/api/v1/vestigingen/1"),
	})
	require.NoError(t, err)

	updated, err := f.klantSvc.Update(ctx, created.Klant.UUID, ports.KlantInput{
		Subject:              ptr(""),
		SubjectType:          ptr(string(domain.SubjectTypeVestiging)),
		SubjectIdentificatie: json.RawMessage(`{"vestigingsNummer": "123", "handelsnaam": ["WB"]}`),
	})
	require.NoError(t, err)

	v, ok := updated.SubjectIdentificatie.(*domain.Vestiging)
	require.True(t, ok)
	assert.Equal(t, []string{"WB"}, v.Handelsnaam)
	assert.Equal(t, domain.SubjectTypeVestiging, updated.Klant.SubjectType)
	assert.Empty(t, updated.Klant.Subject)
}

func TestKlantService_Update_RollsBackOnFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.klantSvc.Create(ctx, natuurlijkPersoonInput())
	require.NoError(t, err)
	f.subjects.saveErr = errors.New("write conflict")

	_, err = f.klantSvc.Update(ctx, created.Klant.UUID, ports.KlantInput{
		Voornaam:             ptr("Changed"),
		SubjectIdentificatie: json.RawMessage(`{"geslachtsnaam": "Other"}`),
	})
	require.Error(t, err)

	got, err := f.klantSvc.Get(ctx, created.Klant.UUID)
	require.NoError(t, err)
	assert.Equal(t, *natuurlijkPersoonInput().Bronorganisatie, got.Klant.Bronorganisatie)
	assert.NotEqual(t, "Changed", got.Klant.Voornaam)
	assert.Equal(t, "Jackson2", got.SubjectIdentificatie.(*domain.NatuurlijkPersoon).Geslachtsnaam)
}

func TestKlantService_Delete_RemovesSubject(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.klantSvc.Create(ctx, natuurlijkPersoonInput())
	require.NoError(t, err)

	require.NoError(t, f.klantSvc.Delete(ctx, created.Klant.UUID))

	_, err = f.klantSvc.Get(ctx, created.Klant.UUID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, f.subjects.count())
	assert.ErrorIs(t, f.klantSvc.Delete(ctx, created.Klant.UUID), domain.ErrNotFound)
}

func TestKlantService_List_ResolvesSubjects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.klantSvc.Create(ctx, natuurlijkPersoonInput())
	require.NoError(t, err)
	_, err = f.klantSvc.Create(ctx, ports.KlantInput{
		Bronorganisatie: ptr("123456782"),
		Subject:         ptr(gofakeit.URL()),
	})
	require.NoError(t, err)

	list, err := f.klantSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	var withSubject int
	for _, d := range list {
		if d.SubjectIdentificatie != nil {
			withSubject++
		}
	}
	assert.Equal(t, 1, withSubject)
}
