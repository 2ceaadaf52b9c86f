package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
	"github.com/vng-realisatie/klantinteracties/internal/core/ports"
	"github.com/vng-realisatie/klantinteracties/internal/pkg/resourceurl"
)

func (f *fixture) createVerzoek(t *testing.T) (*domain.Verzoek, string) {
	t.Helper()
	v, err := f.verzoekSvc.Create(context.Background(), ports.VerzoekInput{
		Bronorganisatie: ptr("123456782"),
		Tekst:           ptr(gofakeit.Sentence(6)),
	})
	require.NoError(t, err)
	return v, f.urls.URL(resourceurl.Verzoeken, v.UUID)
}

func TestVerzoekService_Create_Defaults(t *testing.T) {
	f := newFixture(t)
	fixed := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	f.verzoekSvc.now = func() time.Time { return fixed }

	v, err := f.verzoekSvc.Create(context.Background(), ports.VerzoekInput{Bronorganisatie: ptr("123456782")})
	require.NoError(t, err)

	assert.Equal(t, domain.VerzoekOntvangen, v.Status)
	assert.Equal(t, fixed, v.Interactiedatum)
	assert.Equal(t, "VERZOEK-2026-0000000001", v.Identificatie)
}

func TestVerzoekService_Create_GeneratedIdentificatieSkipsTaken(t *testing.T) {
	f := newFixture(t)
	year := time.Now().UTC().Year()
	ctx := context.Background()

	_, err := f.verzoekSvc.Create(ctx, ports.VerzoekInput{
		Bronorganisatie: ptr("123456782"),
		Identificatie:   ptr(fmt.Sprintf("VERZOEK-%d-0000000001", year)),
	})
	require.NoError(t, err)

	v, err := f.verzoekSvc.Create(ctx, ports.VerzoekInput{Bronorganisatie: ptr("123456782")})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("VERZOEK-%d-0000000002", year), v.Identificatie)
}

func TestVerzoekService_Create_DuplicateIdentificatie(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	in := ports.VerzoekInput{Bronorganisatie: ptr("123456782"), Identificatie: ptr("12345")}

	_, err := f.verzoekSvc.Create(ctx, in)
	require.NoError(t, err)
	_, err = f.verzoekSvc.Create(ctx, in)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "identificatie", ve.Errors[0].Field)
	assert.Equal(t, domain.CodeIdentificatieNotUnique, ve.Errors[0].Code)

	other := ports.VerzoekInput{Bronorganisatie: ptr("111222333"), Identificatie: ptr("12345")}
	_, err = f.verzoekSvc.Create(ctx, other)
	assert.NoError(t, err, "identificatie is unique per bronorganisatie")
}

func TestVerzoekService_Update_IdentificatieImmutable(t *testing.T) {
	f := newFixture(t)
	v, _ := f.createVerzoek(t)

	_, err := f.verzoekSvc.Update(context.Background(), v.UUID, ports.VerzoekInput{Identificatie: ptr("other")})
	assert.True(t, domain.HasCode(err, domain.CodeImmutable), "got %v", err)

	updated, err := f.verzoekSvc.Update(context.Background(), v.UUID, ports.VerzoekInput{
		Identificatie: ptr(v.Identificatie),
		Status:        ptr(string(domain.VerzoekAfgehandeld)),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.VerzoekAfgehandeld, updated.Status)
}

func TestVerzoekService_KlantStoredCanonical(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	klant := f.createKlant(t)

	v, err := f.verzoekSvc.Create(ctx, ports.VerzoekInput{Bronorganisatie: ptr("123456782"), Klant: ptr(klant + "/")})
	require.NoError(t, err)
	assert.Equal(t, klant, v.Klant)

	v, err = f.verzoekSvc.Update(ctx, v.UUID, ports.VerzoekInput{Klant: ptr(klant + "/")})
	require.NoError(t, err)
	assert.Equal(t, klant, v.Klant)
}

func TestVerzoekService_Delete_CascadesLocalRelations(t *testing.T) {
	f := newFixture(t)
	v, url := f.createVerzoek(t)
	other, otherURL := f.createVerzoek(t)

	f.objectVerzoeken.rows["ov-1"] = &domain.ObjectVerzoek{UUID: "ov-1", Verzoek: url}
	f.informatieObjecten.rows["vio-1"] = &domain.VerzoekInformatieObject{UUID: "vio-1", Verzoek: url, Remote: "http://drc.test/oio/1"}
	f.producten.rows["vp-1"] = &domain.VerzoekProduct{UUID: "vp-1", Verzoek: url}
	f.verzoekContactMomenten.rows["vcm-1"] = &domain.VerzoekContactMoment{UUID: "vcm-1", Verzoek: url}
	f.producten.rows["vp-2"] = &domain.VerzoekProduct{UUID: "vp-2", Verzoek: otherURL}

	require.NoError(t, f.verzoekSvc.Delete(context.Background(), v.UUID))

	assert.Empty(t, f.objectVerzoeken.rows)
	assert.Empty(t, f.informatieObjecten.rows)
	assert.Empty(t, f.verzoekContactMomenten.rows)
	assert.Len(t, f.producten.rows, 1)
	assert.Empty(t, f.remote.deleted, "cascade does not retract mirrors")

	_, err := f.verzoekSvc.Get(context.Background(), other.UUID)
	assert.NoError(t, err)
}
