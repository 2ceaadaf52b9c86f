package codec

import "github.com/vng-realisatie/klantinteracties/internal/core/domain"

type natuurlijkPersoonPatch struct {
	InpBsn                   *string `json:"inpBsn" validate:"omitempty,max=9"`
	AnpIdentificatie         *string `json:"anpIdentificatie" validate:"omitempty,max=17"`
	InpANummer               *string `json:"inpANummer" validate:"omitempty,max=10"`
	Geslachtsnaam            *string `json:"geslachtsnaam" validate:"omitempty,max=200"`
	VoorvoegselGeslachtsnaam *string `json:"voorvoegselGeslachtsnaam" validate:"omitempty,max=80"`
	Voorletters              *string `json:"voorletters" validate:"omitempty,max=20"`
	Voornamen                *string `json:"voornamen" validate:"omitempty,max=200"`
	Geslachtsaanduiding      *string `json:"geslachtsaanduiding" validate:"omitempty,oneof=m v o"`
	Geboortedatum            *string `json:"geboortedatum" validate:"omitempty,isodate"`

	childrenPatch
}

func (p *natuurlijkPersoonPatch) Apply(target domain.SubjectIdentificatie) error {
	np, ok := target.(*domain.NatuurlijkPersoon)
	if !ok {
		return wrongVariant(domain.SubjectTypeNatuurlijkPersoon, target)
	}
	set(&np.InpBsn, p.InpBsn)
	set(&np.AnpIdentificatie, p.AnpIdentificatie)
	set(&np.InpANummer, p.InpANummer)
	set(&np.Geslachtsnaam, p.Geslachtsnaam)
	set(&np.VoorvoegselGeslachtsnaam, p.VoorvoegselGeslachtsnaam)
	set(&np.Voorletters, p.Voorletters)
	set(&np.Voornamen, p.Voornamen)
	set(&np.Geslachtsaanduiding, p.Geslachtsaanduiding)
	set(&np.Geboortedatum, p.Geboortedatum)
	return p.applyChildren(np.Record())
}

type vestigingPatch struct {
	VestigingsNummer *string   `json:"vestigingsNummer" validate:"omitempty,max=24"`
	Handelsnaam      *[]string `json:"handelsnaam" validate:"omitempty,dive,max=625"`

	childrenPatch
}

func (p *vestigingPatch) Apply(target domain.SubjectIdentificatie) error {
	v, ok := target.(*domain.Vestiging)
	if !ok {
		return wrongVariant(domain.SubjectTypeVestiging, target)
	}
	set(&v.VestigingsNummer, p.VestigingsNummer)
	if p.Handelsnaam != nil {
		v.Handelsnaam = append([]string(nil), (*p.Handelsnaam)...)
	}
	return p.applyChildren(v.Record())
}

// childrenPatch holds the nested children every variant carries.
type childrenPatch struct {
	Verblijfsadres        *adresPatch                 `json:"verblijfsadres"`
	SubVerblijfBuitenland *subVerblijfBuitenlandPatch `json:"subVerblijfBuitenland"`
}

// applyChildren updates existing children in place and creates missing ones.
// A new child must carry its required fields.
func (p childrenPatch) applyChildren(rec *domain.SubjectRecord) error {
	if p.Verblijfsadres != nil {
		if rec.Verblijfsadres == nil {
			if err := p.Verblijfsadres.checkRequired(); err != nil {
				return err
			}
			rec.Verblijfsadres = &domain.Adres{}
		}
		p.Verblijfsadres.apply(rec.Verblijfsadres)
	}
	if p.SubVerblijfBuitenland != nil {
		if rec.SubVerblijfBuitenland == nil {
			if err := p.SubVerblijfBuitenland.checkRequired(); err != nil {
				return err
			}
			rec.SubVerblijfBuitenland = &domain.SubVerblijfBuitenland{}
		}
		p.SubVerblijfBuitenland.apply(rec.SubVerblijfBuitenland)
	}
	return nil
}

type adresPatch struct {
	AoaIdentificatie        *string `json:"aoaIdentificatie" validate:"omitempty,max=16"`
	WplWoonplaatsNaam       *string `json:"wplWoonplaatsNaam" validate:"omitempty,max=80"`
	GorOpenbareRuimteNaam   *string `json:"gorOpenbareRuimteNaam" validate:"omitempty,max=80"`
	AoaPostcode             *string `json:"aoaPostcode" validate:"omitempty,max=7"`
	AoaHuisnummer           *int    `json:"aoaHuisnummer" validate:"omitempty,min=0,max=99999"`
	AoaHuisletter           *string `json:"aoaHuisletter" validate:"omitempty,max=1"`
	AoaHuisnummertoevoeging *string `json:"aoaHuisnummertoevoeging" validate:"omitempty,max=4"`
	InpLocatiebeschrijving  *string `json:"inpLocatiebeschrijving" validate:"omitempty,max=1000"`
}

func (p *adresPatch) checkRequired() error {
	const prefix = GroupField + ".verblijfsadres."
	ve := &domain.ValidationError{}
	if p.AoaIdentificatie == nil {
		ve.Add(prefix+"aoaIdentificatie", domain.CodeRequired, "Dit veld is vereist.")
	}
	if p.WplWoonplaatsNaam == nil {
		ve.Add(prefix+"wplWoonplaatsNaam", domain.CodeRequired, "Dit veld is vereist.")
	}
	if p.GorOpenbareRuimteNaam == nil {
		ve.Add(prefix+"gorOpenbareRuimteNaam", domain.CodeRequired, "Dit veld is vereist.")
	}
	if p.AoaHuisnummer == nil {
		ve.Add(prefix+"aoaHuisnummer", domain.CodeRequired, "Dit veld is vereist.")
	}
	return ve.OrNil()
}

func (p *adresPatch) apply(a *domain.Adres) {
	set(&a.AoaIdentificatie, p.AoaIdentificatie)
	set(&a.WplWoonplaatsNaam, p.WplWoonplaatsNaam)
	set(&a.GorOpenbareRuimteNaam, p.GorOpenbareRuimteNaam)
	set(&a.AoaPostcode, p.AoaPostcode)
	set(&a.AoaHuisnummer, p.AoaHuisnummer)
	set(&a.AoaHuisletter, p.AoaHuisletter)
	set(&a.AoaHuisnummertoevoeging, p.AoaHuisnummertoevoeging)
	set(&a.InpLocatiebeschrijving, p.InpLocatiebeschrijving)
}

type subVerblijfBuitenlandPatch struct {
	LndLandcode         *string `json:"lndLandcode" validate:"omitempty,max=4"`
	LndLandnaam         *string `json:"lndLandnaam" validate:"omitempty,max=40"`
	SubAdresBuitenland1 *string `json:"subAdresBuitenland1" validate:"omitempty,max=35"`
	SubAdresBuitenland2 *string `json:"subAdresBuitenland2" validate:"omitempty,max=35"`
	SubAdresBuitenland3 *string `json:"subAdresBuitenland3" validate:"omitempty,max=35"`
}

func (p *subVerblijfBuitenlandPatch) checkRequired() error {
	const prefix = GroupField + ".subVerblijfBuitenland."
	ve := &domain.ValidationError{}
	if p.LndLandcode == nil {
		ve.Add(prefix+"lndLandcode", domain.CodeRequired, "Dit veld is vereist.")
	}
	if p.LndLandnaam == nil {
		ve.Add(prefix+"lndLandnaam", domain.CodeRequired, "Dit veld is vereist.")
	}
	return ve.OrNil()
}

func (p *subVerblijfBuitenlandPatch) apply(s *domain.SubVerblijfBuitenland) {
	set(&s.LndLandcode, p.LndLandcode)
	set(&s.LndLandnaam, p.LndLandnaam)
	set(&s.SubAdresBuitenland1, p.SubAdresBuitenland1)
	set(&s.SubAdresBuitenland2, p.SubAdresBuitenland2)
	set(&s.SubAdresBuitenland3, p.SubAdresBuitenland3)
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
