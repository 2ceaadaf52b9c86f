package domain

import (
	"errors"
	"time"
)

// SubjectType discriminates the locally stored subject of a Klant.
type SubjectType string

const (
	SubjectTypeNatuurlijkPersoon SubjectType = "natuurlijk_persoon"
	SubjectTypeVestiging         SubjectType = "vestiging"
)

// SubjectTypes lists the accepted discriminator values in a stable order.
var SubjectTypes = []SubjectType{SubjectTypeNatuurlijkPersoon, SubjectTypeVestiging}

// Valid reports whether t is one of the known subject types.
func (t SubjectType) Valid() bool {
	for _, known := range SubjectTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Klant is a customer, optionally backed by a verified subject.
type Klant struct {
	ID              string      `bson:"_id,omitempty"`
	UUID            string      `bson:"uuid"`
	Bronorganisatie string      `bson:"bronorganisatie"`
	Voornaam        string      `bson:"voornaam"`
	Achternaam      string      `bson:"achternaam"`
	Adres           string      `bson:"adres"`
	Functie         string      `bson:"functie"`
	Telefoonnummer  string      `bson:"telefoonnummer"`
	Emailadres      string      `bson:"emailadres"`
	Subject         string      `bson:"subject"`
	SubjectType     SubjectType `bson:"subject_type,omitempty"`
	CreatedAt       time.Time   `bson:"created_at"`
}

// Geslachtsaanduiding values for a NatuurlijkPersoon.
const (
	GeslachtMan      = "m"
	GeslachtVrouw    = "v"
	GeslachtOnbekend = "o"
)

// SubjectIdentificatie is the sum type of locally stored subject variants.
// Implemented by *NatuurlijkPersoon and *Vestiging only.
type SubjectIdentificatie interface {
	SubjectType() SubjectType
	Record() *SubjectRecord
}

// SubjectRecord carries the storage keys and nested children shared by
// every subject variant.
type SubjectRecord struct {
	ID                    string                 `json:"-" bson:"_id,omitempty"`
	KlantID               string                 `json:"-" bson:"klant_id"`
	Verblijfsadres        *Adres                 `json:"verblijfsadres" bson:"-"`
	SubVerblijfBuitenland *SubVerblijfBuitenland `json:"subVerblijfBuitenland" bson:"-"`
}

type NatuurlijkPersoon struct {
	InpBsn                   string `json:"inpBsn" bson:"inp_bsn"`
	AnpIdentificatie         string `json:"anpIdentificatie" bson:"anp_identificatie"`
	InpANummer               string `json:"inpANummer" bson:"inp_a_nummer"`
	Geslachtsnaam            string `json:"geslachtsnaam" bson:"geslachtsnaam"`
	VoorvoegselGeslachtsnaam string `json:"voorvoegselGeslachtsnaam" bson:"voorvoegsel_geslachtsnaam"`
	Voorletters              string `json:"voorletters" bson:"voorletters"`
	Voornamen                string `json:"voornamen" bson:"voornamen"`
	Geslachtsaanduiding      string `json:"geslachtsaanduiding" bson:"geslachtsaanduiding"`
	Geboortedatum            string `json:"geboortedatum" bson:"geboortedatum"`

	SubjectRecord `bson:",inline"`
}

func (*NatuurlijkPersoon) SubjectType() SubjectType { return SubjectTypeNatuurlijkPersoon }
func (n *NatuurlijkPersoon) Record() *SubjectRecord { return &n.SubjectRecord }

type Vestiging struct {
	VestigingsNummer string   `json:"vestigingsNummer" bson:"vestigings_nummer"`
	Handelsnaam      []string `json:"handelsnaam" bson:"handelsnaam"`

	SubjectRecord `bson:",inline"`
}

func (*Vestiging) SubjectType() SubjectType { return SubjectTypeVestiging }
func (v *Vestiging) Record() *SubjectRecord { return &v.SubjectRecord }

var ErrInvalidOwner = errors.New("child record must belong to exactly one subject")

// Owner points a child record at its parent subject. Exactly one of the
// two keys is set.
type Owner struct {
	NatuurlijkPersoonID string `json:"-" bson:"natuurlijk_persoon_id,omitempty"`
	VestigingID         string `json:"-" bson:"vestiging_id,omitempty"`
}

// Validate enforces the natural person XOR establishment invariant.
func (o Owner) Validate() error {
	if (o.NatuurlijkPersoonID == "") == (o.VestigingID == "") {
		return ErrInvalidOwner
	}
	return nil
}

// OwnerOf returns the Owner key for a persisted subject record.
func OwnerOf(s SubjectIdentificatie) Owner {
	switch s.SubjectType() {
	case SubjectTypeNatuurlijkPersoon:
		return Owner{NatuurlijkPersoonID: s.Record().ID}
	case SubjectTypeVestiging:
		return Owner{VestigingID: s.Record().ID}
	}
	return Owner{}
}

// Adres is the verblijfsadres of a subject.
type Adres struct {
	ID    string `json:"-" bson:"_id,omitempty"`
	Owner `bson:",inline"`

	AoaIdentificatie        string `json:"aoaIdentificatie" bson:"aoa_identificatie"`
	WplWoonplaatsNaam       string `json:"wplWoonplaatsNaam" bson:"wpl_woonplaats_naam"`
	GorOpenbareRuimteNaam   string `json:"gorOpenbareRuimteNaam" bson:"gor_openbare_ruimte_naam"`
	AoaPostcode             string `json:"aoaPostcode" bson:"aoa_postcode"`
	AoaHuisnummer           int    `json:"aoaHuisnummer" bson:"aoa_huisnummer"`
	AoaHuisletter           string `json:"aoaHuisletter" bson:"aoa_huisletter"`
	AoaHuisnummertoevoeging string `json:"aoaHuisnummertoevoeging" bson:"aoa_huisnummertoevoeging"`
	InpLocatiebeschrijving  string `json:"inpLocatiebeschrijving" bson:"inp_locatiebeschrijving"`
}

// SubVerblijfBuitenland is a foreign residence of a subject.
type SubVerblijfBuitenland struct {
	ID    string `json:"-" bson:"_id,omitempty"`
	Owner `bson:",inline"`

	LndLandcode         string `json:"lndLandcode" bson:"lnd_landcode"`
	LndLandnaam         string `json:"lndLandnaam" bson:"lnd_landnaam"`
	SubAdresBuitenland1 string `json:"subAdresBuitenland1" bson:"sub_adres_buitenland_1"`
	SubAdresBuitenland2 string `json:"subAdresBuitenland2" bson:"sub_adres_buitenland_2"`
	SubAdresBuitenland3 string `json:"subAdresBuitenland3" bson:"sub_adres_buitenland_3"`
}
