package domain

import "time"

// Initiatiefnemer values: who started the interaction.
const (
	InitiatiefnemerGemeente = "gemeente"
	InitiatiefnemerKlant    = "klant"
)

// ContactMoment records a single interaction between a customer and the organisation.
type ContactMoment struct {
	ID              string    `bson:"_id,omitempty"`
	UUID            string    `bson:"uuid"`
	Bronorganisatie string    `bson:"bronorganisatie"`
	Klant           string    `bson:"klant"`
	Interactiedatum time.Time `bson:"interactiedatum"`
	Kanaal          string    `bson:"kanaal"`
	Voorkeurskanaal string    `bson:"voorkeurskanaal"`
	Voorkeurstaal   string    `bson:"voorkeurstaal"`
	Tekst           string    `bson:"tekst"`
	OnderwerpLinks  []string  `bson:"onderwerp_links"`
	Initiatiefnemer string    `bson:"initiatiefnemer"`
	Medewerker      string    `bson:"medewerker"`
	// Zaak is the legacy single zaak reference mirrored to the zaken API.
	Zaak string `bson:"zaak"`
	// ZaakContactMoment is the remote relation created for Zaak. Never exposed.
	ZaakContactMoment string    `bson:"zaak_contactmoment"`
	CreatedAt         time.Time `bson:"created_at"`

	// MedewerkerIdentificatie is loaded from its own collection.
	MedewerkerIdentificatie *Medewerker `bson:"-"`
}

// Medewerker identifies the employee who handled a ContactMoment when no
// medewerker URL is available. One per ContactMoment.
type Medewerker struct {
	ID              string `json:"-" bson:"_id,omitempty"`
	ContactMomentID string `json:"-" bson:"contactmoment_id"`

	Identificatie         string `json:"identificatie" bson:"identificatie"`
	Achternaam            string `json:"achternaam" bson:"achternaam"`
	Voorletters           string `json:"voorletters" bson:"voorletters"`
	VoorvoegselAchternaam string `json:"voorvoegselAchternaam" bson:"voorvoegsel_achternaam"`
}
