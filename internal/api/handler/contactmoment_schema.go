package handler

import (
	"time"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
	"github.com/vng-realisatie/klantinteracties/internal/core/ports"
	"github.com/vng-realisatie/klantinteracties/internal/pkg/resourceurl"
)

type medewerkerRequest struct {
	Identificatie         *string `json:"identificatie"         validate:"omitempty,max=24"`
	Achternaam            *string `json:"achternaam"            validate:"omitempty,max=200"`
	Voorletters           *string `json:"voorletters"           validate:"omitempty,max=20"`
	VoorvoegselAchternaam *string `json:"voorvoegselAchternaam" validate:"omitempty,max=10"`
}

type contactMomentRequest struct {
	Bronorganisatie         *string            `json:"bronorganisatie"         validate:"required,rsin"`
	Klant                   *string            `json:"klant"                   validate:"omitempty,url,max=1000"`
	Interactiedatum         *time.Time         `json:"interactiedatum"`
	Kanaal                  *string            `json:"kanaal"                  validate:"omitempty,max=50"`
	Voorkeurskanaal         *string            `json:"voorkeurskanaal"         validate:"omitempty,max=50"`
	Voorkeurstaal           *string            `json:"voorkeurstaal"           validate:"omitempty,max=3"`
	Tekst                   *string            `json:"tekst"`
	OnderwerpLinks          *[]string          `json:"onderwerpLinks"          validate:"omitempty,dive,url,max=1000"`
	Initiatiefnemer         *string            `json:"initiatiefnemer"         validate:"omitempty,oneof=gemeente klant"`
	Medewerker              *string            `json:"medewerker"              validate:"omitempty,url,max=1000"`
	MedewerkerIdentificatie *medewerkerRequest `json:"medewerkerIdentificatie"`
	Zaak                    *string            `json:"zaak"                    validate:"omitempty,url,max=1000"`
}

type contactMomentResponse struct {
	URL                     string             `json:"url"`
	Bronorganisatie         string             `json:"bronorganisatie"`
	Klant                   string             `json:"klant"`
	Interactiedatum         time.Time          `json:"interactiedatum"`
	Kanaal                  string             `json:"kanaal"`
	Voorkeurskanaal         string             `json:"voorkeurskanaal"`
	Voorkeurstaal           string             `json:"voorkeurstaal"`
	Tekst                   string             `json:"tekst"`
	OnderwerpLinks          []string           `json:"onderwerpLinks"`
	Initiatiefnemer         string             `json:"initiatiefnemer"`
	Medewerker              string             `json:"medewerker"`
	MedewerkerIdentificatie *domain.Medewerker `json:"medewerkerIdentificatie"`
	Zaak                    string             `json:"zaak"`
}

func toContactMomentInput(req contactMomentRequest) ports.ContactMomentInput {
	in := ports.ContactMomentInput{
		Bronorganisatie: req.Bronorganisatie,
		Klant:           req.Klant,
		Interactiedatum: req.Interactiedatum,
		Kanaal:          req.Kanaal,
		Voorkeurskanaal: req.Voorkeurskanaal,
		Voorkeurstaal:   req.Voorkeurstaal,
		Tekst:           req.Tekst,
		OnderwerpLinks:  req.OnderwerpLinks,
		Initiatiefnemer: req.Initiatiefnemer,
		Medewerker:      req.Medewerker,
		Zaak:            req.Zaak,
	}
	if m := req.MedewerkerIdentificatie; m != nil {
		in.MedewerkerIdentificatie = &ports.MedewerkerInput{
			Identificatie:         m.Identificatie,
			Achternaam:            m.Achternaam,
			Voorletters:           m.Voorletters,
			VoorvoegselAchternaam: m.VoorvoegselAchternaam,
		}
	}
	return in
}

func toContactMomentResponse(urls resourceurl.Builder, cm *domain.ContactMoment) contactMomentResponse {
	links := cm.OnderwerpLinks
	if links == nil {
		links = []string{}
	}
	return contactMomentResponse{
		URL:                     urls.URL(resourceurl.ContactMomenten, cm.UUID),
		Bronorganisatie:         cm.Bronorganisatie,
		Klant:                   cm.Klant,
		Interactiedatum:         cm.Interactiedatum,
		Kanaal:                  cm.Kanaal,
		Voorkeurskanaal:         cm.Voorkeurskanaal,
		Voorkeurstaal:           cm.Voorkeurstaal,
		Tekst:                   cm.Tekst,
		OnderwerpLinks:          links,
		Initiatiefnemer:         cm.Initiatiefnemer,
		Medewerker:              cm.Medewerker,
		MedewerkerIdentificatie: cm.MedewerkerIdentificatie,
		Zaak:                    cm.Zaak,
	}
}
