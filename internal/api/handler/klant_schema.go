package handler

import (
	"encoding/json"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
	"github.com/vng-realisatie/klantinteracties/internal/core/ports"
	"github.com/vng-realisatie/klantinteracties/internal/pkg/resourceurl"
)

// klantRequest is the body of POST, PUT and PATCH /klanten. A field that is
// absent or null is "not provided".
type klantRequest struct {
	Bronorganisatie *string `json:"bronorganisatie" validate:"omitempty,rsin"`
	Voornaam        *string `json:"voornaam"        validate:"omitempty,max=200"`
	Achternaam      *string `json:"achternaam"      validate:"omitempty,max=200"`
	Adres           *string `json:"adres"           validate:"omitempty,max=1000"`
	Functie         *string `json:"functie"         validate:"omitempty,max=200"`
	Telefoonnummer  *string `json:"telefoonnummer"  validate:"omitempty,max=20"`
	Emailadres      *string `json:"emailadres"      validate:"omitempty,email,max=254"`
	Subject         *string `json:"subject"         validate:"omitempty,url,max=1000"`
	SubjectType     *string `json:"subjectType"`
	// Decoded by the subject codec once subjectType is known.
	SubjectIdentificatie json.RawMessage `json:"subjectIdentificatie" swaggertype:"object"`
}

type klantResponse struct {
	URL                  string                      `json:"url"`
	Bronorganisatie      string                      `json:"bronorganisatie"`
	Voornaam             string                      `json:"voornaam"`
	Achternaam           string                      `json:"achternaam"`
	Adres                string                      `json:"adres"`
	Functie              string                      `json:"functie"`
	Telefoonnummer       string                      `json:"telefoonnummer"`
	Emailadres           string                      `json:"emailadres"`
	Subject              string                      `json:"subject"`
	SubjectType          string                      `json:"subjectType"`
	SubjectIdentificatie domain.SubjectIdentificatie `json:"subjectIdentificatie" swaggertype:"object"`
}

func toKlantInput(req klantRequest) ports.KlantInput {
	return ports.KlantInput{
		Bronorganisatie:      req.Bronorganisatie,
		Voornaam:             req.Voornaam,
		Achternaam:           req.Achternaam,
		Adres:                req.Adres,
		Functie:              req.Functie,
		Telefoonnummer:       req.Telefoonnummer,
		Emailadres:           req.Emailadres,
		Subject:              req.Subject,
		SubjectType:          req.SubjectType,
		SubjectIdentificatie: req.SubjectIdentificatie,
	}
}

func toKlantResponse(urls resourceurl.Builder, d *ports.KlantDetail) klantResponse {
	k := d.Klant
	return klantResponse{
		URL:                  urls.URL(resourceurl.Klanten, k.UUID),
		Bronorganisatie:      k.Bronorganisatie,
		Voornaam:             k.Voornaam,
		Achternaam:           k.Achternaam,
		Adres:                k.Adres,
		Functie:              k.Functie,
		Telefoonnummer:       k.Telefoonnummer,
		Emailadres:           k.Emailadres,
		Subject:              k.Subject,
		SubjectType:          string(k.SubjectType),
		SubjectIdentificatie: d.SubjectIdentificatie,
	}
}
