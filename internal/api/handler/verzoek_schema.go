package handler

import (
	"time"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
	"github.com/vng-realisatie/klantinteracties/internal/core/ports"
	"github.com/vng-realisatie/klantinteracties/internal/pkg/resourceurl"
)

type verzoekRequest struct {
	Bronorganisatie      *string    `json:"bronorganisatie"      validate:"required,rsin"`
	Identificatie        *string    `json:"identificatie"        validate:"omitempty,max=40"`
	ExterneIdentificatie *string    `json:"externeIdentificatie" validate:"omitempty,max=40"`
	Klant                *string    `json:"klant"                validate:"omitempty,url,max=1000"`
	Interactiedatum      *time.Time `json:"interactiedatum"`
	Voorkeurskanaal      *string    `json:"voorkeurskanaal"      validate:"omitempty,max=50"`
	Tekst                *string    `json:"tekst"`
	Status               *string    `json:"status"               validate:"omitempty,oneof=ontvangen in_behandeling afgehandeld afgewezen ingetrokken"`
}

type verzoekResponse struct {
	URL                  string    `json:"url"`
	Bronorganisatie      string    `json:"bronorganisatie"`
	Identificatie        string    `json:"identificatie"`
	ExterneIdentificatie string    `json:"externeIdentificatie"`
	Klant                string    `json:"klant"`
	Interactiedatum      time.Time `json:"interactiedatum"`
	Voorkeurskanaal      string    `json:"voorkeurskanaal"`
	Tekst                string    `json:"tekst"`
	Status               string    `json:"status"`
}

func toVerzoekInput(req verzoekRequest) ports.VerzoekInput {
	return ports.VerzoekInput{
		Bronorganisatie:      req.Bronorganisatie,
		Identificatie:        req.Identificatie,
		ExterneIdentificatie: req.ExterneIdentificatie,
		Klant:                req.Klant,
		Interactiedatum:      req.Interactiedatum,
		Voorkeurskanaal:      req.Voorkeurskanaal,
		Tekst:                req.Tekst,
		Status:               req.Status,
	}
}

func toVerzoekResponse(urls resourceurl.Builder, v *domain.Verzoek) verzoekResponse {
	return verzoekResponse{
		URL:                  urls.URL(resourceurl.Verzoeken, v.UUID),
		Bronorganisatie:      v.Bronorganisatie,
		Identificatie:        v.Identificatie,
		ExterneIdentificatie: v.ExterneIdentificatie,
		Klant:                v.Klant,
		Interactiedatum:      v.Interactiedatum,
		Voorkeurskanaal:      v.Voorkeurskanaal,
		Tekst:                v.Tekst,
		Status:               string(v.Status),
	}
}
