package handler

import (
	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
	"github.com/vng-realisatie/klantinteracties/internal/pkg/resourceurl"
)

// --- Object relations ---

type objectContactMomentRequest struct {
	ContactMoment string `json:"contactmoment" validate:"required,url"`
	Object        string `json:"object"        validate:"required,url,max=1000"`
	ObjectType    string `json:"objectType"    validate:"required,oneof=zaak"`
}

type objectContactMomentResponse struct {
	URL           string `json:"url"`
	ContactMoment string `json:"contactmoment"`
	Object        string `json:"object"`
	ObjectType    string `json:"objectType"`
}

func toObjectContactMomentResponse(urls resourceurl.Builder, r *domain.ObjectContactMoment) objectContactMomentResponse {
	return objectContactMomentResponse{
		URL:           urls.URL(resourceurl.ObjectContactMomenten, r.UUID),
		ContactMoment: r.ContactMoment,
		Object:        r.Object,
		ObjectType:    string(r.ObjectType),
	}
}

type objectVerzoekRequest struct {
	Verzoek    string `json:"verzoek"    validate:"required,url"`
	Object     string `json:"object"     validate:"required,url,max=1000"`
	ObjectType string `json:"objectType" validate:"required,oneof=zaak"`
}

type objectVerzoekResponse struct {
	URL        string `json:"url"`
	Verzoek    string `json:"verzoek"`
	Object     string `json:"object"`
	ObjectType string `json:"objectType"`
}

func toObjectVerzoekResponse(urls resourceurl.Builder, r *domain.ObjectVerzoek) objectVerzoekResponse {
	return objectVerzoekResponse{
		URL:        urls.URL(resourceurl.ObjectVerzoeken, r.UUID),
		Verzoek:    r.Verzoek,
		Object:     r.Object,
		ObjectType: string(r.ObjectType),
	}
}

// --- Verzoek links ---

type verzoekInformatieObjectRequest struct {
	Verzoek          string `json:"verzoek"          validate:"required,url"`
	Informatieobject string `json:"informatieobject" validate:"required,url,max=1000"`
}

type verzoekInformatieObjectResponse struct {
	URL              string `json:"url"`
	Verzoek          string `json:"verzoek"`
	Informatieobject string `json:"informatieobject"`
}

func toVerzoekInformatieObjectResponse(urls resourceurl.Builder, r *domain.VerzoekInformatieObject) verzoekInformatieObjectResponse {
	return verzoekInformatieObjectResponse{
		URL:              urls.URL(resourceurl.VerzoekInformatieObjecten, r.UUID),
		Verzoek:          r.Verzoek,
		Informatieobject: r.Informatieobject,
	}
}

type productIdentificatie struct {
	Code string `json:"code" validate:"max=20"`
}

type verzoekProductRequest struct {
	Verzoek              string                `json:"verzoek"              validate:"required,url"`
	Product              string                `json:"product"              validate:"omitempty,url,max=1000"`
	ProductIdentificatie *productIdentificatie `json:"productIdentificatie"`
}

type verzoekProductResponse struct {
	URL                  string                `json:"url"`
	Verzoek              string                `json:"verzoek"`
	Product              string                `json:"product"`
	ProductIdentificatie *productIdentificatie `json:"productIdentificatie"`
}

func toVerzoekProductResponse(urls resourceurl.Builder, r *domain.VerzoekProduct) verzoekProductResponse {
	resp := verzoekProductResponse{
		URL:     urls.URL(resourceurl.VerzoekProducten, r.UUID),
		Verzoek: r.Verzoek,
		Product: r.Product,
	}
	if r.ProductIdentificatieCode != "" {
		resp.ProductIdentificatie = &productIdentificatie{Code: r.ProductIdentificatieCode}
	}
	return resp
}

type verzoekContactMomentRequest struct {
	Verzoek       string `json:"verzoek"       validate:"required,url"`
	ContactMoment string `json:"contactmoment" validate:"required,url"`
}

type verzoekContactMomentResponse struct {
	URL           string `json:"url"`
	Verzoek       string `json:"verzoek"`
	ContactMoment string `json:"contactmoment"`
}

func toVerzoekContactMomentResponse(urls resourceurl.Builder, r *domain.VerzoekContactMoment) verzoekContactMomentResponse {
	return verzoekContactMomentResponse{
		URL:           urls.URL(resourceurl.VerzoekContactMomenten, r.UUID),
		Verzoek:       r.Verzoek,
		ContactMoment: r.ContactMoment,
	}
}
