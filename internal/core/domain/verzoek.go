package domain

import (
	"fmt"
	"time"
)

// VerzoekStatus is the processing state of a Verzoek. Any value may follow any other.
type VerzoekStatus string

const (
	VerzoekOntvangen     VerzoekStatus = "ontvangen"
	VerzoekInBehandeling VerzoekStatus = "in_behandeling"
	VerzoekAfgehandeld   VerzoekStatus = "afgehandeld"
	VerzoekAfgewezen     VerzoekStatus = "afgewezen"
	VerzoekIngetrokken   VerzoekStatus = "ingetrokken"
)

var VerzoekStatuses = []VerzoekStatus{
	VerzoekOntvangen, VerzoekInBehandeling, VerzoekAfgehandeld, VerzoekAfgewezen, VerzoekIngetrokken,
}

func (s VerzoekStatus) Valid() bool {
	for _, known := range VerzoekStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Verzoek is a customer request.
type Verzoek struct {
	ID                   string        `bson:"_id,omitempty"`
	UUID                 string        `bson:"uuid"`
	Bronorganisatie      string        `bson:"bronorganisatie"`
	Identificatie        string        `bson:"identificatie"`
	ExterneIdentificatie string        `bson:"externe_identificatie"`
	Klant                string        `bson:"klant"`
	Interactiedatum      time.Time     `bson:"interactiedatum"`
	Voorkeurskanaal      string        `bson:"voorkeurskanaal"`
	Tekst                string        `bson:"tekst"`
	Status               VerzoekStatus `bson:"status"`
	CreatedAt            time.Time     `bson:"created_at"`
}

// VerzoekIdentificatie formats a generated identificatie, e.g. VERZOEK-2026-0000000001.
func VerzoekIdentificatie(year int, seq int64) string {
	return fmt.Sprintf("VERZOEK-%d-%010d", year, seq)
}
