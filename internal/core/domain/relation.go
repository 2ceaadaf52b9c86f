package domain

// ObjectType names the kind of remote object a relation points at.
type ObjectType string

const ObjectTypeZaak ObjectType = "zaak"

var ObjectTypes = []ObjectType{ObjectTypeZaak}

func (t ObjectType) Valid() bool {
	for _, known := range ObjectTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ObjectContactMoment links a ContactMoment to an object in another API.
// The canonical side of the relation lives in that API.
type ObjectContactMoment struct {
	ID            string     `bson:"_id,omitempty"`
	UUID          string     `bson:"uuid"`
	ContactMoment string     `bson:"contactmoment"`
	Object        string     `bson:"object"`
	ObjectType    ObjectType `bson:"object_type"`
}

// ObjectVerzoek links a Verzoek to an object in another API.
type ObjectVerzoek struct {
	ID         string     `bson:"_id,omitempty"`
	UUID       string     `bson:"uuid"`
	Verzoek    string     `bson:"verzoek"`
	Object     string     `bson:"object"`
	ObjectType ObjectType `bson:"object_type"`
}

// VerzoekInformatieObject links a Verzoek to a document in the documents API.
// This side is canonical; the documents API receives a mirror.
type VerzoekInformatieObject struct {
	ID               string `bson:"_id,omitempty"`
	UUID             string `bson:"uuid"`
	Verzoek          string `bson:"verzoek"`
	Informatieobject string `bson:"informatieobject"`
	// Remote is the URL of the mirrored objectinformatieobject. Never exposed.
	Remote string `bson:"remote"`
}

// VerzoekProduct links a Verzoek to a product, by URL or by product code.
type VerzoekProduct struct {
	ID                       string `bson:"_id,omitempty"`
	UUID                     string `bson:"uuid"`
	Verzoek                  string `bson:"verzoek"`
	Product                  string `bson:"product"`
	ProductIdentificatieCode string `bson:"product_identificatie_code"`
}

// VerzoekContactMoment links a Verzoek to a ContactMoment of this API.
type VerzoekContactMoment struct {
	ID            string `bson:"_id,omitempty"`
	UUID          string `bson:"uuid"`
	Verzoek       string `bson:"verzoek"`
	ContactMoment string `bson:"contactmoment"`
}
