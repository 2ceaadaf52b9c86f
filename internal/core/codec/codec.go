// Package codec maps the subjectType discriminator of a Klant to its concrete
// subject variant and applies nested subjectIdentificatie payloads onto
// variant records and their address children.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
	"github.com/vng-realisatie/klantinteracties/internal/pkg/validation"
)

// GroupField is the wire name of the nested subject payload.
const GroupField = "subjectIdentificatie"

var validate = validation.New()

// Patch is a decoded subjectIdentificatie payload. Fields absent from the
// payload are left untouched when applied.
type Patch interface {
	// Apply writes the payload onto target, creating verblijfsadres and
	// subVerblijfBuitenland children that do not exist yet.
	Apply(target domain.SubjectIdentificatie) error
}

// Variant builds and decodes one subject type.
type Variant struct {
	Type   domain.SubjectType
	new    func() domain.SubjectIdentificatie
	decode func(raw json.RawMessage) (Patch, error)
}

// New returns an empty record of the variant bound to klantID.
func (v Variant) New(klantID string) domain.SubjectIdentificatie {
	s := v.new()
	s.Record().KlantID = klantID
	return s
}

// Decode parses and validates raw as a payload of this variant.
func (v Variant) Decode(raw json.RawMessage) (Patch, error) {
	return v.decode(raw)
}

var registry = map[domain.SubjectType]Variant{
	domain.SubjectTypeNatuurlijkPersoon: {
		Type:   domain.SubjectTypeNatuurlijkPersoon,
		new:    func() domain.SubjectIdentificatie { return &domain.NatuurlijkPersoon{} },
		decode: decodeInto[natuurlijkPersoonPatch],
	},
	domain.SubjectTypeVestiging: {
		Type:   domain.SubjectTypeVestiging,
		new:    func() domain.SubjectIdentificatie { return &domain.Vestiging{} },
		decode: decodeInto[vestigingPatch],
	},
}

// Lookup returns the variant registered for t.
func Lookup(t domain.SubjectType) (Variant, bool) {
	v, ok := registry[t]
	return v, ok
}

// Choices renders the accepted discriminator values for error messages.
func Choices() string {
	names := make([]string, 0, len(domain.SubjectTypes))
	for _, t := range domain.SubjectTypes {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

// IsNull reports whether raw carries no payload.
func IsNull(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null"
}

type patchPtr[T any] interface {
	*T
	Patch
}

func decodeInto[T any, P patchPtr[T]](raw json.RawMessage) (Patch, error) {
	p := P(new(T))
	if err := json.Unmarshal(raw, p); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return nil, domain.NewValidationError(GroupField+"."+typeErr.Field, domain.CodeInvalid,
				fmt.Sprintf("Verwacht een waarde van type %s.", typeErr.Type))
		}
		return nil, domain.NewValidationError(GroupField, domain.CodeInvalid, "Ongeldige gegevens.")
	}
	if err := validate.Struct(p); err != nil {
		return nil, validation.ToValidationError(err, GroupField)
	}
	return p, nil
}

// wrongVariant guards Apply against a record of another subject type.
func wrongVariant(want domain.SubjectType, got domain.SubjectIdentificatie) error {
	return fmt.Errorf("codec: %s payload applied to %s record", want, got.SubjectType())
}
