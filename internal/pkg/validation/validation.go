// Package validation configures go-playground/validator for the API's field
// rules and converts its failures into domain validation errors.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
)

// New returns a validator with the custom rules registered and field names
// reported by their json tag.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("rsin", func(fl validator.FieldLevel) bool {
		return ValidRSIN(fl.Field().String())
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(time.DateOnly, fl.Field().String())
		return err == nil
	})
	return v
}

// ValidRSIN reports whether s is a nine digit RSIN passing the 11-proef.
func ValidRSIN(s string) bool {
	if len(s) != 9 {
		return false
	}
	total := 0
	for i, r := range s {
		if r < '0' || r > '9' {
			return false
		}
		d := int(r - '0')
		if i == 8 {
			total -= d
		} else {
			total += d * (9 - i)
		}
	}
	return total%11 == 0
}

// ToValidationError converts validator failures into a *domain.ValidationError.
// Field names are prefixed with prefix (e.g. "subjectIdentificatie") when set.
// Errors of any other kind are returned unchanged.
func ToValidationError(err error, prefix string) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	out := &domain.ValidationError{}
	for _, fe := range ve {
		out.Add(fieldPath(fe, prefix), code(fe), reason(fe))
	}
	return out
}

// fieldPath drops the root struct name from the namespace, so
// "klantRequest.subjectIdentificatie.inpBsn" becomes "subjectIdentificatie.inpBsn".
func fieldPath(fe validator.FieldError, prefix string) string {
	path := fe.Namespace()
	if i := strings.IndexByte(path, '.'); i >= 0 {
		path = path[i+1:]
	}
	if prefix != "" {
		path = prefix + "." + path
	}
	return path
}

func code(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return domain.CodeRequired
	case "oneof":
		return domain.CodeInvalidChoice
	case "max":
		return "max_length"
	case "min":
		return "min_value"
	case "url", "http_url":
		return domain.CodeBadURL
	default:
		return domain.CodeInvalid
	}
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return "Dit veld is vereist."
	case "oneof":
		return fmt.Sprintf("%q is een ongeldige keuze, kies uit: %s.", fmt.Sprint(fe.Value()), fe.Param())
	case "max":
		return fmt.Sprintf("Zorg ervoor dat dit veld niet meer dan %s karakters bevat.", fe.Param())
	case "min":
		return fmt.Sprintf("Zorg ervoor dat deze waarde groter of gelijk is aan %s.", fe.Param())
	case "url", "http_url":
		return "Voer een geldige URL in."
	case "rsin":
		return "Onjuist RSIN formaat, moet 9 cijfers lang zijn en voldoen aan de 11-proef."
	case "isodate":
		return "Datum heeft het verkeerde formaat, gebruik YYYY-MM-DD."
	case "numeric":
		return "Waarde moet numeriek zijn."
	case "len":
		return fmt.Sprintf("Zorg ervoor dat dit veld precies %s karakters bevat.", fe.Param())
	default:
		return fmt.Sprintf("Ongeldige waarde (%s).", fe.Tag())
	}
}
