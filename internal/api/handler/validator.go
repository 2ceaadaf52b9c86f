package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
	"github.com/vng-realisatie/klantinteracties/internal/pkg/validation"
)

var validate = validation.New()

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
// Failures come back as *domain.ValidationError keyed by json field path.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validate}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		return validation.ToValidationError(err, "")
	}
	return nil
}

// validatePartial checks a PATCH body: only the provided fields are
// validated, so required failures of absent fields are dropped.
func validatePartial(i any) error {
	err := validate.Struct(i)
	if err == nil {
		return nil
	}
	converted := validation.ToValidationError(err, "")
	var ve *domain.ValidationError
	if !errors.As(converted, &ve) {
		return converted
	}
	kept := &domain.ValidationError{}
	for _, fe := range ve.Errors {
		if fe.Code != domain.CodeRequired {
			kept.Errors = append(kept.Errors, fe)
		}
	}
	return kept.OrNil()
}
