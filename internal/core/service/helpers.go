package service

import (
	"errors"

	"github.com/vng-realisatie/klantinteracties/internal/core/domain"
)

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// set copies *v into dst when v was provided.
func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// errorCode returns the first validation code carried by err, or "error".
func errorCode(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) && len(ve.Errors) > 0 {
		return ve.Errors[0].Code
	}
	return "error"
}
