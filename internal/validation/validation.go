package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"volunteer-dispatch/internal/apperr"
)

// Validator checks struct tags on domain records.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	return &Validator{v: v}
}

// Struct validates s. A failed required tag maps to apperr.ErrNullProperty,
// any other failed tag to apperr.ErrInvalid.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", apperr.ErrInvalid, err)
	}

	fields := make([]string, 0, len(verrs))
	null := false
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
		if fe.Tag() == "required" {
			null = true
		}
	}
	if null {
		return fmt.Errorf("%w: %s", apperr.ErrNullProperty, strings.Join(fields, ", "))
	}
	return fmt.Errorf("%w: %s", apperr.ErrInvalid, strings.Join(fields, ", "))
}
