package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-notes-keeper/internal/validators"
)

// validate runs v on obj. A missing required field is reported with
// missingMessage, any other rule violation with the validator's own message.
func validate(ctx context.Context, v validators.Validator, obj any, missingMessage string) error {
	err := v.Validate(ctx, obj)
	if err == nil {
		return nil
	}

	var fieldErrors validators.FieldErrors
	if errors.As(err, &fieldErrors) {
		if fieldErrors.HasTag("required") {
			return &ValidationError{Message: missingMessage, Cause: err}
		}
		return &ValidationError{Message: fieldErrors[0].Message(), Cause: err}
	}

	return &ValidationError{Message: err.Error(), Cause: err}
}
