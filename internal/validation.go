package internal

import (
	"errors"
	"fmt"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation"
)

// NewValidationErrorFrom converts ozzo-validation output into a VALIDATION_ERROR with per-field details.
func NewValidationErrorFrom(err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := IsAppError(err); ok {
		return appErr
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return NewValidationError(err.Error(), ErrCodeValidationFailed)
	}

	fields := make([]string, 0, len(fieldErrs))
	for field := range fieldErrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := ValidationErrors{Errors: make([]ValidationError, 0, len(fields))}
	for _, field := range fields {
		details.Errors = append(details.Errors, ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s %v", field, fieldErrs[field]),
			Code:    string(ErrCodeValidationFailed),
		})
	}

	return NewValidationError("Validation failed", ErrCodeValidationFailed).WithDetails(details)
}
