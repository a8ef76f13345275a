// Package validation provides custom validation rules for the application.
package validation

import (
	"github.com/google/uuid"
	validation "github.com/jellydator/validation"
)

// UUID validates that a string is a well-formed UUID.
var UUID = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_uuid_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	if _, err := uuid.Parse(s); err != nil {
		return validation.NewError("validation_uuid", "must be a valid UUID")
	}
	return nil
})
