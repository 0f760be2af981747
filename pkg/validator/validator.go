// Package validator wraps a single shared go-playground validator instance.
// Every service runs incoming payloads through ValidateStruct before touching
// the database.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrorResponse describes one failed rule on one field.
type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// uuid_required rejects the zero UUID. Sale and purchase lines use it on
	// their product references so a line missing its product id fails
	// validation instead of pointing at uuid.Nil.
	v.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		id, ok := fl.Field().Interface().(uuid.UUID)
		return ok && id != uuid.Nil
	})

	return v
}

// ValidateStruct checks data against its validate tags and returns one entry
// per failed field, or nil when everything passes.
func ValidateStruct(data interface{}) []*ErrorResponse {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var out []*ErrorResponse
	for _, ve := range err.(validator.ValidationErrors) {
		out = append(out, &ErrorResponse{
			FailedField: ve.StructNamespace(),
			Tag:         ve.Tag(),
			Value:       ve.Param(),
		})
	}
	return out
}
