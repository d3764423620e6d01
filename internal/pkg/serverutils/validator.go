package serverutils

import (
	"arogya-chat-be/internal/pkg/apperrors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation and converts the first failure
// into a ValidationError so the error middleware renders it as a 400.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			f := verrs[0]
			return apperrors.NewValidation("field '%s' failed validation on '%s'", f.Field(), f.Tag())
		}
		return err
	}
	return nil
}
