package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/truthos/meeting-intel/internal/domain/entities"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance with domain validations
// registered
func New() *CustomValidator {
	v := validator.New()

	// meeting_type restricts values to the known meeting kinds
	_ = v.RegisterValidation("meeting_type", func(fl validator.FieldLevel) bool {
		return entities.MeetingType(fl.Field().String()).IsValid()
	})

	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
