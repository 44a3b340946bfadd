package utils

import (
	"sync"

	"tostreak/accrual"
	"tostreak/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validatorOnce sync.Once

// InitValidator registers the custom binding rules with gin's validator.
// Routes binding `criticality` or `theme` fields need it before serving.
func InitValidator() {
	validatorOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			RegisterCustomValidators(v)
		}
	})
}

func RegisterCustomValidators(v *validator.Validate) {
	v.RegisterValidation("criticality", ValidateCriticalityRule)
	v.RegisterValidation("theme", ValidateThemeRule)
	v.RegisterValidation("datekey", ValidateDateKeyRule)
}

func ValidateCriticalityRule(fl validator.FieldLevel) bool {
	return model.Criticality(fl.Field().String()).Valid()
}

func ValidateThemeRule(fl validator.FieldLevel) bool {
	return model.Theme(fl.Field().String()).Valid()
}

// ValidateDateKeyRule accepts YYYY-MM-DD values. Empty strings pass so the
// rule can be combined with omitempty-style optional fields.
func ValidateDateKeyRule(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := accrual.ParseDateKey(value)
	return err == nil
}
