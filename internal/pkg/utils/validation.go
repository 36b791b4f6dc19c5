package utils

import (
	"edunexus-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("schoolday", validateSchoolDay)
	validate.RegisterValidation("classlabel", validateClassLabel)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateSchoolDay(fl validator.FieldLevel) bool {
	day := strings.ToLower(fl.Field().String())
	for _, valid := range constvars.WeekDays {
		if day == strings.ToLower(valid) {
			return true
		}
	}
	return false
}

func validateClassLabel(fl validator.FieldLevel) bool {
	label := fl.Field().String()
	for _, valid := range constvars.ClassLabels {
		if label == valid {
			return true
		}
	}
	return false
}
