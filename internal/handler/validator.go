package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	"github.com/osse101/RaidCompanion_Go/internal/calculator"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("langtag", validateLanguageTag)
	_ = v.RegisterValidation("stationkey", validateWorkstationKey)
	_ = v.RegisterValidation("phasekey", validateProjectKey)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// FormatValidationError turns validation errors into a field -> message map
// without leaking struct names
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "uuid":
			errs[field] = "Must be a UUID"
		case "langtag":
			errs[field] = "Must be a language tag such as en or pt-BR"
		case "stationkey":
			errs[field] = "Must look like {workstation}-level-{index}"
		case "phasekey":
			errs[field] = "Must look like {project}-phase-{number}"
		case "min", "gte":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "max", "lte":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateLanguageTag(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := language.Parse(s)
	return err == nil
}

func validateWorkstationKey(fl validator.FieldLevel) bool {
	_, _, err := calculator.ParseWorkstationKey(fl.Field().String())
	return err == nil
}

func validateProjectKey(fl validator.FieldLevel) bool {
	_, _, err := calculator.ParseProjectKey(fl.Field().String())
	return err == nil
}
