package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/blaisecz/questionnaire-report/pkg/problem"
)

var validate *validator.Validate

var patientIDPattern = regexp.MustCompile(`^P[0-9A-Za-z]+$`)

func init() {
	validate = validator.New()

	// Patient ids look like P001
	validate.RegisterValidation("patient_id", func(fl validator.FieldLevel) bool {
		return patientIDPattern.MatchString(fl.Field().String())
	})
}

// ValidPatientID reports whether id has the P<number> shape used for
// snapshot directories.
func ValidPatientID(id string) bool {
	return patientIDPattern.MatchString(id)
}

// Validate validates a struct and returns field errors
func Validate(s interface{}) []problem.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors []problem.FieldError
	for _, err := range err.(validator.ValidationErrors) {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   toSnakeCase(err.Field()),
			Message: getValidationMessage(err),
		})
	}
	return fieldErrors
}

func getValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must have at least " + err.Param() + " entries"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "patient_id":
		return "must look like P001"
	default:
		return "is invalid"
	}
}

func toSnakeCase(s string) string {
	var result []byte
	for i, c := range s {
		if c >= 'A' && c <= 'Z' {
			if i > 0 && s[i-1] >= 'a' && s[i-1] <= 'z' {
				result = append(result, '_')
			}
			result = append(result, byte(c+'a'-'A'))
		} else {
			result = append(result, byte(c))
		}
	}
	return string(result)
}
