package profile

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/finovai/finov/metrics"
	"github.com/finovai/finov/schema"
)

// Profile is the user's financial profile as entered at request time.
// It is immutable once handed to prompt construction and never persisted.
//
// Invariants: 18 <= age <= 100, income > 0, 0 <= expenditure < income,
// savings >= 0, 1 <= duration <= 40 years.
type Profile struct {
	Gender             string  `json:"gender" validate:"required,oneof=Male Female Other"`
	Age                int     `json:"age" validate:"gte=18,lte=100"`
	MonthlyIncome      float64 `json:"monthly_income" validate:"gt=0"`
	MonthlyExpenditure float64 `json:"monthly_expenditure" validate:"gte=0,ltfield=MonthlyIncome"`
	CurrentSavings     float64 `json:"current_savings" validate:"gte=0"`
	// Objective is open vocabulary; the recommended set is listed in the
	// advisory prompt's validation rules.
	Objective     string `json:"objective" validate:"required"`
	DurationYears int    `json:"duration_years" validate:"gte=1,lte=40"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the profile against the business rules. A non-nil
// return is a request-level rejection: the caller re-prompts the user and
// the model is never invoked.
func (p Profile) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// validator only returns InvalidValidationError for a non-struct
		// argument, which cannot happen here
		return err
	}

	var out schema.ValidationErrors
	for _, fe := range verrs {
		ve := toValidationError(fe)
		metrics.IncValidationFailure(string(ve.Reason))
		out = append(out, ve)
	}
	return out
}

func toValidationError(fe validator.FieldError) *schema.ValidationError {
	field := fe.Field()

	if fe.Tag() == "required" {
		return &schema.ValidationError{
			Field:   field,
			Reason:  schema.ReasonMissingField,
			Message: fmt.Sprintf("%s is required", field),
		}
	}

	switch field {
	case "Gender":
		return &schema.ValidationError{
			Field:   field,
			Reason:  schema.ReasonInvalidGender,
			Message: "gender must be one of Male, Female or Other",
		}
	case "Age":
		return &schema.ValidationError{
			Field:   field,
			Reason:  schema.ReasonInvalidAge,
			Message: "age must be between 18 and 100",
		}
	case "MonthlyIncome":
		return &schema.ValidationError{
			Field:   field,
			Reason:  schema.ReasonInvalidIncome,
			Message: "monthly income must be greater than zero",
		}
	case "MonthlyExpenditure":
		return &schema.ValidationError{
			Field:   field,
			Reason:  schema.ReasonInvalidExpenditure,
			Message: "monthly expenditure must be non-negative and less than monthly income",
		}
	case "CurrentSavings":
		return &schema.ValidationError{
			Field:   field,
			Reason:  schema.ReasonInvalidSavings,
			Message: "current savings must not be negative",
		}
	case "DurationYears":
		return &schema.ValidationError{
			Field:   field,
			Reason:  schema.ReasonInvalidDuration,
			Message: "investment duration must be between 1 and 40 years",
		}
	}
	return &schema.ValidationError{
		Field:   field,
		Reason:  schema.ReasonMissingField,
		Message: fmt.Sprintf("%s failed validation rule %s", field, fe.Tag()),
	}
}
