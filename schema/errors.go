package schema

import (
	"fmt"
	"strings"
)

// Reason identifies which business rule a profile validation failure
// violated.
type Reason string

const (
	ReasonMissingField       Reason = "MissingField"
	ReasonInvalidGender      Reason = "InvalidGender"
	ReasonInvalidAge         Reason = "InvalidAge"
	ReasonInvalidIncome      Reason = "InvalidIncome"
	ReasonInvalidExpenditure Reason = "InvalidExpenditure"
	ReasonInvalidSavings     Reason = "InvalidSavings"
	ReasonInvalidDuration    Reason = "InvalidDuration"
)

// ValidationError rejects a profile before any prompt is built. It is a
// request-level rejection: the caller re-prompts the user, the model is
// never invoked.
type ValidationError struct {
	Field   string
	Reason  Reason
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("profile validation error [%s]: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of profile validation errors.
type ValidationErrors []*ValidationError

func (errs ValidationErrors) Error() string {
	if len(errs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("found %d profile error(s):\n", len(errs)))
	for i, err := range errs {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Message))
	}
	return b.String()
}

// FilterError rejects malformed stock-screen constraints before any
// search executes.
type FilterError struct {
	Message string
}

func (e *FilterError) Error() string {
	return "invalid filter: " + e.Message
}

// SearchError wraps a vector index failure. It is surfaced to the caller
// as-is; the core does not retry searches.
type SearchError struct {
	Op  string
	Err error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("search failed (%s): %v", e.Op, e.Err)
}

func (e *SearchError) Unwrap() error { return e.Err }

// ModelUnavailableError means both the primary and the fallback
// completion attempts failed. There is no further retry.
type ModelUnavailableError struct {
	Primary  error
	Fallback error
}

func (e *ModelUnavailableError) Error() string {
	return fmt.Sprintf("model unavailable: primary: %v; fallback: %v", e.Primary, e.Fallback)
}

func (e *ModelUnavailableError) Unwrap() error { return e.Fallback }
