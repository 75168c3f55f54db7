package schema

import "fmt"

// Rule names reported in ValidationError.Rule.
const (
	RuleRequired   = "required"
	RuleType       = "type"
	RuleEmpty      = "empty"
	RuleEmail      = "email"
	RuleInteger    = "integer"
	RuleUnsafe     = "unsafe"
	RuleDate       = "date"
	RuleNotAllowed = "unknown"
)

// ValidationError describes the first rule a payload violated.
type ValidationError struct {
	Field   string
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func violation(field, rule, format string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Rule:    rule,
		Message: fmt.Sprintf(format, fmt.Sprintf("%q", field)),
	}
}
