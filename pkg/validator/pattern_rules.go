package validator

import (
	"regexp"
)

// MatchesPattern validates that value is non-empty and matched by re.
// The pattern is expected to be compiled once by the caller; anchor it with
// ^ and $ for whole-value matching.
func MatchesPattern(field, value string, re *regexp.Regexp, message string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return false
			}
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: "validation.pattern",
			TranslationValues: map[string]any{
				"field":   field,
				"pattern": re.String(),
			},
		},
	}
}

// Fail returns a rule that always fails with the given message.
// It lets callers record a finding computed elsewhere alongside regular rules.
func Fail(field, message string) Rule {
	return Rule{
		Check: func() bool { return false },
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: "validation.failed",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// When wraps rule so that it is only evaluated when cond is true.
func When(cond bool, rule Rule) Rule {
	check := rule.Check
	rule.Check = func() bool {
		if !cond {
			return true
		}
		return check()
	}
	return rule
}
