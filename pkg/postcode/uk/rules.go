package uk

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/dmitrymomot/postcodes/pkg/validator"
)

// Component and error keys.
const (
	KeyArea         = "area"
	KeyDistrict     = "district"
	KeySector       = "sector"
	KeyUnit         = "unit"
	KeyMissingSpace = "missing_space"
)

// MessageMissingSpace is recorded under KeyMissingSpace.
const MessageMissingSpace = "Missing space in the postcode"

var attributes = [...]string{KeyArea, KeyDistrict, KeySector, KeyUnit}

// Attributes lists the postcode components in validation order.
func Attributes() []string {
	return slices.Clone(attributes[:])
}

var (
	areaRe     = regexp.MustCompile(`^[A-Z]{1,2}$`)
	districtRe = regexp.MustCompile(`^[0-9][A-Z0-9]?$`)
	sectorRe   = regexp.MustCompile(`^[0-9]$`)
	unitRe     = regexp.MustCompile(`^[A-Z]{2}$`)
)

var grammar = map[string]*regexp.Regexp{
	KeyArea:     areaRe,
	KeyDistrict: districtRe,
	KeySector:   sectorRe,
	KeyUnit:     unitRe,
}

// invalidFormat returns the message recorded for a failing component.
func invalidFormat(name string) string {
	return fmt.Sprintf("Invalid %s format.", name)
}

// rules builds the validation rules for p. The missing space check comes
// first, followed by one grammar rule per component in attribute order.
func (p Postcode) rules() []validator.Rule {
	rules := make([]validator.Rule, 0, len(attributes)+1)
	rules = append(rules, validator.When(
		!spacesRe.MatchString(p.normalized),
		validator.Fail(KeyMissingSpace, MessageMissingSpace),
	))

	for _, name := range attributes {
		// An absent component validates as "" and fails like an empty one.
		value := p.component(name).value
		rules = append(rules, validator.MatchesPattern(name, value, grammar[name], invalidFormat(name)))
	}
	return rules
}
