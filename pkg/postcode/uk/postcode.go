package uk

import (
	"errors"
	"slices"

	"github.com/dmitrymomot/postcodes/pkg/sanitizer"
	"github.com/dmitrymomot/postcodes/pkg/validator"
)

// Postcode is the parsed form of a UK postcode. It is immutable; use Parse
// to obtain one.
type Postcode struct {
	raw        string
	normalized string

	outward part
	inward  part

	area     part
	district part
	sector   part
	unit     part

	errs validator.ValidationErrors
}

// Parse normalizes raw, splits it into components and validates each of them.
// It never fails; problems are reported through Errors.
func Parse(raw string) Postcode {
	p := Postcode{
		raw:        raw,
		normalized: sanitizer.Apply(raw, sanitizer.ToUpper),
	}

	p.outward, p.inward = splitSides(p.normalized)
	p.area, p.district = splitOutward(p.outward)
	p.sector, p.unit = splitInward(p.inward)
	p.errs = validator.ExtractValidationErrors(validator.Apply(p.rules()...))

	return p
}

// Raw returns the input exactly as given to Parse.
func (p Postcode) Raw() string { return p.raw }

// Normalized returns the upper-cased input.
func (p Postcode) Normalized() string { return p.normalized }

// String returns the normalized postcode.
func (p Postcode) String() string { return p.normalized }

// Outward returns the first space-delimited token.
func (p Postcode) Outward() (string, bool) { return p.outward.get() }

// Inward returns everything after the first run of spaces, with spaces removed.
func (p Postcode) Inward() (string, bool) { return p.inward.get() }

func (p Postcode) Area() (string, bool)     { return p.area.get() }
func (p Postcode) District() (string, bool) { return p.district.get() }
func (p Postcode) Sector() (string, bool)   { return p.sector.get() }
func (p Postcode) Unit() (string, bool)     { return p.unit.get() }

// Component returns the named component, one of Attributes().
// Unknown names are reported absent.
func (p Postcode) Component(name string) (string, bool) {
	return p.component(name).get()
}

func (p Postcode) component(name string) part {
	switch name {
	case KeyArea:
		return p.area
	case KeyDistrict:
		return p.district
	case KeySector:
		return p.sector
	case KeyUnit:
		return p.unit
	}
	return part{}
}

// Attributes returns the component names in validation order.
func (p Postcode) Attributes() []string {
	return Attributes()
}

// Errors returns a copy of the error map keyed by component name or
// KeyMissingSpace. An empty map means the postcode is valid. Map iteration
// order is random; use ErrorKeys for the recorded order.
func (p Postcode) Errors() map[string]string {
	return p.errs.Map()
}

// ErrorKeys returns the failing keys in the order they were recorded:
// missing_space first, then area, district, sector and unit.
func (p Postcode) ErrorKeys() []string {
	return p.errs.Fields()
}

// IsValid reports whether no error was recorded.
func (p Postcode) IsValid() bool {
	return p.errs.IsEmpty()
}

// Err returns nil for a valid postcode. Otherwise the returned error matches
// ErrInvalidPostcode and validator.ErrValidationFailed under errors.Is, and
// unwraps to validator.ValidationErrors under errors.As.
func (p Postcode) Err() error {
	if p.IsValid() {
		return nil
	}
	return errors.Join(ErrInvalidPostcode, slices.Clone(p.errs))
}
