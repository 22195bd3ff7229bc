package uk_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/postcodes/pkg/postcode/uk"
	"github.com/dmitrymomot/postcodes/pkg/validator"
)

func value(s string, ok bool) *string {
	if !ok {
		return nil
	}
	return &s
}

func ptr(s string) *string { return &s }

func TestParse_UppercaseNormalization(t *testing.T) {
	t.Parallel()

	pc := uk.Parse("aa9a 9aa")
	assert.Equal(t, "aa9a 9aa", pc.Raw())
	assert.Equal(t, "AA9A 9AA", pc.Normalized())
	assert.Equal(t, "AA9A 9AA", pc.String())
}

func TestParse_OutwardAndInward(t *testing.T) {
	t.Parallel()

	pc := uk.Parse("AA9A 9AA")
	assert.Equal(t, ptr("AA9A"), value(pc.Outward()))
	assert.Equal(t, ptr("9AA"), value(pc.Inward()))
}

func TestParse_ValidFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw, area, district, sector, unit string
	}{
		{"AA9A 9AA", "AA", "9A", "9", "AA"},
		{"A9A 9AA", "A", "9A", "9", "AA"},
		{"A9 9AA", "A", "9", "9", "AA"},
		{"A99 9AA", "A", "99", "9", "AA"},
		{"AA9 9AA", "AA", "9", "9", "AA"},
		{"AA99 9AA", "AA", "99", "9", "AA"},
		{"SW1A 1AA", "SW", "1A", "1", "AA"},
		{"EC1A 1BB", "EC", "1A", "1", "BB"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			pc := uk.Parse(tt.raw)
			assert.Equal(t, tt.raw, pc.Raw())
			assert.Equal(t, tt.raw, pc.Normalized())
			assert.Equal(t, ptr(tt.area), value(pc.Area()))
			assert.Equal(t, ptr(tt.district), value(pc.District()))
			assert.Equal(t, ptr(tt.sector), value(pc.Sector()))
			assert.Equal(t, ptr(tt.unit), value(pc.Unit()))
			assert.True(t, pc.IsValid())
			assert.Empty(t, pc.Errors())
			assert.NoError(t, pc.Err())
		})
	}
}

func TestParse_SingleComponentErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		component string
		inputs    []string
	}{
		{uk.KeyArea, []string{
			"9 9AA", "9A 9AA", "99 9AA",
			"AAA9A 9AA", "AAAA9A 9AA", "AAAAA9A 9AA",
			"AAA99 9AA", "AAAA99 9AA", "AAAAA99 9AA",
		}},
		{uk.KeyDistrict, []string{"A 9AA", "AA 9AA"}},
		{uk.KeySector, []string{"AA9A AA", "A9A AA", "A9 AA", "A99 AA", "AA9 AA", "AA99 AA"}},
		{uk.KeyUnit, []string{
			"AA9A 9", "A9A 9", "A9 9", "A99 9", "AA9 9", "AA99 9",
			"AA9A 9AAA", "A9A 9AAA", "A9 9AAA", "A99 9AAA", "AA9 9AAA", "AA99 9AAA",
			"AA9A 9AAAA", "A9A 9AAAA", "A9 9AAAA", "A99 9AAAA", "AA9 9AAAA", "AA99 9AAAA",
		}},
	}

	for _, tt := range tests {
		for _, raw := range tt.inputs {
			t.Run(tt.component+"/"+raw, func(t *testing.T) {
				pc := uk.Parse(raw)
				assert.Equal(t, raw, pc.Raw())
				assert.Equal(t, raw, pc.Normalized())
				assert.False(t, pc.IsValid())
				assert.Equal(t, map[string]string{tt.component: "Invalid " + tt.component + " format."}, pc.Errors())
			})
		}
	}
}

func TestParse_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       string
		outward   *string
		inward    *string
		area      *string
		district  *string
		sector    *string
		unit      *string
		errorKeys []string
	}{
		{
			name:    "lowercase valid postcode",
			raw:     "aa9a 9aa",
			outward: ptr("AA9A"), inward: ptr("9AA"),
			area: ptr("AA"), district: ptr("9A"), sector: ptr("9"), unit: ptr("AA"),
		},
		{
			name:    "outward without area letters",
			raw:     "9A 9AA",
			outward: ptr("9A"), inward: ptr("9AA"),
			area: ptr(""), district: ptr("9A"), sector: ptr("9"), unit: ptr("AA"),
			errorKeys: []string{uk.KeyArea},
		},
		{
			name:    "outward without district digits",
			raw:     "AA 9AA",
			outward: ptr("AA"), inward: ptr("9AA"),
			area: ptr("AA"), sector: ptr("9"), unit: ptr("AA"),
			errorKeys: []string{uk.KeyDistrict},
		},
		{
			name:      "letters only without space",
			raw:       "AAAA",
			outward:   ptr("AAAA"),
			area:      ptr("AAAA"),
			errorKeys: []string{uk.KeyMissingSpace, uk.KeyArea, uk.KeyDistrict, uk.KeySector, uk.KeyUnit},
		},
		{
			name:      "single digit without space",
			raw:       "9",
			outward:   ptr("9"),
			area:      ptr(""),
			district:  ptr("9"),
			errorKeys: []string{uk.KeyMissingSpace, uk.KeyArea, uk.KeySector, uk.KeyUnit},
		},
		{
			name:      "empty string",
			raw:       "",
			errorKeys: []string{uk.KeyMissingSpace, uk.KeyArea, uk.KeyDistrict, uk.KeySector, uk.KeyUnit},
		},
		{
			name:      "only spaces",
			raw:       "   ",
			errorKeys: []string{uk.KeyArea, uk.KeyDistrict, uk.KeySector, uk.KeyUnit},
		},
		{
			name:    "inward starting with a letter",
			raw:     "AA AA",
			outward: ptr("AA"), inward: ptr("AA"),
			area: ptr("AA"), sector: ptr(""), unit: ptr("AA"),
			errorKeys: []string{uk.KeyDistrict, uk.KeySector},
		},
		{
			name:    "repeated spaces between halves",
			raw:     "AA9A   9AA",
			outward: ptr("AA9A"), inward: ptr("9AA"),
			area: ptr("AA"), district: ptr("9A"), sector: ptr("9"), unit: ptr("AA"),
		},
		{
			name:    "extra tokens are joined into inward",
			raw:     "AA9A 9 AA",
			outward: ptr("AA9A"), inward: ptr("9AA"),
			area: ptr("AA"), district: ptr("9A"), sector: ptr("9"), unit: ptr("AA"),
		},
		{
			name:    "trailing space",
			raw:     "AA9 ",
			outward: ptr("AA9"), inward: ptr(""),
			area: ptr("AA"), district: ptr("9"),
			errorKeys: []string{uk.KeySector, uk.KeyUnit},
		},
		{
			name:    "leading space",
			raw:     " AA9A 9AA",
			outward: ptr(""), inward: ptr("AA9A9AA"),
			sector: ptr(""), unit: ptr("AA9A9AA"),
			errorKeys: []string{uk.KeyArea, uk.KeyDistrict, uk.KeySector, uk.KeyUnit},
		},
		{
			name:    "several digit runs in outward",
			raw:     "A9A9 9AA",
			outward: ptr("A9A9"), inward: ptr("9AA"),
			area: ptr("A"), district: ptr("9A9"), sector: ptr("9"), unit: ptr("AA"),
			errorKeys: []string{uk.KeyDistrict},
		},
		{
			name:    "multi digit sector",
			raw:     "A9 99AA",
			outward: ptr("A9"), inward: ptr("99AA"),
			area: ptr("A"), district: ptr("9"), sector: ptr("99"), unit: ptr("AA"),
			errorKeys: []string{uk.KeySector},
		},
		{
			name:    "tab is not a separator",
			raw:     "A9\t9AA",
			outward: ptr("A9\t9AA"),
			area: ptr("A"), district: ptr("9\t9AA"),
			errorKeys: []string{uk.KeyMissingSpace, uk.KeyDistrict, uk.KeySector, uk.KeyUnit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc := uk.Parse(tt.raw)

			assert.Equal(t, tt.outward, value(pc.Outward()), "outward")
			assert.Equal(t, tt.inward, value(pc.Inward()), "inward")
			assert.Equal(t, tt.area, value(pc.Area()), "area")
			assert.Equal(t, tt.district, value(pc.District()), "district")
			assert.Equal(t, tt.sector, value(pc.Sector()), "sector")
			assert.Equal(t, tt.unit, value(pc.Unit()), "unit")

			if len(tt.errorKeys) == 0 {
				assert.True(t, pc.IsValid())
				assert.Empty(t, pc.ErrorKeys())
				return
			}
			assert.False(t, pc.IsValid())
			assert.Equal(t, tt.errorKeys, pc.ErrorKeys())
			assert.Len(t, pc.Errors(), len(tt.errorKeys))
		})
	}
}

func TestParse_ErrorMessages(t *testing.T) {
	t.Parallel()

	pc := uk.Parse("AAAA")
	assert.Equal(t, map[string]string{
		"missing_space": "Missing space in the postcode",
		"area":          "Invalid area format.",
		"district":      "Invalid district format.",
		"sector":        "Invalid sector format.",
		"unit":          "Invalid unit format.",
	}, pc.Errors())
}

func TestParse_Properties(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"", " ", "   ", "a", "9", "AAAA", "aa9a 9aa", "9A 9AA", "AA 9AA", "AA AA",
		"AA9A 9", "AA9A  9AA ", " lead", "a1b2c3 4d5e6", "ß9 9ss", "sw1a 1aa extra",
		"A9\t9AA", "12 34", "ÄÖ9 9ÜÜ", "A9 9 9 9",
	}

	for _, raw := range inputs {
		t.Run(raw, func(t *testing.T) {
			pc := uk.Parse(raw)

			assert.Equal(t, pc.Normalized(), uk.Parse(pc.Normalized()).Normalized(), "normalization is idempotent")
			assert.Equal(t, pc.IsValid(), len(pc.Errors()) == 0, "validity matches empty errors")

			outward, hasOutward := pc.Outward()
			area, hasArea := pc.Area()
			district, hasDistrict := pc.District()
			if !hasOutward {
				assert.False(t, hasArea)
				assert.False(t, hasDistrict)
			}
			if hasArea && hasDistrict {
				assert.Equal(t, outward, area+district)
			}

			inward, hasInward := pc.Inward()
			sector, hasSector := pc.Sector()
			unit, hasUnit := pc.Unit()
			if !hasInward {
				assert.False(t, hasSector)
				assert.False(t, hasUnit)
			}
			if hasSector && hasUnit {
				assert.Equal(t, inward, sector+unit)
			}

			_, missingSpace := pc.Errors()[uk.KeyMissingSpace]
			assert.Equal(t, !containsSpace(pc.Normalized()), missingSpace)
		})
	}
}

func containsSpace(s string) bool {
	for _, r := range s {
		if r == ' ' {
			return true
		}
	}
	return false
}

func TestPostcode_Errors_ReturnsCopy(t *testing.T) {
	t.Parallel()

	pc := uk.Parse("AA 9AA")
	errs := pc.Errors()
	errs["unit"] = "tampered"
	delete(errs, uk.KeyDistrict)

	assert.Equal(t, map[string]string{"district": "Invalid district format."}, pc.Errors())
}

func TestPostcode_Component(t *testing.T) {
	t.Parallel()

	pc := uk.Parse("SW1A 1AA")
	assert.Equal(t, []string{"area", "district", "sector", "unit"}, pc.Attributes())
	assert.Equal(t, uk.Attributes(), pc.Attributes())

	for _, name := range pc.Attributes() {
		v, ok := pc.Component(name)
		assert.True(t, ok, name)
		assert.NotEmpty(t, v, name)
	}

	_, ok := pc.Component("country")
	assert.False(t, ok)

	attrs := uk.Attributes()
	attrs[0] = "mutated"
	assert.Equal(t, "area", uk.Attributes()[0])
}

func TestPostcode_Err(t *testing.T) {
	t.Parallel()

	t.Run("valid postcode", func(t *testing.T) {
		assert.NoError(t, uk.Parse("SW1A 1AA").Err())
	})

	t.Run("invalid postcode", func(t *testing.T) {
		err := uk.Parse("9A 9").Err()
		require.Error(t, err)
		assert.True(t, errors.Is(err, uk.ErrInvalidPostcode))
		assert.True(t, errors.Is(err, validator.ErrValidationFailed))

		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"area", "unit"}, verrs.Fields())
		assert.Equal(t, []string{"Invalid unit format."}, verrs.Get("unit"))
	})
}

func BenchmarkParse(b *testing.B) {
	inputs := []string{"SW1A 1AA", "aa9a 9aa", "AAAA", "9A 9", ""}
	b.ReportAllocs()
	for i := 0; b.Loop(); i++ {
		_ = uk.Parse(inputs[i%len(inputs)])
	}
}
