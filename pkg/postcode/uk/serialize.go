package uk

import "encoding/json"

// ToMap returns the postcode as a nested map:
//
//	{
//	  "postcode":   "AA9A 9AA",
//	  "is_valid":   true,
//	  "attributes": {"area": "AA", "district": "9A", "sector": "9", "unit": "AA"},
//	  "sides":      {"outward": "AA9A", "inward": "9AA"},
//	  "errors":     {},
//	}
//
// Absent components and sides are nil; components computed as the empty
// string stay "". The result is freshly allocated on every call.
func (p Postcode) ToMap() map[string]any {
	attrs := make(map[string]any, len(attributes))
	for _, name := range attributes {
		attrs[name] = p.component(name).any()
	}

	return map[string]any{
		"postcode":   p.normalized,
		"is_valid":   p.IsValid(),
		"attributes": attrs,
		"sides": map[string]any{
			"outward": p.outward.any(),
			"inward":  p.inward.any(),
		},
		"errors": p.Errors(),
	}
}

// MarshalJSON encodes ToMap.
func (p Postcode) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ToMap())
}

// MarshalYAML implements yaml.Marshaler by encoding ToMap.
func (p Postcode) MarshalYAML() (any, error) {
	return p.ToMap(), nil
}

func (p part) any() any {
	if !p.ok {
		return nil
	}
	return p.value
}
