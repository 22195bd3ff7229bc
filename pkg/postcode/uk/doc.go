// Package uk parses United Kingdom postcodes into their structural components
// and reports which of them break the postcode grammar.
//
// A postcode such as "SW1A 1AA" is made of an outward code ("SW1A") and an
// inward code ("1AA"). The outward code splits into an area ("SW") and a
// district ("1A"); the inward code splits into a sector ("1") and a unit ("AA").
//
// Parse never fails: malformed input yields a Postcode whose Errors map names
// every component that is missing or malformed, plus "missing_space" when the
// input has no space at all.
//
//	pc := uk.Parse("aa9a 9aa")
//	pc.Normalized() // "AA9A 9AA"
//	area, _ := pc.Area() // "AA"
//	pc.IsValid() // true
//
//	pc = uk.Parse("AA 9AA")
//	pc.Errors() // map[district:Invalid district format.]
//
// Components are optional. Each accessor returns the value and whether the
// splitter produced it at all: a component computed as the empty string
// (the area of "9A 9AA") is present with value "", while a component that was
// never produced (the district of "AA 9AA") is absent. ToMap mirrors this by
// emitting "" and nil respectively.
//
// Postcode values are immutable and Parse keeps no shared state, so parsing
// is safe from any number of goroutines. ParseAll parses a batch concurrently.
//
// The package checks format only. It does not verify that a postcode exists.
package uk
