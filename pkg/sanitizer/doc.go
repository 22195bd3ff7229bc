// Package sanitizer provides pure string transformations applied to user input
// before it is parsed or validated.
//
// Transformations have the shape func(string) string and can be chained with
// Apply or stored as a reusable pipeline with Compose:
//
//	normalize := sanitizer.Compose(sanitizer.TrimLineEnding, sanitizer.ToUpper)
//	code := normalize("sw1a 1aa\r")
//
// All functions are stateless and safe for concurrent use.
package sanitizer
