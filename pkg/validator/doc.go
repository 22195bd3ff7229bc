// Package validator provides small, composable validation rules that collect
// failures instead of stopping at the first one.
//
// A Rule couples a Check function with the ValidationError reported when the
// check fails. Apply evaluates rules in order and returns every failure as a
// ValidationErrors value, which implements the error interface and matches
// ErrValidationFailed under errors.Is.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.MatchesPattern("area", area, areaRe, "Invalid area format."),
//	    validator.MatchesPattern("unit", unit, unitRe, "Invalid unit format."),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // ...
//	    }
//	}
//
// Rules hold no global state and are safe to build and apply from multiple
// goroutines.
package validator
