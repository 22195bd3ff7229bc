package uk

import "errors"

// ErrInvalidPostcode is returned by Postcode.Err when any component fails validation.
var ErrInvalidPostcode = errors.New("uk: invalid postcode")
