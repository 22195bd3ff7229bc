package validator

import "errors"

// ErrValidationFailed is matched by every non-empty ValidationErrors value.
var ErrValidationFailed = errors.New("validation failed")
