package api

import "errors"

var (
	ErrInvalidBody   = errors.New("request body must be a JSON array of strings")
	ErrBatchTooLarge = errors.New("too many postcodes in one request")
)
