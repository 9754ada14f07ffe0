package apperrors

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrActivityNotFound = errors.New("activity not found")
	ErrMissingAPIKey    = errors.New("enrichment API key is required for the assembly phase")
)
