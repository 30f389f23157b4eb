package domain

import "errors"

var (
	ErrUnknownCategory    = errors.New("unknown category")
	ErrEmptyCategory      = errors.New("category has no courses")
	ErrEmptyInterest      = errors.New("interest is empty")
	ErrMissingCredential  = errors.New("external search requires an api key")
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
)
