package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound         = errors.New("not found")
	ErrNoSteps          = errors.New("recipe has no steps")
	ErrInvalidDraft     = errors.New("invalid recipe draft")
	ErrNoActiveSession  = errors.New("no active cooking session")
	ErrNothingToSuggest = errors.New("no ingredients given")
)
