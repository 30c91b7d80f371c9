package domain

import "errors"

var (
	// ErrUnknownLanguage is returned for a language outside the supported set
	ErrUnknownLanguage = errors.New("unknown language")

	// ErrUnknownVerbosity is returned for a verbosity outside the closed set
	ErrUnknownVerbosity = errors.New("unknown verbosity")
)
