package domain

import (
	"fmt"
	"time"
)

// Subscriber represents a bot user
type Subscriber struct {
	ID        int64
	ChatID    string
	CreatedAt time.Time
}

// SubscriberState holds a subscriber's preferences and drawn cards
type SubscriberState struct {
	SubscriberID int64
	Language     Language
	Verbosity    Verbosity
	DrawnCardIDs []int64
}

// Language is a subscriber's display language
type Language string

const (
	LanguageEN Language = "en"
	LanguageRU Language = "ru"
)

// Languages returns all supported languages
func Languages() []Language {
	return []Language{LanguageEN, LanguageRU}
}

// ParseLanguage converts a stored value into a Language
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LanguageEN:
		return LanguageEN, nil
	case LanguageRU:
		return LanguageRU, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
}

// Verbosity controls how much text accompanies a dealt card
type Verbosity int

const (
	VerbosityFull Verbosity = iota
	VerbosityNamesOnly
	VerbosityNone
)

// ParseVerbosity converts a stored value into a Verbosity
func ParseVerbosity(v int) (Verbosity, error) {
	switch Verbosity(v) {
	case VerbosityFull, VerbosityNamesOnly, VerbosityNone:
		return Verbosity(v), nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownVerbosity, v)
}

// Validate rejects values outside the closed verbosity set
func (v Verbosity) Validate() error {
	_, err := ParseVerbosity(int(v))
	return err
}
