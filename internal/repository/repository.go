package repository

import (
	"deckbot/internal/domain"
)

// SubscriberRepository defines subscriber data operations
type SubscriberRepository interface {
	// FindByChatID returns the subscriber id for a chat, found=false
	// when the chat has never been seen
	FindByChatID(chatID string) (int64, bool, error)
	// Create inserts a subscriber with default state. Safe under
	// concurrent first contact: all racers observe the same id.
	Create(chatID string) (int64, error)
	GetState(subscriberID int64) (*domain.SubscriberState, error)
	SetLanguage(subscriberID int64, lang domain.Language) error
	SetVerbosity(subscriberID int64, verbosity domain.Verbosity) error
	// AppendDrawnCard atomically adds a card id to the drawn set,
	// without duplicates, at the store
	AppendDrawnCard(subscriberID, cardID int64) error
	ClearDrawnCards(subscriberID int64) error
}

// CardRepository defines card catalog operations
type CardRepository interface {
	GetAll() ([]domain.Card, error)
	Count() (int, error)
	// SetFileID caches the transport file id for (filename, language)
	SetFileID(filename string, lang domain.Language, fileID string) error
	// Import inserts the whole seed catalog in one transaction
	Import(cards []domain.Card) error
}
