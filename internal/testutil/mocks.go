package testutil

import (
	"deckbot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockSubscriberRepository is a mock for SubscriberRepository
type MockSubscriberRepository struct {
	mock.Mock
}

func (m *MockSubscriberRepository) FindByChatID(chatID string) (int64, bool, error) {
	args := m.Called(chatID)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *MockSubscriberRepository) Create(chatID string) (int64, error) {
	args := m.Called(chatID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriberRepository) GetState(subscriberID int64) (*domain.SubscriberState, error) {
	args := m.Called(subscriberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubscriberState), args.Error(1)
}

func (m *MockSubscriberRepository) SetLanguage(subscriberID int64, lang domain.Language) error {
	args := m.Called(subscriberID, lang)
	return args.Error(0)
}

func (m *MockSubscriberRepository) SetVerbosity(subscriberID int64, verbosity domain.Verbosity) error {
	args := m.Called(subscriberID, verbosity)
	return args.Error(0)
}

func (m *MockSubscriberRepository) AppendDrawnCard(subscriberID, cardID int64) error {
	args := m.Called(subscriberID, cardID)
	return args.Error(0)
}

func (m *MockSubscriberRepository) ClearDrawnCards(subscriberID int64) error {
	args := m.Called(subscriberID)
	return args.Error(0)
}

// MockCardRepository is a mock for CardRepository
type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) GetAll() ([]domain.Card, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Card), args.Error(1)
}

func (m *MockCardRepository) Count() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockCardRepository) SetFileID(filename string, lang domain.Language, fileID string) error {
	args := m.Called(filename, lang, fileID)
	return args.Error(0)
}

func (m *MockCardRepository) Import(cards []domain.Card) error {
	args := m.Called(cards)
	return args.Error(0)
}

// MockDealer is a mock for the resolver's Dealer dependency
type MockDealer struct {
	mock.Mock
}

func (m *MockDealer) Draw(subscriberID int64, lang domain.Language, verbosity domain.Verbosity) (*domain.CardPresentation, error) {
	args := m.Called(subscriberID, lang, verbosity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CardPresentation), args.Error(1)
}

func (m *MockDealer) Reshuffle(subscriberID int64) error {
	args := m.Called(subscriberID)
	return args.Error(0)
}
