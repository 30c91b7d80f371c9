package service

import (
	"fmt"
	"math/rand"

	"deckbot/internal/domain"
	"deckbot/internal/repository"
)

// Picker chooses one index uniformly at random among n candidates.
// Injected so tests can substitute a deterministic sequence.
type Picker interface {
	Pick(n int) int
}

// PickerFunc adapts a plain function to the Picker interface
type PickerFunc func(n int) int

// Pick calls f(n)
func (f PickerFunc) Pick(n int) int { return f(n) }

// NewPicker returns the default uniform picker
func NewPicker() Picker {
	return PickerFunc(rand.Intn)
}

// DealerService selects undrawn cards for subscribers and maintains
// their drawn sets
type DealerService struct {
	cardRepo repository.CardRepository
	subRepo  repository.SubscriberRepository
	picker   Picker
}

// NewDealerService creates a new dealer service
func NewDealerService(cardRepo repository.CardRepository, subRepo repository.SubscriberRepository, picker Picker) *DealerService {
	return &DealerService{
		cardRepo: cardRepo,
		subRepo:  subRepo,
		picker:   picker,
	}
}

// Draw deals one card the subscriber has not drawn since the last
// reshuffle, with equal probability for every undrawn card. The drawn
// set is persisted before the presentation is returned, so a card is
// spent the moment it is dealt regardless of delivery outcome.
// Returns nil when the deck is exhausted; the state is not mutated in
// that case.
func (s *DealerService) Draw(subscriberID int64, lang domain.Language, verbosity domain.Verbosity) (*domain.CardPresentation, error) {
	if err := verbosity.Validate(); err != nil {
		return nil, err
	}

	cards, err := s.cardRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load card catalog: %w", err)
	}

	state, err := s.subRepo.GetState(subscriberID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscriber state: %w", err)
	}

	drawn := make(map[int64]struct{}, len(state.DrawnCardIDs))
	for _, id := range state.DrawnCardIDs {
		drawn[id] = struct{}{}
	}

	var candidates []domain.Card
	for _, c := range cards {
		if _, already := drawn[c.ID]; !already {
			candidates = append(candidates, c)
		}
	}

	if len(candidates) == 0 {
		return nil, nil
	}

	chosen := candidates[s.picker.Pick(len(candidates))]

	if err := s.subRepo.AppendDrawnCard(subscriberID, chosen.ID); err != nil {
		return nil, fmt.Errorf("failed to record drawn card: %w", err)
	}

	return &domain.CardPresentation{
		CardID:   chosen.ID,
		Filename: chosen.Filename,
		FileID:   chosen.FileID(lang),
		Text:     renderCardText(chosen, lang, verbosity),
	}, nil
}

// Reshuffle clears the subscriber's drawn set, making every card
// eligible again
func (s *DealerService) Reshuffle(subscriberID int64) error {
	return s.subRepo.ClearDrawnCards(subscriberID)
}

func renderCardText(card domain.Card, lang domain.Language, verbosity domain.Verbosity) string {
	switch verbosity {
	case domain.VerbosityNamesOnly:
		return card.Name(lang)
	case domain.VerbosityNone:
		return ""
	default:
		return card.Name(lang) + "\n" + card.Description(lang)
	}
}
