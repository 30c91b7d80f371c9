package service

import (
	"encoding/csv"
	"fmt"
	"os"

	"deckbot/internal/domain"
	"deckbot/internal/repository"

	"go.uber.org/zap"
)

// CatalogService seeds the card catalog on first run
type CatalogService struct {
	cards  repository.CardRepository
	logger *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(cards repository.CardRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{cards: cards, logger: logger}
}

// EnsureSeeded imports the seed file into an empty catalog. The seed
// is tabular: filename, name_en, description_en, name_ru,
// description_ru, with a header row. Import is all-or-nothing; a
// populated catalog is left untouched.
func (s *CatalogService) EnsureSeeded(seedPath string) error {
	count, err := s.cards.Count()
	if err != nil {
		return fmt.Errorf("failed to count cards: %w", err)
	}
	if count > 0 {
		s.logger.Info("Card catalog already populated", zap.Int("cards", count))
		return nil
	}

	file, err := os.Open(seedPath)
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}
	if len(records) < 2 {
		return fmt.Errorf("seed file %s has no card rows", seedPath)
	}

	cards := make([]domain.Card, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) < 5 {
			return fmt.Errorf("seed row %d has %d columns, want 5", i+2, len(record))
		}
		cards = append(cards, domain.Card{
			Filename:      record[0],
			NameEN:        record[1],
			DescriptionEN: record[2],
			NameRU:        record[3],
			DescriptionRU: record[4],
		})
	}

	if err := s.cards.Import(cards); err != nil {
		return fmt.Errorf("failed to import seed catalog: %w", err)
	}

	s.logger.Info("Card catalog seeded", zap.Int("cards", len(cards)))
	return nil
}
