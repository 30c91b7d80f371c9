package postgres

import (
	"database/sql"

	"deckbot/internal/domain"
)

// CardRepo implements repository.CardRepository
type CardRepo struct {
	db *sql.DB
}

// NewCardRepo creates a new card repository
func NewCardRepo(db *sql.DB) *CardRepo {
	return &CardRepo{db: db}
}

// GetAll returns the whole card catalog
func (r *CardRepo) GetAll() ([]domain.Card, error) {
	query := `
		SELECT id, filename, name_en, description_en, name_ru, description_ru,
		       file_id_en, file_id_ru
		FROM cards
		ORDER BY id
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []domain.Card
	for rows.Next() {
		var c domain.Card
		var fileIDEN, fileIDRU sql.NullString
		if err := rows.Scan(
			&c.ID, &c.Filename, &c.NameEN, &c.DescriptionEN,
			&c.NameRU, &c.DescriptionRU, &fileIDEN, &fileIDRU,
		); err != nil {
			return nil, err
		}
		c.FileIDEN = fileIDEN.String
		c.FileIDRU = fileIDRU.String
		cards = append(cards, c)
	}

	return cards, rows.Err()
}

// Count returns the number of cards in the catalog
func (r *CardRepo) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM cards`).Scan(&count)
	return count, err
}

// SetFileID caches the transport file id for (filename, language).
// The value is a cache, last writer wins.
func (r *CardRepo) SetFileID(filename string, lang domain.Language, fileID string) error {
	query := `UPDATE cards SET file_id_en = $1 WHERE filename = $2`
	if lang == domain.LanguageRU {
		query = `UPDATE cards SET file_id_ru = $1 WHERE filename = $2`
	}
	_, err := r.db.Exec(query, fileID, filename)
	return err
}

// Import inserts the seed catalog in a single transaction,
// all-or-nothing
func (r *CardRepo) Import(cards []domain.Card) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	insert := `
		INSERT INTO cards (filename, name_en, description_en, name_ru, description_ru)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, c := range cards {
		if _, err := tx.Exec(insert, c.Filename, c.NameEN, c.DescriptionEN, c.NameRU, c.DescriptionRU); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}
