package postgres

import (
	"database/sql"
	"fmt"

	"deckbot/internal/domain"

	"github.com/lib/pq"
)

// SubscriberRepo implements repository.SubscriberRepository
type SubscriberRepo struct {
	db *sql.DB
}

// NewSubscriberRepo creates a new subscriber repository
func NewSubscriberRepo(db *sql.DB) *SubscriberRepo {
	return &SubscriberRepo{db: db}
}

// FindByChatID returns the subscriber id for a chat
func (r *SubscriberRepo) FindByChatID(chatID string) (int64, bool, error) {
	var id int64
	query := `SELECT id FROM subscribers WHERE chat_id = $1`
	err := r.db.QueryRow(query, chatID).Scan(&id)

	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	return id, true, nil
}

// Create inserts a subscriber together with its default state in one
// transaction. Two concurrent first contacts race on the chat_id
// unique constraint; the loser observes no inserted row and re-reads
// the winner's id.
func (r *SubscriberRepo) Create(chatID string) (int64, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}

	var id int64
	insert := `
		INSERT INTO subscribers (chat_id)
		VALUES ($1)
		ON CONFLICT (chat_id) DO NOTHING
		RETURNING id
	`
	err = tx.QueryRow(insert, chatID).Scan(&id)
	if err == sql.ErrNoRows {
		// Lost the race, another request created this subscriber
		tx.Rollback()
		id, found, err := r.FindByChatID(chatID)
		if err != nil {
			return 0, err
		}
		if !found {
			return 0, fmt.Errorf("subscriber for chat %s vanished after conflict", chatID)
		}
		return id, nil
	}
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	state := `
		INSERT INTO subscriber_state (subscriber_id, language, verbosity, drawn_card_ids)
		VALUES ($1, 'en', 0, '{}')
	`
	if _, err := tx.Exec(state, id); err != nil {
		tx.Rollback()
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return id, nil
}

// GetState loads the subscriber's language, verbosity and drawn set.
// Values outside the closed enums are rejected, not coerced.
func (r *SubscriberRepo) GetState(subscriberID int64) (*domain.SubscriberState, error) {
	var (
		language  string
		verbosity int
		drawnIDs  []int64
	)
	query := `
		SELECT language, verbosity, drawn_card_ids
		FROM subscriber_state
		WHERE subscriber_id = $1
	`
	err := r.db.QueryRow(query, subscriberID).Scan(&language, &verbosity, pq.Array(&drawnIDs))
	if err != nil {
		return nil, err
	}

	lang, err := domain.ParseLanguage(language)
	if err != nil {
		return nil, err
	}
	verb, err := domain.ParseVerbosity(verbosity)
	if err != nil {
		return nil, err
	}

	return &domain.SubscriberState{
		SubscriberID: subscriberID,
		Language:     lang,
		Verbosity:    verb,
		DrawnCardIDs: drawnIDs,
	}, nil
}

// SetLanguage updates the subscriber's display language
func (r *SubscriberRepo) SetLanguage(subscriberID int64, lang domain.Language) error {
	if _, err := domain.ParseLanguage(string(lang)); err != nil {
		return err
	}

	query := `UPDATE subscriber_state SET language = $1 WHERE subscriber_id = $2`
	_, err := r.db.Exec(query, string(lang), subscriberID)
	return err
}

// SetVerbosity updates the subscriber's description verbosity
func (r *SubscriberRepo) SetVerbosity(subscriberID int64, verbosity domain.Verbosity) error {
	if err := verbosity.Validate(); err != nil {
		return err
	}

	query := `UPDATE subscriber_state SET verbosity = $1 WHERE subscriber_id = $2`
	_, err := r.db.Exec(query, int(verbosity), subscriberID)
	return err
}

// AppendDrawnCard adds a card id to the drawn set. The append and the
// duplicate guard run in a single UPDATE, so concurrent draws for the
// same subscriber cannot lose updates or double-append an id.
func (r *SubscriberRepo) AppendDrawnCard(subscriberID, cardID int64) error {
	query := `
		UPDATE subscriber_state
		SET drawn_card_ids = array_append(drawn_card_ids, $1::int)
		WHERE subscriber_id = $2 AND NOT drawn_card_ids @> ARRAY[$1::int]
	`
	_, err := r.db.Exec(query, cardID, subscriberID)
	return err
}

// ClearDrawnCards empties the drawn set unconditionally
func (r *SubscriberRepo) ClearDrawnCards(subscriberID int64) error {
	query := `UPDATE subscriber_state SET drawn_card_ids = '{}' WHERE subscriber_id = $1`
	_, err := r.db.Exec(query, subscriberID)
	return err
}
