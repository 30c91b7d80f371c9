package testutil

import (
	"deckbot/internal/domain"
	"deckbot/internal/i18n"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// translationKeys is every key the resolver can look up
var translationKeys = []string{
	"start", "help", "description", "choose_your_action",
	"no_cards_left", "cards_shuffled_back",
	"settings", "language_settings", "descriptions_settings",
	"language_set_to_english", "language_set_to_russian",
	"full_descriptions_will_be_shown", "names_only_will_be_shown", "no_descriptions",
	"command_not_found", "unknown_error",
	"btn_draw_card", "btn_shuffle", "btn_settings", "btn_about",
	"btn_language", "btn_descriptions", "btn_main_menu",
	"btn_english", "btn_russian",
	"btn_full_descriptions", "btn_names_only", "btn_no_descriptions",
}

// NewTestTranslator creates a translator whose texts are the key
// prefixed with the language, so assertions can pin both key and
// language of a rendered text
func NewTestTranslator() *i18n.Translator {
	en := make(map[string]string, len(translationKeys))
	ru := make(map[string]string, len(translationKeys))
	for _, key := range translationKeys {
		en[key] = "en:" + key
		ru[key] = "ru:" + key
	}
	return i18n.New(map[domain.Language]map[string]string{
		domain.LanguageEN: en,
		domain.LanguageRU: ru,
	})
}

// NewTestCard creates a test card
func NewTestCard(id int64, filename string) domain.Card {
	return domain.Card{
		ID:            id,
		Filename:      filename,
		NameEN:        "Name EN " + filename,
		DescriptionEN: "Description EN " + filename,
		NameRU:        "Name RU " + filename,
		DescriptionRU: "Description RU " + filename,
	}
}

// NewTestState creates a subscriber state
func NewTestState(subscriberID int64, lang domain.Language, verbosity domain.Verbosity, drawn ...int64) *domain.SubscriberState {
	return &domain.SubscriberState{
		SubscriberID: subscriberID,
		Language:     lang,
		Verbosity:    verbosity,
		DrawnCardIDs: drawn,
	}
}
