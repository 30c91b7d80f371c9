package service

import (
	"fmt"
	"path/filepath"

	"deckbot/internal/domain"
	"deckbot/internal/i18n"
	"deckbot/internal/repository"

	"go.uber.org/zap"
)

// Dealer abstracts the card-dealing operations the resolver invokes
type Dealer interface {
	Draw(subscriberID int64, lang domain.Language, verbosity domain.Verbosity) (*domain.CardPresentation, error)
	Reshuffle(subscriberID int64) error
}

// ResolverService maps an incoming command plus persisted subscriber
// state to the next Action. All durable state lives in the store;
// the resolver holds nothing between requests.
type ResolverService struct {
	subs        repository.SubscriberRepository
	dealer      Dealer
	translator  *i18n.Translator
	picturesDir string
	logger      *zap.Logger
}

// NewResolverService creates a new resolver service
func NewResolverService(
	subs repository.SubscriberRepository,
	dealer Dealer,
	translator *i18n.Translator,
	picturesDir string,
	logger *zap.Logger,
) *ResolverService {
	return &ResolverService{
		subs:        subs,
		dealer:      dealer,
		translator:  translator,
		picturesDir: picturesDir,
		logger:      logger,
	}
}

// Resolve produces the Action for one command. Preferences are read
// fresh from the store on every call, and mutating commands persist
// their change before any response text describing it is rendered.
func (s *ResolverService) Resolve(cmd domain.Command, chatID string) (*domain.Action, error) {
	subscriberID, err := s.ensureSubscriber(chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve subscriber: %w", err)
	}

	state, err := s.subs.GetState(subscriberID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscriber state: %w", err)
	}
	lang := state.Language

	switch cmd {
	case domain.CommandStart:
		text, err := s.translator.Lookup("start", lang)
		if err != nil {
			return nil, err
		}
		return &domain.Action{Text: text, Keyboard: mainKeyboard(), Language: lang}, nil

	case domain.CommandHelp:
		text, err := s.translator.Lookup("help", lang)
		if err != nil {
			return nil, err
		}
		return &domain.Action{Text: text, Keyboard: mainKeyboard(), DeletePrevious: true, Language: lang}, nil

	case domain.CommandAbout:
		text, err := s.translator.Lookup("choose_your_action", lang)
		if err != nil {
			return nil, err
		}
		about, err := s.translator.Lookup("description", lang)
		if err != nil {
			return nil, err
		}
		return &domain.Action{Text: text, Keyboard: mainKeyboard(), ReplacementText: about, Language: lang}, nil

	case domain.CommandMainMenu:
		text, err := s.translator.Lookup("choose_your_action", lang)
		if err != nil {
			return nil, err
		}
		return &domain.Action{Text: text, Keyboard: mainKeyboard(), DeletePrevious: true, Language: lang}, nil

	case domain.CommandDrawCard:
		return s.resolveDraw(subscriberID, state)

	case domain.CommandReshuffle:
		if err := s.dealer.Reshuffle(subscriberID); err != nil {
			return nil, fmt.Errorf("failed to reshuffle: %w", err)
		}
		text, err := s.translator.Lookup("choose_your_action", lang)
		if err != nil {
			return nil, err
		}
		confirmation, err := s.translator.Lookup("cards_shuffled_back", lang)
		if err != nil {
			return nil, err
		}
		return &domain.Action{Text: text, Keyboard: mainKeyboard(), ReplacementText: confirmation, Language: lang}, nil

	case domain.CommandOpenSettings:
		text, err := s.translator.Lookup("settings", lang)
		if err != nil {
			return nil, err
		}
		return &domain.Action{Text: text, Keyboard: settingsKeyboard(), DeletePrevious: true, Language: lang}, nil

	case domain.CommandOpenLanguageMenu:
		text, err := s.translator.Lookup("language_settings", lang)
		if err != nil {
			return nil, err
		}
		return &domain.Action{Text: text, Keyboard: languageKeyboard(), DeletePrevious: true, Language: lang}, nil

	case domain.CommandOpenDescriptionMenu:
		text, err := s.translator.Lookup("descriptions_settings", lang)
		if err != nil {
			return nil, err
		}
		return &domain.Action{Text: text, Keyboard: descriptionsKeyboard(), DeletePrevious: true, Language: lang}, nil

	case domain.CommandSetLanguageEN, domain.CommandSetLanguageRU:
		return s.resolveSetLanguage(subscriberID, cmd)

	case domain.CommandSetVerbosityFull, domain.CommandSetVerbosityNames, domain.CommandSetVerbosityNone:
		return s.resolveSetVerbosity(subscriberID, cmd, lang)

	default:
		text, err := s.translator.Lookup("command_not_found", lang)
		if err != nil {
			return nil, err
		}
		return &domain.Action{Text: text, Keyboard: mainKeyboard(), Language: lang}, nil
	}
}

// LanguageFor returns the subscriber's configured language, falling
// back to English when the chat is unknown or the store fails. Used
// for error messages that must go out even when resolution failed.
func (s *ResolverService) LanguageFor(chatID string) domain.Language {
	id, found, err := s.subs.FindByChatID(chatID)
	if err != nil || !found {
		return domain.LanguageEN
	}
	state, err := s.subs.GetState(id)
	if err != nil {
		return domain.LanguageEN
	}
	return state.Language
}

// ensureSubscriber resolves or lazily creates the subscriber record
func (s *ResolverService) ensureSubscriber(chatID string) (int64, error) {
	id, found, err := s.subs.FindByChatID(chatID)
	if err != nil {
		return 0, err
	}
	if found {
		return id, nil
	}

	id, err = s.subs.Create(chatID)
	if err != nil {
		return 0, err
	}

	s.logger.Info("New subscriber created",
		zap.Int64("subscriber_id", id),
		zap.String("chat_id", chatID),
	)
	return id, nil
}

func (s *ResolverService) resolveDraw(subscriberID int64, state *domain.SubscriberState) (*domain.Action, error) {
	lang := state.Language

	presentation, err := s.dealer.Draw(subscriberID, lang, state.Verbosity)
	if err != nil {
		return nil, fmt.Errorf("failed to draw a card: %w", err)
	}

	if presentation == nil {
		text, err := s.translator.Lookup("no_cards_left", lang)
		if err != nil {
			return nil, err
		}
		return &domain.Action{Text: text, Keyboard: mainKeyboard(), DeletePrevious: true, Language: lang}, nil
	}

	text, err := s.translator.Lookup("choose_your_action", lang)
	if err != nil {
		return nil, err
	}

	image := &domain.Image{
		FileID:   presentation.FileID,
		Caption:  presentation.Text,
		Filename: presentation.Filename,
		Language: lang,
	}
	if image.FileID == "" {
		image.Path = filepath.Join(s.picturesDir, string(lang), presentation.Filename)
	}

	return &domain.Action{
		Text:           text,
		Keyboard:       mainKeyboard(),
		DeletePrevious: true,
		Image:          image,
		Language:       lang,
	}, nil
}

func (s *ResolverService) resolveSetLanguage(subscriberID int64, cmd domain.Command) (*domain.Action, error) {
	lang := domain.LanguageEN
	confirmKey := "language_set_to_english"
	if cmd == domain.CommandSetLanguageRU {
		lang = domain.LanguageRU
		confirmKey = "language_set_to_russian"
	}

	// Persist first: the response below is rendered in the new language
	if err := s.subs.SetLanguage(subscriberID, lang); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}

	text, err := s.translator.Lookup("language_settings", lang)
	if err != nil {
		return nil, err
	}
	confirmation, err := s.translator.Lookup(confirmKey, lang)
	if err != nil {
		return nil, err
	}

	return &domain.Action{Text: text, Keyboard: languageKeyboard(), ReplacementText: confirmation, Language: lang}, nil
}

func (s *ResolverService) resolveSetVerbosity(subscriberID int64, cmd domain.Command, lang domain.Language) (*domain.Action, error) {
	verbosity := domain.VerbosityFull
	confirmKey := "full_descriptions_will_be_shown"
	switch cmd {
	case domain.CommandSetVerbosityNames:
		verbosity = domain.VerbosityNamesOnly
		confirmKey = "names_only_will_be_shown"
	case domain.CommandSetVerbosityNone:
		verbosity = domain.VerbosityNone
		confirmKey = "no_descriptions"
	}

	if err := s.subs.SetVerbosity(subscriberID, verbosity); err != nil {
		return nil, fmt.Errorf("failed to set verbosity: %w", err)
	}

	text, err := s.translator.Lookup("descriptions_settings", lang)
	if err != nil {
		return nil, err
	}
	confirmation, err := s.translator.Lookup(confirmKey, lang)
	if err != nil {
		return nil, err
	}

	return &domain.Action{Text: text, Keyboard: descriptionsKeyboard(), ReplacementText: confirmation, Language: lang}, nil
}

// Keyboards are ordered option lists; labels resolve at render time

func mainKeyboard() []domain.Option {
	return []domain.Option{
		{Command: domain.CommandDrawCard, LabelKey: "btn_draw_card"},
		{Command: domain.CommandReshuffle, LabelKey: "btn_shuffle"},
		{Command: domain.CommandOpenSettings, LabelKey: "btn_settings"},
		{Command: domain.CommandAbout, LabelKey: "btn_about"},
	}
}

func settingsKeyboard() []domain.Option {
	return []domain.Option{
		{Command: domain.CommandOpenLanguageMenu, LabelKey: "btn_language"},
		{Command: domain.CommandOpenDescriptionMenu, LabelKey: "btn_descriptions"},
		{Command: domain.CommandMainMenu, LabelKey: "btn_main_menu"},
	}
}

func languageKeyboard() []domain.Option {
	return []domain.Option{
		{Command: domain.CommandSetLanguageEN, LabelKey: "btn_english"},
		{Command: domain.CommandSetLanguageRU, LabelKey: "btn_russian"},
		{Command: domain.CommandOpenSettings, LabelKey: "btn_settings"},
	}
}

func descriptionsKeyboard() []domain.Option {
	return []domain.Option{
		{Command: domain.CommandSetVerbosityFull, LabelKey: "btn_full_descriptions"},
		{Command: domain.CommandSetVerbosityNames, LabelKey: "btn_names_only"},
		{Command: domain.CommandSetVerbosityNone, LabelKey: "btn_no_descriptions"},
		{Command: domain.CommandOpenSettings, LabelKey: "btn_settings"},
	}
}
