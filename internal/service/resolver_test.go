package service

import (
	"fmt"
	"path/filepath"
	"testing"

	"deckbot/internal/domain"
	"deckbot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestResolver(subs *testutil.MockSubscriberRepository, dealer *testutil.MockDealer) *ResolverService {
	return NewResolverService(subs, dealer, testutil.NewTestTranslator(), "pictures", testutil.NewTestLogger())
}

func expectSubscriber(subs *testutil.MockSubscriberRepository, state *domain.SubscriberState) {
	subs.On("FindByChatID", "chat-1").Return(state.SubscriberID, true, nil)
	subs.On("GetState", state.SubscriberID).Return(state, nil)
}

func TestResolverService_Resolve_Navigation(t *testing.T) {
	tests := []struct {
		name                string
		command             domain.Command
		lang                domain.Language
		expectedText        string
		expectedReplacement string
		expectedDelete      bool
		expectedFirstButton domain.Command
	}{
		{
			name:                "start",
			command:             domain.CommandStart,
			lang:                domain.LanguageEN,
			expectedText:        "en:start",
			expectedFirstButton: domain.CommandDrawCard,
		},
		{
			name:                "help deletes the previous message",
			command:             domain.CommandHelp,
			lang:                domain.LanguageEN,
			expectedText:        "en:help",
			expectedDelete:      true,
			expectedFirstButton: domain.CommandDrawCard,
		},
		{
			name:                "about replaces the previous message",
			command:             domain.CommandAbout,
			lang:                domain.LanguageRU,
			expectedText:        "ru:choose_your_action",
			expectedReplacement: "ru:description",
			expectedFirstButton: domain.CommandDrawCard,
		},
		{
			name:                "main menu",
			command:             domain.CommandMainMenu,
			lang:                domain.LanguageEN,
			expectedText:        "en:choose_your_action",
			expectedDelete:      true,
			expectedFirstButton: domain.CommandDrawCard,
		},
		{
			name:                "settings",
			command:             domain.CommandOpenSettings,
			lang:                domain.LanguageRU,
			expectedText:        "ru:settings",
			expectedDelete:      true,
			expectedFirstButton: domain.CommandOpenLanguageMenu,
		},
		{
			name:                "language menu",
			command:             domain.CommandOpenLanguageMenu,
			lang:                domain.LanguageEN,
			expectedText:        "en:language_settings",
			expectedDelete:      true,
			expectedFirstButton: domain.CommandSetLanguageEN,
		},
		{
			name:                "descriptions menu",
			command:             domain.CommandOpenDescriptionMenu,
			lang:                domain.LanguageEN,
			expectedText:        "en:descriptions_settings",
			expectedDelete:      true,
			expectedFirstButton: domain.CommandSetVerbosityFull,
		},
		{
			name:                "unrecognized input",
			command:             domain.CommandUnrecognized,
			lang:                domain.LanguageRU,
			expectedText:        "ru:command_not_found",
			expectedFirstButton: domain.CommandDrawCard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subs := new(testutil.MockSubscriberRepository)
			dealer := new(testutil.MockDealer)
			expectSubscriber(subs, testutil.NewTestState(7, tt.lang, domain.VerbosityFull))

			resolver := newTestResolver(subs, dealer)

			action, err := resolver.Resolve(tt.command, "chat-1")

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedText, action.Text)
			assert.Equal(t, tt.expectedReplacement, action.ReplacementText)
			assert.Equal(t, tt.expectedDelete, action.DeletePrevious)
			assert.Equal(t, tt.lang, action.Language)
			assert.Nil(t, action.Image)
			assert.NotEmpty(t, action.Keyboard)
			assert.Equal(t, tt.expectedFirstButton, action.Keyboard[0].Command)

			subs.AssertExpectations(t)
		})
	}
}

func TestResolverService_Resolve_FirstContactCreatesSubscriber(t *testing.T) {
	subs := new(testutil.MockSubscriberRepository)
	dealer := new(testutil.MockDealer)

	subs.On("FindByChatID", "chat-new").Return(int64(0), false, nil)
	subs.On("Create", "chat-new").Return(int64(42), nil)
	subs.On("GetState", int64(42)).
		Return(testutil.NewTestState(42, domain.LanguageEN, domain.VerbosityFull), nil)

	resolver := newTestResolver(subs, dealer)

	action, err := resolver.Resolve(domain.CommandStart, "chat-new")

	assert.NoError(t, err)
	assert.Equal(t, "en:start", action.Text)
	subs.AssertExpectations(t)
}

func TestResolverService_Resolve_DrawCard(t *testing.T) {
	subs := new(testutil.MockSubscriberRepository)
	dealer := new(testutil.MockDealer)
	expectSubscriber(subs, testutil.NewTestState(7, domain.LanguageEN, domain.VerbosityFull))

	dealer.On("Draw", int64(7), domain.LanguageEN, domain.VerbosityFull).
		Return(&domain.CardPresentation{
			CardID:   3,
			Filename: "priestess.jpg",
			Text:     "The High Priestess\nIntuition.",
		}, nil)

	resolver := newTestResolver(subs, dealer)

	action, err := resolver.Resolve(domain.CommandDrawCard, "chat-1")

	assert.NoError(t, err)
	assert.Equal(t, "en:choose_your_action", action.Text)
	assert.True(t, action.DeletePrevious)
	assert.NotNil(t, action.Image)
	assert.Equal(t, "The High Priestess\nIntuition.", action.Image.Caption)
	assert.Equal(t, "priestess.jpg", action.Image.Filename)
	assert.Equal(t, domain.LanguageEN, action.Image.Language)
	// No cached file id: picture comes from the per-language directory
	assert.Equal(t, "", action.Image.FileID)
	assert.Equal(t, filepath.Join("pictures", "en", "priestess.jpg"), action.Image.Path)

	dealer.AssertExpectations(t)
}

func TestResolverService_Resolve_DrawCard_CachedFileID(t *testing.T) {
	subs := new(testutil.MockSubscriberRepository)
	dealer := new(testutil.MockDealer)
	expectSubscriber(subs, testutil.NewTestState(7, domain.LanguageRU, domain.VerbosityNone))

	dealer.On("Draw", int64(7), domain.LanguageRU, domain.VerbosityNone).
		Return(&domain.CardPresentation{
			CardID:   3,
			Filename: "priestess.jpg",
			FileID:   "cached-ru",
			Text:     "",
		}, nil)

	resolver := newTestResolver(subs, dealer)

	action, err := resolver.Resolve(domain.CommandDrawCard, "chat-1")

	assert.NoError(t, err)
	assert.Equal(t, "cached-ru", action.Image.FileID)
	assert.Equal(t, "", action.Image.Path)
	// Verbosity none: image still delivered, caption empty
	assert.Equal(t, "", action.Image.Caption)
}

func TestResolverService_Resolve_DrawCard_Exhausted(t *testing.T) {
	subs := new(testutil.MockSubscriberRepository)
	dealer := new(testutil.MockDealer)
	expectSubscriber(subs, testutil.NewTestState(7, domain.LanguageEN, domain.VerbosityFull))

	dealer.On("Draw", int64(7), domain.LanguageEN, domain.VerbosityFull).Return(nil, nil)

	resolver := newTestResolver(subs, dealer)

	action, err := resolver.Resolve(domain.CommandDrawCard, "chat-1")

	assert.NoError(t, err)
	assert.Equal(t, "en:no_cards_left", action.Text)
	assert.True(t, action.DeletePrevious)
	assert.Nil(t, action.Image)
}

func TestResolverService_Resolve_Reshuffle(t *testing.T) {
	subs := new(testutil.MockSubscriberRepository)
	dealer := new(testutil.MockDealer)
	expectSubscriber(subs, testutil.NewTestState(7, domain.LanguageEN, domain.VerbosityFull))

	dealer.On("Reshuffle", int64(7)).Return(nil)

	resolver := newTestResolver(subs, dealer)

	action, err := resolver.Resolve(domain.CommandReshuffle, "chat-1")

	assert.NoError(t, err)
	assert.Equal(t, "en:choose_your_action", action.Text)
	assert.Equal(t, "en:cards_shuffled_back", action.ReplacementText)
	dealer.AssertExpectations(t)
}

func TestResolverService_Resolve_SetLanguage(t *testing.T) {
	// Stored state is English; the response must already be rendered
	// in Russian, proving the mutation is applied before rendering
	subs := new(testutil.MockSubscriberRepository)
	dealer := new(testutil.MockDealer)
	expectSubscriber(subs, testutil.NewTestState(7, domain.LanguageEN, domain.VerbosityFull))

	subs.On("SetLanguage", int64(7), domain.LanguageRU).Return(nil)

	resolver := newTestResolver(subs, dealer)

	action, err := resolver.Resolve(domain.CommandSetLanguageRU, "chat-1")

	assert.NoError(t, err)
	assert.Equal(t, "ru:language_settings", action.Text)
	assert.Equal(t, "ru:language_set_to_russian", action.ReplacementText)
	assert.Equal(t, domain.LanguageRU, action.Language)
	subs.AssertExpectations(t)
}

func TestResolverService_Resolve_SetVerbosity(t *testing.T) {
	tests := []struct {
		name                string
		command             domain.Command
		expectedVerbosity   domain.Verbosity
		expectedReplacement string
	}{
		{
			name:                "full",
			command:             domain.CommandSetVerbosityFull,
			expectedVerbosity:   domain.VerbosityFull,
			expectedReplacement: "en:full_descriptions_will_be_shown",
		},
		{
			name:                "names only",
			command:             domain.CommandSetVerbosityNames,
			expectedVerbosity:   domain.VerbosityNamesOnly,
			expectedReplacement: "en:names_only_will_be_shown",
		},
		{
			name:                "none",
			command:             domain.CommandSetVerbosityNone,
			expectedVerbosity:   domain.VerbosityNone,
			expectedReplacement: "en:no_descriptions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subs := new(testutil.MockSubscriberRepository)
			dealer := new(testutil.MockDealer)
			expectSubscriber(subs, testutil.NewTestState(7, domain.LanguageEN, domain.VerbosityFull))

			subs.On("SetVerbosity", int64(7), tt.expectedVerbosity).Return(nil)

			resolver := newTestResolver(subs, dealer)

			action, err := resolver.Resolve(tt.command, "chat-1")

			assert.NoError(t, err)
			assert.Equal(t, "en:descriptions_settings", action.Text)
			assert.Equal(t, tt.expectedReplacement, action.ReplacementText)
			subs.AssertExpectations(t)
		})
	}
}

func TestResolverService_Resolve_StoreFailure(t *testing.T) {
	subs := new(testutil.MockSubscriberRepository)
	dealer := new(testutil.MockDealer)

	subs.On("FindByChatID", "chat-1").Return(int64(0), false, fmt.Errorf("store unreachable"))

	resolver := newTestResolver(subs, dealer)

	action, err := resolver.Resolve(domain.CommandStart, "chat-1")

	assert.Error(t, err)
	assert.Nil(t, action)
	dealer.AssertNotCalled(t, "Draw", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolverService_LanguageFor(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(subs *testutil.MockSubscriberRepository)
		expected domain.Language
	}{
		{
			name: "known subscriber",
			setup: func(subs *testutil.MockSubscriberRepository) {
				subs.On("FindByChatID", "chat-1").Return(int64(7), true, nil)
				subs.On("GetState", int64(7)).
					Return(testutil.NewTestState(7, domain.LanguageRU, domain.VerbosityFull), nil)
			},
			expected: domain.LanguageRU,
		},
		{
			name: "unknown chat falls back to english",
			setup: func(subs *testutil.MockSubscriberRepository) {
				subs.On("FindByChatID", "chat-1").Return(int64(0), false, nil)
			},
			expected: domain.LanguageEN,
		},
		{
			name: "store failure falls back to english",
			setup: func(subs *testutil.MockSubscriberRepository) {
				subs.On("FindByChatID", "chat-1").Return(int64(0), false, fmt.Errorf("down"))
			},
			expected: domain.LanguageEN,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subs := new(testutil.MockSubscriberRepository)
			dealer := new(testutil.MockDealer)
			tt.setup(subs)

			resolver := newTestResolver(subs, dealer)

			assert.Equal(t, tt.expected, resolver.LanguageFor("chat-1"))
		})
	}
}
