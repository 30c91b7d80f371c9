package handler

import (
	"strconv"
	"strings"
	"unicode"

	"deckbot/internal/domain"
	"deckbot/internal/i18n"
	"deckbot/internal/repository"
	"deckbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler wires bot updates to the command resolver
type Handler struct {
	bot        *tele.Bot
	resolver   *service.ResolverService
	cards      repository.CardRepository
	translator *i18n.Translator
	logger     *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	resolver *service.ResolverService,
	cards repository.CardRepository,
	translator *i18n.Translator,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:        bot,
		resolver:   resolver,
		cards:      cards,
		translator: translator,
		logger:     logger,
	}
}

// slashCommands maps message commands to their symbolic command
var slashCommands = map[string]domain.Command{
	"/start":        domain.CommandStart,
	"/help":         domain.CommandHelp,
	"/about":        domain.CommandAbout,
	"/menu":         domain.CommandMainMenu,
	"/card":         domain.CommandDrawCard,
	"/shuffle":      domain.CommandReshuffle,
	"/settings":     domain.CommandOpenSettings,
	"/language":     domain.CommandOpenLanguageMenu,
	"/descriptions": domain.CommandOpenDescriptionMenu,
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	for route, cmd := range slashCommands {
		command := cmd
		h.bot.Handle(route, func(c tele.Context) error {
			return h.dispatch(c, command)
		})
	}

	// Free-form text is not part of the command set
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries carry stable command tokens, never label text
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

func (h *Handler) handleText(c tele.Context) error {
	return h.dispatch(c, domain.CommandUnrecognized)
}

func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	token := callback.Unique
	if token == "" {
		token = cleanCallbackData(callback.Data)
	}

	cmd, ok := domain.ParseCommand(token)
	if !ok {
		h.logger.Warn("Unknown callback token",
			zap.String("token", token),
			zap.Int64("user_id", c.Sender().ID),
		)
	}

	return h.dispatch(c, cmd)
}

// dispatch resolves the command and renders the resulting action.
// Every failure path still ends in exactly one message to the user.
func (h *Handler) dispatch(c tele.Context, cmd domain.Command) error {
	chatID := strconv.FormatInt(c.Chat().ID, 10)

	action, err := h.resolver.Resolve(cmd, chatID)
	if err != nil {
		h.logger.Error("Failed to resolve command",
			zap.String("command", string(cmd)),
			zap.String("chat_id", chatID),
			zap.Error(err),
		)
		return h.sendFallback(c, chatID)
	}

	if err := h.render(c, action); err != nil {
		h.logger.Error("Failed to render action",
			zap.String("command", string(cmd)),
			zap.String("chat_id", chatID),
			zap.Error(err),
		)
		return h.sendFallback(c, chatID)
	}

	return nil
}

// sendFallback delivers the generic error message in the user's
// language, never a raw internal error string
func (h *Handler) sendFallback(c tele.Context, chatID string) error {
	lang := h.resolver.LanguageFor(chatID)

	text, err := h.translator.Lookup("unknown_error", lang)
	if err != nil {
		h.logger.Error("Missing fallback translation", zap.Error(err))
		text = "Something went wrong. Please try again later."
	}

	return c.Send(text)
}

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}
