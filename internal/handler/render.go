package handler

import (
	"deckbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// render delivers an Action over the transport. Delete wins over
// replacement; an image goes out before the primary message; the
// primary text with its keyboard is always sent last.
func (h *Handler) render(c tele.Context, action *domain.Action) error {
	if c.Callback() != nil {
		if err := c.Respond(); err != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
		}
	}

	if action.DeletePrevious {
		// Deletion past the editability window is expected, not an error
		_ = c.Delete()
	} else if action.ReplacementText != "" {
		if err := c.Edit(action.ReplacementText); err != nil {
			// Message too old to edit: deliver the text as a new message
			h.logger.Debug("Edit rejected, sending new message", zap.Error(err))
			if err := c.Send(action.ReplacementText); err != nil {
				return err
			}
		}
	}

	if action.Image != nil {
		if err := h.sendImage(c, action.Image); err != nil {
			return err
		}
	}

	markup, err := h.markup(action.Keyboard, action.Language)
	if err != nil {
		return err
	}

	return c.Send(action.Text, markup)
}

func (h *Handler) sendImage(c tele.Context, image *domain.Image) error {
	photo := &tele.Photo{Caption: image.Caption}
	if image.FileID != "" {
		photo.File = tele.File{FileID: image.FileID}
	} else {
		photo.File = tele.FromDisk(image.Path)
	}

	msg, err := h.bot.Send(c.Recipient(), photo)
	if err != nil {
		return err
	}

	// First upload for this (card, language): remember the transport
	// handle so future draws reuse it instead of re-uploading
	if image.FileID == "" && msg.Photo != nil {
		if err := h.cards.SetFileID(image.Filename, image.Language, msg.Photo.FileID); err != nil {
			h.logger.Warn("Failed to cache file id",
				zap.String("filename", image.Filename),
				zap.String("language", string(image.Language)),
				zap.Error(err),
			)
		}
	}

	return nil
}

// markup builds an inline keyboard, one option per row. Button labels
// resolve from the translation catalog here, at render time; the
// callback data stays the stable command token.
func (h *Handler) markup(options []domain.Option, lang domain.Language) (*tele.ReplyMarkup, error) {
	markup := &tele.ReplyMarkup{}

	rows := make([]tele.Row, 0, len(options))
	for _, option := range options {
		label, err := h.translator.Lookup(option.LabelKey, lang)
		if err != nil {
			return nil, err
		}
		rows = append(rows, markup.Row(markup.Data(label, string(option.Command))))
	}

	markup.Inline(rows...)
	return markup, nil
}
