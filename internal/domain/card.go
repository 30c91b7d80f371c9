package domain

// Card is an immutable catalog entry. Only the per-language transport
// file id changes after creation, and only once per language.
type Card struct {
	ID            int64
	Filename      string
	NameEN        string
	DescriptionEN string
	NameRU        string
	DescriptionRU string
	FileIDEN      string
	FileIDRU      string
}

// Name returns the card name in the given language
func (c Card) Name(lang Language) string {
	if lang == LanguageRU {
		return c.NameRU
	}
	return c.NameEN
}

// Description returns the card description in the given language
func (c Card) Description(lang Language) string {
	if lang == LanguageRU {
		return c.DescriptionRU
	}
	return c.DescriptionEN
}

// FileID returns the cached transport file id for the given language,
// empty if the card has not been delivered in that language yet
func (c Card) FileID(lang Language) string {
	if lang == LanguageRU {
		return c.FileIDRU
	}
	return c.FileIDEN
}

// CardPresentation is a dealt card rendered for delivery
type CardPresentation struct {
	CardID   int64
	Filename string
	FileID   string
	Text     string
}
