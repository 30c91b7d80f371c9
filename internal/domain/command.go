package domain

// Command is a stable symbolic identifier for a user action. Keyboard
// buttons carry commands, not display text, so dispatch never depends
// on the current locale.
type Command string

const (
	CommandStart               Command = "start"
	CommandHelp                Command = "help"
	CommandAbout               Command = "about"
	CommandMainMenu            Command = "main_menu"
	CommandDrawCard            Command = "draw_card"
	CommandReshuffle           Command = "reshuffle"
	CommandOpenSettings        Command = "open_settings"
	CommandOpenLanguageMenu    Command = "open_language_menu"
	CommandOpenDescriptionMenu Command = "open_description_menu"
	CommandSetLanguageEN       Command = "set_language_en"
	CommandSetLanguageRU       Command = "set_language_ru"
	CommandSetVerbosityFull    Command = "set_verbosity_full"
	CommandSetVerbosityNames   Command = "set_verbosity_names_only"
	CommandSetVerbosityNone    Command = "set_verbosity_none"

	// CommandUnrecognized is the pseudo-command any unparseable input
	// resolves to
	CommandUnrecognized Command = "unrecognized"
)

var commands = map[Command]struct{}{
	CommandStart:               {},
	CommandHelp:                {},
	CommandAbout:               {},
	CommandMainMenu:            {},
	CommandDrawCard:            {},
	CommandReshuffle:           {},
	CommandOpenSettings:        {},
	CommandOpenLanguageMenu:    {},
	CommandOpenDescriptionMenu: {},
	CommandSetLanguageEN:       {},
	CommandSetLanguageRU:       {},
	CommandSetVerbosityFull:    {},
	CommandSetVerbosityNames:   {},
	CommandSetVerbosityNone:    {},
}

// ParseCommand maps an incoming token to a known command. Unknown
// tokens map to CommandUnrecognized with ok=false.
func ParseCommand(s string) (Command, bool) {
	if _, exists := commands[Command(s)]; exists {
		return Command(s), true
	}
	return CommandUnrecognized, false
}
