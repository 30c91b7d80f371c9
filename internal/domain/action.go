package domain

// Option is one selectable keyboard entry. Command is the stable
// identifier the transport echoes back; LabelKey is a translation key
// resolved to button text only at render time.
type Option struct {
	Command  Command
	LabelKey string
}

// Image is a card picture attached to an Action. FileID is preferred
// when set; otherwise Path points at the picture on disk and, after
// the first successful upload, the transport handle should be cached
// for (Filename, Language).
type Image struct {
	FileID   string
	Path     string
	Caption  string
	Filename string
	Language Language
}

// Action describes what to present to the user for one request,
// independent of transport mechanics. It is constructed fully at each
// call site and never mutated.
//
// Interpretation order: DeletePrevious wins over ReplacementText; an
// Image, when present, is delivered before the primary Text; Text and
// Keyboard are mandatory and always delivered last.
type Action struct {
	Text            string
	Keyboard        []Option
	ReplacementText string
	DeletePrevious  bool
	Image           *Image
	Language        Language
}
