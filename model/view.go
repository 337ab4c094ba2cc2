package model

// Staff is one notation string to be drawn into a mount.
type Staff struct {
	Mount      string `json:"mount"`
	Notation   string `json:"notation"`
	StaffWidth int    `json:"staffWidth,omitempty"`
	// MIDI keys of the stacked notes
	Midi []int `json:"midi,omitempty"`
}

type Card struct {
	Symbol string `json:"symbol"`
	Staff  Staff  `json:"staff"`
}

type Grid struct {
	ID    string `json:"id"`
	Cards []Card `json:"cards"`
}

// ChordView is everything the chord-symbol field displays.
type ChordView struct {
	Staff   *Staff `json:"staff,omitempty"`
	Message string `json:"message,omitempty"`
}

// NotesView is everything the notes-list field displays.
type NotesView struct {
	Staff   *Staff   `json:"staff,omitempty"`
	Summary string   `json:"summary,omitempty"`
	Other   string   `json:"other,omitempty"`
	Exact   []string `json:"exact"`
	Partial []string `json:"partial"`
	Grids   []Grid   `json:"grids"`
}
