package model

import "strconv"

// Note is a parsed note name: a letter, its accidentals and an optional octave.
type Note struct {
	Letter     string
	Accidental string
	Octave     int
	HasOctave  bool
}

// PitchClass is a note identity without octave, e.g. "C#" or "Eb".
type PitchClass = string

// Name returns the note spelled as letter, accidental and octave (if any).
func (n Note) Name() string {
	if !n.HasOctave {
		return n.PitchClass()
	}
	return n.PitchClass() + strconv.Itoa(n.Octave)
}

func (n Note) PitchClass() PitchClass {
	return n.Letter + n.Accidental
}

// NotationToken is a note rendered for the staff, e.g. "^c'" or "_B,".
type NotationToken struct {
	Text string
	Midi int
}
