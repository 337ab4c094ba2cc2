package model

// Notes is a set of MIDI keys sounding together.
type Notes = []uint8

// Sonority is a set of sounding keys found in a MIDI file.
type Sonority struct {
	// milliseconds from the start of the file
	Offset uint32
	Notes  Notes
}

// ChordDefinition is a chord symbol and the notes the dictionary spells for it.
type ChordDefinition struct {
	Symbol string
	Tonic  string
	Type   string
	Bass   string
	Notes  []string
}

// Annotation says how a candidate relates to the input notes.
type Annotation int

const (
	Exact Annotation = iota
	Rootless
	Missing
)

// ChordCandidate is a chord that the input could imply.
type ChordCandidate struct {
	Symbol     string
	Annotation Annotation
	// set when Annotation is Missing
	MissingTone PitchClass
}

func (c ChordCandidate) Label() string {
	switch c.Annotation {
	case Rootless:
		return c.Symbol + " (rootless)"
	case Missing:
		return c.Symbol + " (missing " + c.MissingTone + ")"
	}
	return c.Symbol
}
