package theory

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jsphweid/voicings/model"
)

var noteRegex = regexp.MustCompile(`^([a-gA-G])(#+|b+|x+|)(-?\d*)$`)

// semitones of the natural letters from C
var letterSemitones = map[string]int{
	"C": 0, "D": 2, "E": 4, "F": 5, "G": 7, "A": 9, "B": 11,
}

const letters = "CDEFGAB"

var (
	flatNames  = []string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}
	sharpNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
)

// ParseNote reads names like "C", "eb", "F#3", "Bbb-1" or "Gx5".
func ParseNote(name string) (model.Note, bool) {
	m := noteRegex.FindStringSubmatch(name)
	if m == nil {
		return model.Note{}, false
	}

	n := model.Note{
		Letter:     strings.ToUpper(m[1]),
		Accidental: strings.ReplaceAll(m[2], "x", "##"),
	}
	if m[3] != "" {
		octave, err := strconv.Atoi(m[3])
		if err != nil {
			return model.Note{}, false
		}
		n.Octave = octave
		n.HasOctave = true
	}
	return n, true
}

func alteration(accidental string) int {
	return strings.Count(accidental, "#") - strings.Count(accidental, "b")
}

func accidentalFor(alt int) string {
	if alt >= 0 {
		return strings.Repeat("#", alt)
	}
	return strings.Repeat("b", -alt)
}

func mod(n, m int) int {
	return ((n % m) + m) % m
}

// Chroma is the 0-11 pitch class number of a note, C = 0.
func Chroma(n model.Note) int {
	return mod(letterSemitones[n.Letter]+alteration(n.Accidental), 12)
}

// Midi returns the MIDI key of a note with an octave. C4 = 60.
func Midi(n model.Note) (int, bool) {
	if !n.HasOctave {
		return 0, false
	}
	midi := (n.Octave+1)*12 + letterSemitones[n.Letter] + alteration(n.Accidental)
	if midi < 0 || midi > 127 {
		return 0, false
	}
	return midi, true
}

// FromMidi spells a MIDI key with flats, or sharps when asked.
func FromMidi(midi int, sharps bool) model.Note {
	names := flatNames
	if sharps {
		names = sharpNames
	}
	pc := names[mod(midi, 12)]
	octave := midi/12 - 1
	if midi < 0 && midi%12 != 0 {
		octave--
	}
	return model.Note{
		Letter:     pc[:1],
		Accidental: pc[1:],
		Octave:     octave,
		HasOctave:  true,
	}
}
