// Package notation turns note names into ABC tokens for the staff.
package notation

import (
	"regexp"
	"strings"

	"github.com/jsphweid/voicings/model"
)

// default register notes are placed in before being stacked
const defaultOctave = 4

var digitsRegex = regexp.MustCompile(`\d+`)

// Pitcher is the part of the theory dictionary the normalizer needs.
type Pitcher interface {
	Midi(name string) (int, bool)
	FromMidi(midi int, sharps bool) model.Note
}

// Options changes how normalized notes are spelled.
type Options struct {
	// spell black keys with sharps instead of flats
	Sharps bool
}

// Normalizer stacks note names into ascending notation tokens.
type Normalizer struct {
	pitcher Pitcher
	opts    Options
}

// NewNormalizer returns a Normalizer pitching notes with p.
func NewNormalizer(p Pitcher, opts Options) *Normalizer {
	return &Normalizer{pitcher: p, opts: opts}
}

// Normalize stacks notes in input order so each one sounds strictly higher
// than the previous, starting from octave 4. Notes that can't be read are
// left out.
func (n *Normalizer) Normalize(rawNotes []string) []model.NotationToken {
	res := make([]model.NotationToken, 0, len(rawNotes))
	prev, started := 0, false

	for _, raw := range rawNotes {
		base := digitsRegex.ReplaceAllString(raw, "")
		midi, ok := n.pitcher.Midi(base + "4")
		if !ok {
			continue
		}
		for started && midi <= prev {
			midi += 12
		}
		prev, started = midi, true

		token, ok := Token(n.pitcher.FromMidi(midi, n.opts.Sharps))
		if !ok {
			continue
		}
		res = append(res, model.NotationToken{Text: token, Midi: midi})
	}
	return res
}

var accidentalMarkers = strings.NewReplacer("##", "^^", "bb", "__", "#", "^", "b", "_")

// Token writes a note with octave as an ABC token: "^C" for C#4, "e" for E5,
// "g''" for G7, "B,," for B2.
func Token(note model.Note) (string, bool) {
	if note.Letter == "" || !note.HasOctave || note.Octave < 0 {
		return "", false
	}
	if len(note.Accidental) > 2 || strings.Trim(note.Accidental, "#") != "" && strings.Trim(note.Accidental, "b") != "" {
		return "", false
	}

	acc := accidentalMarkers.Replace(note.Accidental)
	switch {
	case note.Octave > defaultOctave:
		return acc + strings.ToLower(note.Letter) + strings.Repeat("'", note.Octave-5), true
	case note.Octave == defaultOctave:
		return acc + note.Letter, true
	default:
		return acc + note.Letter + strings.Repeat(",", defaultOctave-note.Octave), true
	}
}

// Simultaneity wraps tokens as one chord in a minimal tune in C.
func Simultaneity(tokens []model.NotationToken) string {
	var b strings.Builder
	b.WriteString("X:1\nK:C\n[")
	for _, t := range tokens {
		b.WriteString(t.Text)
	}
	b.WriteString("]")
	return b.String()
}

// Midis returns the MIDI key of every token.
func Midis(tokens []model.NotationToken) []int {
	res := make([]int, 0, len(tokens))
	for _, t := range tokens {
		res = append(res, t.Midi)
	}
	return res
}
