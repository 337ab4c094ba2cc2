package theory

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jsphweid/voicings/model"
)

var symbolRegex = regexp.MustCompile(`^([a-gA-G]?)(#+|b+|x+|)(.*)$`)

// Dictionary looks up chord symbols and detects chords from pitch classes.
type Dictionary struct {
	types   []*ChordType
	byAlias map[string]*ChordType
}

// New returns a Dictionary over the built-in chord types.
func New() *Dictionary {
	d, err := Load(chordTypesYAML)
	if err != nil {
		panic("Could not load built-in chord types: " + err.Error())
	}
	return d
}

// Load builds a Dictionary from chord types in YAML.
func Load(data []byte) (*Dictionary, error) {
	types, err := parseChordTypes(data)
	if err != nil {
		return nil, err
	}
	d := &Dictionary{types: types, byAlias: make(map[string]*ChordType)}
	for _, t := range types {
		for _, alias := range t.Aliases {
			if _, exists := d.byAlias[alias]; exists {
				return nil, fmt.Errorf("alias %q is used by more than one chord type", alias)
			}
			d.byAlias[alias] = t
		}
	}
	return d, nil
}

func (d *Dictionary) ChordType(alias string) (*ChordType, bool) {
	t, ok := d.byAlias[alias]
	return t, ok
}

// PitchClassOf returns the letter and accidentals of a note, or "" when
// the note can't be read.
func (d *Dictionary) PitchClassOf(name string) string {
	n, ok := ParseNote(name)
	if !ok {
		return ""
	}
	return n.PitchClass()
}

// Midi returns the MIDI key of a note name that includes an octave.
func (d *Dictionary) Midi(name string) (int, bool) {
	n, ok := ParseNote(name)
	if !ok {
		return 0, false
	}
	return Midi(n)
}

func (d *Dictionary) FromMidi(midi int, sharps bool) model.Note {
	return FromMidi(midi, sharps)
}

// tokenize splits a symbol into tonic, type and bass the way "Ebm7/Bb" reads.
func tokenize(symbol string) (tonic, chordType, bass string) {
	m := symbolRegex.FindStringSubmatch(symbol)
	letter, acc, rest := strings.ToUpper(m[1]), m[2], m[3]
	if letter == "A" && rest == "ug" {
		return "", "aug", ""
	}
	if letter != "" {
		tonic = letter + strings.ReplaceAll(acc, "x", "##")
	} else {
		rest = symbol
	}

	slash := strings.LastIndex(rest, "/")
	if slash < 0 {
		return tonic, rest, ""
	}
	if b, ok := ParseNote(rest[slash+1:]); ok && !b.HasOctave {
		return tonic, rest[:slash], b.PitchClass()
	}
	return tonic, rest, ""
}

// Lookup spells the notes of a chord symbol such as "Cmaj7", "F#m7b5" or
// "C/E". Unknown symbols and symbols without a tonic are not found.
func (d *Dictionary) Lookup(symbol string) (model.ChordDefinition, bool) {
	tonicName, typeName, bassName := tokenize(symbol)
	if tonicName == "" {
		return model.ChordDefinition{}, false
	}
	t, ok := d.byAlias[typeName]
	if !ok {
		return model.ChordDefinition{}, false
	}

	tonic, _ := ParseNote(tonicName)
	notes := make([]string, 0, len(t.intervals)+1)
	for _, ivl := range t.intervals {
		notes = append(notes, Transpose(tonic, ivl).PitchClass())
	}

	if bassName != "" {
		bass, _ := ParseNote(bassName)
		idx := -1
		for i, name := range notes {
			n, _ := ParseNote(name)
			if Chroma(n) == Chroma(bass) {
				idx = i
				break
			}
		}
		if idx >= 0 {
			inverted := make([]string, 0, len(notes))
			inverted = append(inverted, notes[idx:]...)
			notes = append(inverted, notes[:idx]...)
		} else {
			notes = append([]string{bassName}, notes...)
		}
	}

	return model.ChordDefinition{
		Symbol: symbol,
		Tonic:  tonicName,
		Type:   typeName,
		Bass:   bassName,
		Notes:  notes,
	}, true
}

type detected struct {
	name   string
	weight float64
}

// Detect names the chords whose pitch classes are exactly the given ones.
// A chord rooted on the first note weighs more than an inversion, which is
// reported as "Em#5/C".
func (d *Dictionary) Detect(pitchClasses []string) []string {
	var notes []model.Note
	for _, pc := range pitchClasses {
		if n, ok := ParseNote(pc); ok {
			n.Octave, n.HasOctave = 0, false
			notes = append(notes, n)
		}
	}
	if len(notes) == 0 {
		return []string{}
	}

	tonic := notes[0]
	tonicChroma := Chroma(tonic)
	set := 0
	names := make(map[int]string)
	for _, n := range notes {
		c := Chroma(n)
		set |= 1 << c
		if _, ok := names[c]; !ok {
			names[c] = n.PitchClass()
		}
	}

	var found []detected
	for root := 0; root < 12; root++ {
		if set&(1<<root) == 0 {
			continue
		}
		mode := rotate(set, root)
		for _, t := range d.types {
			if t.chroma != mode {
				continue
			}
			if root == tonicChroma {
				found = append(found, detected{name: names[root] + t.Symbol(), weight: 1})
			} else {
				found = append(found, detected{name: names[root] + t.Symbol() + "/" + tonic.PitchClass(), weight: 0.5})
			}
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].weight > found[j].weight
	})
	res := make([]string, 0, len(found))
	for _, f := range found {
		res = append(res, f.name)
	}
	return res
}

// rotate returns the 12-bit chroma set seen from root, so root becomes bit 0.
func rotate(set, root int) int {
	return ((set >> root) | (set << (12 - root))) & 0xfff
}
