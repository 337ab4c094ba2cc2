package theory

import (
	"fmt"
	"testing"

	"github.com/jsphweid/voicings/model"
	"github.com/stretchr/testify/assert"
)

func TestParseNote(t *testing.T) {
	assert := assert.New(t)

	n, ok := ParseNote("eb")
	assert.True(ok)
	assert.Equal(model.Note{Letter: "E", Accidental: "b"}, n)

	n, ok = ParseNote("F#3")
	assert.True(ok)
	assert.Equal(model.Note{Letter: "F", Accidental: "#", Octave: 3, HasOctave: true}, n)

	n, ok = ParseNote("Gx")
	assert.True(ok)
	assert.Equal("G##", n.PitchClass())

	for _, bad := range []string{"", "H", "C#b", "Cm", "#C", "C 4"} {
		_, ok := ParseNote(bad)
		assert.False(ok, bad)
	}
}

func TestMidi(t *testing.T) {
	cases := map[string]int{
		"C4":   60,
		"A4":   69,
		"B#4":  72,
		"Cb4":  59,
		"Ebb4": 62,
		"C-1":  0,
		"G9":   127,
	}

	for name, expected := range cases {
		t.Run(fmt.Sprintf("midi of %v", name), func(t *testing.T) {
			n, ok := ParseNote(name)
			assert.True(t, ok)
			midi, ok := Midi(n)
			assert.True(t, ok)
			assert.Equal(t, expected, midi)
		})
	}
}

func TestMidiRejectsMissingOctaveAndOutOfRange(t *testing.T) {
	assert := assert.New(t)

	_, ok := Midi(model.Note{Letter: "C"})
	assert.False(ok)

	n, _ := ParseNote("G#9")
	_, ok = Midi(n)
	assert.False(ok)

	n, _ = ParseNote("Cb-1")
	_, ok = Midi(n)
	assert.False(ok)
}

func TestFromMidi(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Db4", FromMidi(61, false).Name())
	assert.Equal("C#4", FromMidi(61, true).Name())
	assert.Equal("C5", FromMidi(72, false).Name())
	assert.Equal("Bb3", FromMidi(58, false).Name())
	assert.Equal("C-1", FromMidi(0, false).Name())
}

func TestParseInterval(t *testing.T) {
	cases := []struct {
		name  string
		steps int
		semis int
	}{
		{"1P", 0, 0},
		{"3m", 2, 3},
		{"3M", 2, 4},
		{"5d", 4, 6},
		{"5A", 4, 8},
		{"7d", 6, 9},
		{"9M", 8, 14},
		{"11A", 10, 18},
		{"13M", 12, 21},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ivl, err := ParseInterval(c.name)
			assert.NoError(t, err)
			assert.Equal(t, c.steps, ivl.Steps)
			assert.Equal(t, c.semis, ivl.Semitones)
		})
	}

	for _, bad := range []string{"3P", "5m", "0P", "M3", ""} {
		_, err := ParseInterval(bad)
		assert.Error(t, err, bad)
	}
}

func TestTransposeKeepsLetterSpelling(t *testing.T) {
	assert := assert.New(t)
	third, _ := ParseInterval("3M")
	seventh, _ := ParseInterval("7M")

	assert.Equal("E#", Transpose(model.Note{Letter: "C", Accidental: "#"}, third).PitchClass())
	assert.Equal("C##", Transpose(model.Note{Letter: "D", Accidental: "#"}, seventh).PitchClass())
	assert.Equal("D", Transpose(model.Note{Letter: "B", Accidental: "b"}, third).PitchClass())
}

func TestLookup(t *testing.T) {
	d := New()
	cases := map[string][]string{
		"Cmaj7":   {"C", "E", "G", "B"},
		"C":       {"C", "E", "G"},
		"cm":      {"C", "Eb", "G"},
		"Bbm7":    {"Bb", "Db", "F", "Ab"},
		"F#m7b5":  {"F#", "A", "C", "E"},
		"C#mMaj7": {"C#", "E", "G#", "B#"},
		"Ebdim7":  {"Eb", "Gb", "Bbb", "Dbb"},
		"G9":      {"G", "B", "D", "F", "A"},
		"D6/9":    {"D", "F#", "A", "B", "E"},
		"C/E":     {"E", "G", "C"},
		"Cmaj7/G": {"G", "B", "C", "E"},
		"C/D":     {"D", "C", "E", "G"},
	}

	for symbol, notes := range cases {
		t.Run(symbol, func(t *testing.T) {
			def, ok := d.Lookup(symbol)
			assert.True(t, ok)
			assert.Equal(t, notes, def.Notes)
			assert.Equal(t, symbol, def.Symbol)
		})
	}
}

func TestLookupUnknownSymbols(t *testing.T) {
	d := New()
	for _, symbol := range []string{"", "Xyz123", "maj7", "Aug", "Cfoo", "CMAJ7", "C/E4"} {
		_, ok := d.Lookup(symbol)
		assert.False(t, ok, symbol)
	}
}

func TestDetect(t *testing.T) {
	d := New()
	assert := assert.New(t)

	assert.Equal([]string{"C", "Em#5/C"}, d.Detect([]string{"C", "E", "G"}))
	assert.Equal([]string{"Cmaj7"}, d.Detect([]string{"C", "E", "G", "B"}))
	assert.Equal([]string{"Am7", "C6/A"}, d.Detect([]string{"A", "C", "E", "G"}))
	assert.Equal([]string{"Ebm"}, d.Detect([]string{"Eb", "Gb", "Bb"})[:1])
	assert.Equal([]string{}, d.Detect(nil))
	assert.Equal([]string{}, d.Detect([]string{"nope"}))
}

func TestLoadRejectsDuplicateAliases(t *testing.T) {
	data := []byte(`
- name: one
  intervals: [1P, 5P]
  aliases: ["5"]
- name: two
  intervals: [1P, 4P]
  aliases: ["5"]
`)
	_, err := Load(data)
	assert.Error(t, err)

	_, err = Load([]byte(`- name: broken
  intervals: [1X]
  aliases: ["x"]
`))
	assert.Error(t, err)
}
