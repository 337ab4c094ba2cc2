// Package chord resolves chord symbols and infers chords from pitch classes.
package chord

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jsphweid/voicings/model"
)

// Dictionary is the music-theory collaborator the resolver and engine use.
type Dictionary interface {
	Lookup(symbol string) (model.ChordDefinition, bool)
	Detect(pitchClasses []string) []string
	PitchClassOf(note string) string
}

var bassRegex = regexp.MustCompile(`^[A-Ga-g](#+|b+)?$`)

// CreateChordKey makes a key like "60-64-67" for a set of MIDI keys.
func CreateChordKey(notes model.Notes) string {
	sorted := make(model.Notes, len(notes))
	copy(sorted, notes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	var res string
	for i, note := range sorted {
		res += fmt.Sprintf("%v", note)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}

// BaseSymbol drops the annotation and slash bass from a label, so
// "Cmaj7 (rootless)" and "Em#5/C" become "Cmaj7" and "Em#5".
func BaseSymbol(label string) string {
	sym := label
	if i := strings.Index(sym, "("); i >= 0 {
		sym = sym[:i]
	}
	sym = strings.TrimSpace(sym)
	if f := strings.Fields(sym); len(f) > 0 {
		sym = f[0]
	}
	if i := strings.LastIndex(sym, "/"); i > 0 && bassRegex.MatchString(sym[i+1:]) {
		sym = sym[:i]
	}
	return sym
}
