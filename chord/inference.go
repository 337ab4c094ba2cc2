package chord

import (
	"github.com/jsphweid/voicings/model"
	"github.com/jsphweid/voicings/util"
	"golang.org/x/exp/slices"
)

// Roots and Qualities span the templates searched for partial voicings.
var (
	Roots     = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	Qualities = []string{"maj7", "m7", "7", "mMaj7", "m6", "6", "m7b5", "dim", "sus4", "add9", "9", "maj9", "m9"}
)

// Engine names the chords a set of pitch classes could be.
type Engine struct {
	dict     Dictionary
	resolver *Resolver
}

// NewEngine returns an Engine searching the templates in dict.
func NewEngine(dict Dictionary) *Engine {
	return &Engine{dict: dict, resolver: NewResolver(dict)}
}

// PitchClasses reduces note names to distinct pitch classes in first-seen
// order. Names that aren't notes are dropped.
func (e *Engine) PitchClasses(notes []string) []model.PitchClass {
	pcs := make([]model.PitchClass, 0, len(notes))
	for _, n := range notes {
		if pc := e.dict.PitchClassOf(n); pc != "" {
			pcs = append(pcs, pc)
		}
	}
	return util.Unique(pcs)
}

// DetectExact names the chords made of exactly these pitch classes.
func (e *Engine) DetectExact(notes []string) []string {
	pcs := e.PitchClasses(notes)
	if len(pcs) == 0 {
		return []string{}
	}
	return e.dict.Detect(pcs)
}

// DetectPartial finds template chords that contain every input pitch class
// and exactly one more tone.
func (e *Engine) DetectPartial(notes []string) []model.ChordCandidate {
	res := []model.ChordCandidate{}
	input := e.PitchClasses(notes)
	if len(input) == 0 {
		return res
	}

	for _, root := range Roots {
		rootPc := e.dict.PitchClassOf(root)
		for _, quality := range Qualities {
			symbol := root + quality
			def, ok := e.resolver.Resolve(symbol)
			if !ok {
				continue
			}

			chordPcs := e.PitchClasses(def.Notes)
			var missing []model.PitchClass
			for _, pc := range chordPcs {
				if !slices.Contains(input, pc) {
					missing = append(missing, pc)
				}
			}
			present := len(chordPcs) - len(missing)
			if present != len(input) || len(missing) != 1 {
				continue
			}

			candidate := model.ChordCandidate{Symbol: symbol, Annotation: model.Rootless}
			if missing[0] != rootPc {
				candidate.Annotation = model.Missing
				candidate.MissingTone = missing[0]
			}
			res = append(res, candidate)
		}
	}
	return res
}

// Labels formats candidates for display.
func Labels(candidates []model.ChordCandidate) []string {
	res := make([]string, 0, len(candidates))
	for _, c := range candidates {
		res = append(res, c.Label())
	}
	return res
}
