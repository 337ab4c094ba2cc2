package theory

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed chordtypes.yaml
var chordTypesYAML []byte

// ChordType is a chord quality independent of its tonic.
type ChordType struct {
	Name      string   `yaml:"name"`
	Intervals []string `yaml:"intervals"`
	Aliases   []string `yaml:"aliases"`

	intervals []Interval
	chroma    int
}

// Symbol is the suffix used when reporting a chord of this type.
func (t *ChordType) Symbol() string {
	return t.Aliases[0]
}

func (t *ChordType) compile() error {
	if len(t.Aliases) == 0 {
		return fmt.Errorf("chord type %q has no aliases", t.Name)
	}
	if len(t.Intervals) == 0 {
		return fmt.Errorf("chord type %q has no intervals", t.Name)
	}
	t.intervals = make([]Interval, 0, len(t.Intervals))
	t.chroma = 0
	for _, name := range t.Intervals {
		ivl, err := ParseInterval(name)
		if err != nil {
			return fmt.Errorf("chord type %q: %w", t.Name, err)
		}
		t.intervals = append(t.intervals, ivl)
		t.chroma |= 1 << mod(ivl.Semitones, 12)
	}
	return nil
}

func parseChordTypes(data []byte) ([]*ChordType, error) {
	var types []*ChordType
	if err := yaml.Unmarshal(data, &types); err != nil {
		return nil, fmt.Errorf("could not parse chord types: %w", err)
	}
	for _, t := range types {
		if err := t.compile(); err != nil {
			return nil, err
		}
	}
	return types, nil
}
