// Package render computes what the chord and notes fields display and
// applies it to a notation renderer.
package render

import (
	"strconv"
	"strings"

	"github.com/jsphweid/voicings/chord"
	"github.com/jsphweid/voicings/model"
	"github.com/jsphweid/voicings/notation"
)

const (
	InvalidChordMessage = "Invalid chord symbol"

	ChordMount        = "paper"
	NotesMount        = "notes-paper"
	DetectedChordGrid = "detected-chords"
	OtherChordGrid    = "other-chords"

	DefaultCardStaffWidth = 180
)

type Options struct {
	Sharps         bool
	CardStaffWidth int
}

// Builder turns raw field input into views. It holds no state between calls.
type Builder struct {
	resolver   *chord.Resolver
	engine     *chord.Engine
	normalizer *notation.Normalizer
	opts       Options
}

// Theory is everything the builder needs from the theory dictionary.
type Theory interface {
	chord.Dictionary
	notation.Pitcher
}

func NewBuilder(dict Theory, opts Options) *Builder {
	if opts.CardStaffWidth == 0 {
		opts.CardStaffWidth = DefaultCardStaffWidth
	}
	return &Builder{
		resolver:   chord.NewResolver(dict),
		engine:     chord.NewEngine(dict),
		normalizer: notation.NewNormalizer(dict, notation.Options{Sharps: opts.Sharps}),
		opts:       opts,
	}
}

// ChordView resolves a chord symbol into a single staff.
func (b *Builder) ChordView(symbol string) model.ChordView {
	if symbol == "" {
		return model.ChordView{}
	}

	def, ok := b.resolver.Resolve(symbol)
	if !ok {
		return model.ChordView{Message: InvalidChordMessage}
	}
	tokens := b.normalizer.Normalize(def.Notes)
	if len(tokens) == 0 {
		return model.ChordView{Message: InvalidChordMessage}
	}
	return model.ChordView{Staff: b.staff(ChordMount, tokens, 0)}
}

// NotesView stacks a space separated note list on a staff and lists the
// chords it could be.
func (b *Builder) NotesView(input string) model.NotesView {
	rawNotes := strings.Fields(input)
	if len(rawNotes) == 0 {
		return model.NotesView{Exact: []string{}, Partial: []string{}, Grids: []model.Grid{}}
	}

	tokens := b.normalizer.Normalize(rawNotes)
	exact := b.engine.DetectExact(rawNotes)
	partial := chord.Labels(b.engine.DetectPartial(rawNotes))

	view := model.NotesView{
		Staff:   b.staff(NotesMount, tokens, 0),
		Summary: "Chords: None",
		Exact:   exact,
		Partial: partial,
		Grids: []model.Grid{
			b.grid(DetectedChordGrid, exact),
			b.grid(OtherChordGrid, partial),
		},
	}
	if len(exact) > 0 {
		view.Summary = "Chords: " + strings.Join(exact, ", ")
	}
	if len(partial) > 0 {
		view.Other = "Other Possible Chords: " + strings.Join(partial, ", ")
	}
	return view
}

// grid makes one card per distinct base symbol. Symbols that don't resolve
// to any notes get no card.
func (b *Builder) grid(id string, labels []string) model.Grid {
	g := model.Grid{ID: id, Cards: []model.Card{}}
	seen := make(map[string]bool)

	for _, label := range labels {
		sym := chord.BaseSymbol(label)
		if sym == "" || seen[sym] {
			continue
		}
		seen[sym] = true

		def, ok := b.resolver.Resolve(sym)
		if !ok {
			continue
		}
		tokens := b.normalizer.Normalize(def.Notes)
		if len(tokens) == 0 {
			continue
		}

		g.Cards = append(g.Cards, model.Card{
			Symbol: sym,
			Staff:  *b.staff(id+"-"+strconv.Itoa(len(g.Cards)), tokens, b.opts.CardStaffWidth),
		})
	}
	return g
}

func (b *Builder) staff(mount string, tokens []model.NotationToken, width int) *model.Staff {
	return &model.Staff{
		Mount:      mount,
		Notation:   notation.Simultaneity(tokens),
		StaffWidth: width,
		Midi:       notation.Midis(tokens),
	}
}

func (b *Builder) Sharps() bool {
	return b.opts.Sharps
}
