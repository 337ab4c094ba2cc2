package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/voicings/model"
)

// Renderer draws notation into a mount. It may fail.
type Renderer interface {
	Render(mount, notation string, opts RenderOptions) error
}

type RenderOptions struct {
	StaffWidth int
}

// Output records how one staff ended up on screen.
type Output struct {
	Mount string
	// raw notation shown when the renderer failed
	Fallback string
	Err      error
}

// Display applies views to a text surface, handing staffs to a Renderer.
// Render failures are shown as the raw notation and never returned.
type Display struct {
	W io.Writer
	R Renderer
}

func (d Display) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(d.W, format, args...)
}

func (d Display) draw(staff model.Staff) Output {
	out := Output{Mount: staff.Mount}
	if err := d.R.Render(staff.Mount, staff.Notation, RenderOptions{StaffWidth: staff.StaffWidth}); err != nil {
		out.Fallback = staff.Notation
		out.Err = err
		d.printf("%s\n", staff.Notation)
	}
	return out
}

func (d Display) Chord(view model.ChordView) []Output {
	if view.Message != "" {
		d.printf("%s\n", view.Message)
	}
	if view.Staff == nil {
		return nil
	}
	return []Output{d.draw(*view.Staff)}
}

func (d Display) Notes(view model.NotesView) []Output {
	if view.Staff == nil {
		return nil
	}

	res := []Output{d.draw(*view.Staff)}
	d.printf("%s\n", view.Summary)
	if view.Other != "" {
		d.printf("%s\n", view.Other)
	}
	for _, g := range view.Grids {
		if len(g.Cards) == 0 {
			continue
		}
		d.printf("\n== %s\n", g.ID)
		for _, c := range g.Cards {
			d.printf("%s\n", c.Symbol)
			res = append(res, d.draw(c.Staff))
		}
	}
	return res
}

// TextRenderer writes notation as indented ABC source.
type TextRenderer struct {
	W io.Writer
}

func (t TextRenderer) Render(mount, notation string, opts RenderOptions) error {
	_, err := fmt.Fprintf(t.W, "    %s\n", strings.ReplaceAll(notation, "\n", "\n    "))
	return err
}
