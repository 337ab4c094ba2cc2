package cmd

import (
	"fmt"
	"os"

	"github.com/jsphweid/voicings/midi"
	"github.com/jsphweid/voicings/render"
	"github.com/spf13/cobra"
)

var midiOut string

func init() {
	chordCmd.Flags().StringVar(&midiOut, "midi", "", "also write the voicing to this .mid file")
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <symbol>",
	Short: "Shows the notes of a chord symbol",
	Long:  `Looks up a chord symbol like Cmaj7, F#m7b5 or C/E and prints it as ABC notation.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		view := newBuilder().ChordView(args[0])
		out := cmd.OutOrStdout()
		render.Display{W: out, R: render.TextRenderer{W: out}}.Chord(view)

		if midiOut == "" || view.Staff == nil {
			return nil
		}
		return writeMidi(midiOut, view.Staff.Midi)
	},
}

func writeMidi(path string, keys []int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %v: %w", path, err)
	}
	defer f.Close()
	return midi.WriteChord(f, keys)
}
