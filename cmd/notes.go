package cmd

import (
	"strings"

	"github.com/jsphweid/voicings/render"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(notesCmd)
}

var notesCmd = &cobra.Command{
	Use:   "notes <note>...",
	Short: "Names the chords a list of notes could be",
	Long: `Stacks the notes on a staff, then lists exact chord matches and chords
missing exactly one tone, e.g. "E G B" as Cmaj7 (rootless).`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		view := newBuilder().NotesView(strings.Join(args, " "))
		out := cmd.OutOrStdout()
		render.Display{W: out, R: render.TextRenderer{W: out}}.Notes(view)
	},
}
