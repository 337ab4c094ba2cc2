package cmd

import (
	"github.com/joho/godotenv"
	"github.com/jsphweid/voicings/constants"
	"github.com/jsphweid/voicings/logger"
	"github.com/jsphweid/voicings/render"
	"github.com/jsphweid/voicings/theory"
	"github.com/spf13/cobra"
)

var sharps bool

var rootCmd = &cobra.Command{
	Use:   "voicings",
	Short: "Chord symbols and note lists on a staff",
	Long: `Stacks the notes of a chord symbol or a note list into ABC notation and
names the chords a set of notes could be, rootless voicings included.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional
		_ = godotenv.Load()
		return logger.Init(constants.GetSentryDSN(), constants.GetEnvironment())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&sharps, "sharps", false, "spell black keys with sharps (or set NOTATION_SHARPS=true)")
}

func newBuilder() *render.Builder {
	return render.NewBuilder(theory.New(), render.Options{
		Sharps:         sharps || constants.PreferSharps(),
		CardStaffWidth: constants.GetCardStaffWidth(),
	})
}

func Execute() {
	defer logger.Flush()
	cobra.CheckErr(rootCmd.Execute())
}
