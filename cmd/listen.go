package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/bep/debounce"
	"github.com/jsphweid/voicings/constants"
	"github.com/jsphweid/voicings/logger"
	"github.com/jsphweid/voicings/midi"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen [port]",
	Short: "Names the chords held on a MIDI keyboard",
	Long:  `Listens to a MIDI input port (0 by default) and names the held notes each time they settle.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var port int
		if len(args) == 1 {
			arg0, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("port must be a number: %w", err)
			}
			port = arg0
		}
		return listen(cmd, port)
	},
}

func listen(cmd *cobra.Command, port int) error {
	defer gomidi.CloseDriver()
	in, err := gomidi.InPort(port)
	if err != nil {
		return fmt.Errorf("can't find midi input %v: %w", port, err)
	}

	b := newBuilder()
	held := midi.NewHeld()
	debounced := debounce.New(constants.GetListenDebounce())
	out := cmd.OutOrStdout()

	analyze := func() {
		notes := held.Notes()
		if len(notes) == 0 {
			return
		}
		names := midi.PitchNames(notes, b.Sharps())
		view := b.NotesView(strings.Join(names, " "))
		fmt.Fprintf(out, "%-24s %s\n", strings.Join(names, " "), view.Summary)
		if view.Other != "" {
			fmt.Fprintf(out, "%-24s %s\n", "", view.Other)
		}
	}

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			held.Press(key)
			debounced(analyze)
		case msg.GetNoteEnd(&ch, &key):
			held.Release(key)
			debounced(analyze)
		}
	}, gomidi.HandleError(func(err error) {
		logger.Error("MIDI input failed", err, logger.Fields{"port": port})
	}))
	if err != nil {
		return fmt.Errorf("could not listen to %v: %w", in, err)
	}
	defer stop()

	logger.Info("Listening for chords", logger.Fields{"port": in.String()})
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	<-interrupt
	return nil
}
