package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jsphweid/voicings/chord"
	"github.com/jsphweid/voicings/constants"
	"github.com/jsphweid/voicings/logger"
	"github.com/jsphweid/voicings/midi"
	"github.com/jsphweid/voicings/render"
	"github.com/jsphweid/voicings/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(fileCmd)
}

var fileCmd = &cobra.Command{
	Use:   "file <path> [max]",
	Short: "Names the chords sounding in MIDI files",
	Long:  `Reads a .mid file, or every .mid file under a directory (up to max), and names each distinct sonority.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var maxNum int
		if len(args) == 2 {
			arg1, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("max must be a number: %w", err)
			}
			maxNum = arg1
		}

		paths, err := midiPaths(args[0], maxNum)
		if err != nil {
			return err
		}

		b := newBuilder()
		for i, path := range paths {
			fmt.Fprintf(cmd.OutOrStdout(), "Processing %v of %v midi files: %v\n", i+1, len(paths), path)
			analyzeMidiFile(cmd, b, path)
		}
		return nil
	},
}

func midiPaths(path string, maxNum int) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	return util.GatherAllMidiPaths(path, maxNum)
}

func analyzeMidiFile(cmd *cobra.Command, b *render.Builder, path string) {
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		logger.Warn("Skipping midi file", logger.Fields{"path": path, "error": err.Error()})
		return
	}

	seen := make(map[string]bool)
	for _, s := range midi.Sonorities(parsed) {
		// ignore single notes and clusters
		if len(s.Notes) < 2 || len(s.Notes) > constants.MaxSonoritySize {
			continue
		}
		key := chord.CreateChordKey(s.Notes)
		if seen[key] {
			continue
		}
		seen[key] = true

		names := midi.PitchNames(s.Notes, b.Sharps())
		view := b.NotesView(strings.Join(names, " "))
		fmt.Fprintf(cmd.OutOrStdout(), "  %6dms %-24s %s\n", s.Offset, strings.Join(names, " "), view.Summary)
		if view.Other != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "  %8s %-24s %s\n", "", "", view.Other)
		}
	}
	logger.Debug("Analyzed midi file", logger.Fields{"path": path, "sonorities": len(seen)})
}
