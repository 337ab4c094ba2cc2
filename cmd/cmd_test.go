package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/voicings/midi"
	"github.com/jsphweid/voicings/model"
	"github.com/stretchr/testify/assert"
)

func run(t *testing.T, args ...string) string {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		midiOut = ""
		sharps = false
	})
	assert.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestChordCommand(t *testing.T) {
	out := run(t, "chord", "Cmaj7")
	assert.Equal(t, "    X:1\n    K:C\n    [CEGB]\n", out)
}

func TestChordCommandInvalid(t *testing.T) {
	assert.Equal(t, "Invalid chord symbol\n", run(t, "chord", "Xyz123"))
}

func TestChordCommandWritesMidi(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "cmaj7.mid")
	run(t, "chord", "Cmaj7", "--midi", path)

	s, err := midi.ReadMidiFile(path)
	assert.NoError(err)
	assert.Equal(model.Notes{60, 64, 67, 71}, midi.Sonorities(s)[0].Notes)
}

func TestNotesCommand(t *testing.T) {
	assert := assert.New(t)
	out := run(t, "notes", "E", "G", "B")
	assert.Contains(out, "    [EGB]\n")
	assert.Contains(out, "Chords: Em\n")
	assert.Contains(out, "Other Possible Chords: Cmaj7 (rootless)")
	assert.Contains(out, "== other-chords\nCmaj7\n    X:1\n    K:C\n    [CEGB]\n")
}

func TestNotesCommandSharps(t *testing.T) {
	out := run(t, "notes", "--sharps", "C#", "E", "G#")
	assert.Contains(t, out, "    [^CE^G]\n")
}

func TestFileCommand(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "c.mid"))
	assert.NoError(err)
	assert.NoError(midi.WriteChord(f, []int{64, 67, 71}))
	assert.NoError(f.Close())

	out := run(t, "file", dir)
	assert.Contains(out, "Processing 1 of 1 midi files")
	assert.Contains(out, "E4 G4 B4")
	assert.Contains(out, "Chords: Em")
	assert.Contains(out, "Cmaj7 (rootless)")
}
