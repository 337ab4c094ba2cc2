package midi

import (
	"fmt"
	"io"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	ticksPerQuarter = 960
	ticksPerBar     = 4 * ticksPerQuarter
	velocity        = 100
)

// WriteChord writes a single-track file holding the keys as one whole-note
// chord.
func WriteChord(w io.Writer, keys []int) error {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var track smf.Track
	for _, key := range keys {
		if key < 0 || key > 127 {
			return fmt.Errorf("key %v is outside the MIDI range", key)
		}
		track.Add(0, midi.NoteOn(0, uint8(key), velocity))
	}
	for i, key := range keys {
		var delta uint32
		if i == 0 {
			delta = ticksPerBar
		}
		track.Add(delta, midi.NoteOff(0, uint8(key)))
	}
	track.Close(0)

	if err := s.Add(track); err != nil {
		return fmt.Errorf("could not add track: %w", err)
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("could not write midi: %w", err)
	}
	return nil
}
