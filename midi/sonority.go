package midi

import (
	"sort"
	"sync"

	"github.com/jsphweid/voicings/model"
	"github.com/jsphweid/voicings/theory"
	"github.com/jsphweid/voicings/util"
	"gitlab.com/gomidi/midi/v2/smf"
)

type reducedEvent struct {
	// microseconds
	offset    int64
	isNoteOff bool
	note      uint8
}

func sounding(pressed map[uint8]bool) model.Notes {
	notes := make(model.Notes, 0, len(pressed))
	for note := range pressed {
		notes = append(notes, note)
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i] < notes[j]
	})
	return notes
}

// Sonorities returns what is sounding after every change in the file,
// earliest first. Silences are skipped.
func Sonorities(s *smf.SMF) []model.Sonority {
	var reducedEvents []reducedEvent

	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			// note on with velocity 0 is a release
			switch {
			case event.Message.GetNoteStart(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, reducedEvent{offset: s.TimeAt(absTicks), note: key})
			case event.Message.GetNoteEnd(&channel, &key):
				reducedEvents = append(reducedEvents, reducedEvent{offset: s.TimeAt(absTicks), isNoteOff: true, note: key})
			}
		}
	}

	// prioritize smaller offset values then note off
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].offset != reducedEvents[j].offset {
			return reducedEvents[i].offset < reducedEvents[j].offset
		}
		return reducedEvents[i].isNoteOff && !reducedEvents[j].isNoteOff
	})

	offsetToNotes := make(map[int64]model.Notes)
	pressed := make(map[uint8]bool)
	for _, evt := range reducedEvents {
		if evt.isNoteOff {
			delete(pressed, evt.note)
		} else {
			pressed[evt.note] = true
		}
		offsetToNotes[evt.offset] = sounding(pressed)
	}

	var res []model.Sonority
	for _, offset := range util.GetKeys(offsetToNotes) {
		notes := offsetToNotes[offset]
		if len(notes) == 0 {
			continue
		}
		// millis is plenty and fits 1200 hours in 32 bits
		res = append(res, model.Sonority{Offset: uint32(offset / 1000), Notes: notes})
	}
	return res
}

// PitchNames spells MIDI keys as note names with octaves, e.g. "Eb4".
func PitchNames(notes model.Notes, sharps bool) []string {
	res := make([]string, 0, len(notes))
	for _, n := range notes {
		res = append(res, theory.FromMidi(int(n), sharps).Name())
	}
	return res
}

// Held tracks the keys held down on a live input.
type Held struct {
	mu   sync.Mutex
	keys map[uint8]bool
}

func NewHeld() *Held {
	return &Held{keys: make(map[uint8]bool)}
}

func (h *Held) Press(key uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.keys[key] = true
}

func (h *Held) Release(key uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.keys, key)
}

// Notes returns the held keys, lowest first.
func (h *Held) Notes() model.Notes {
	h.mu.Lock()
	defer h.mu.Unlock()
	return sounding(h.keys)
}
