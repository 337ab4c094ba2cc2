package theory

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jsphweid/voicings/model"
)

var intervalRegex = regexp.MustCompile(`^(\d+)(P|M|m|d+|A+)$`)

var majorScale = []int{0, 2, 4, 5, 7, 9, 11}

// Interval is a distance in letter steps and semitones, e.g. 3M = {2, 4}.
type Interval struct {
	Name      string
	Steps     int
	Semitones int
}

func isPerfectable(step int) bool {
	s := step % 7
	return s == 0 || s == 3 || s == 4
}

// ParseInterval reads shorthand like "1P", "3m", "5d", "9A" or "13M".
func ParseInterval(name string) (Interval, error) {
	m := intervalRegex.FindStringSubmatch(name)
	if m == nil {
		return Interval{}, fmt.Errorf("invalid interval %q", name)
	}
	num, err := strconv.Atoi(m[1])
	if err != nil || num < 1 {
		return Interval{}, fmt.Errorf("invalid interval number %q", name)
	}

	step := num - 1
	semis := majorScale[step%7] + 12*(step/7)
	quality := m[2]
	perfectable := isPerfectable(step)

	switch {
	case quality == "P" && perfectable, quality == "M" && !perfectable:
	case quality == "m" && !perfectable:
		semis--
	case strings.HasPrefix(quality, "A"):
		semis += len(quality)
	case strings.HasPrefix(quality, "d"):
		semis -= len(quality)
		if !perfectable {
			semis--
		}
	default:
		return Interval{}, fmt.Errorf("quality %q does not fit interval %q", quality, name)
	}

	return Interval{Name: name, Steps: step, Semitones: semis}, nil
}

// Transpose spells the pitch class found an interval above n: C# + 3M = E#.
func Transpose(n model.Note, ivl Interval) model.Note {
	from := strings.Index(letters, n.Letter)
	to := mod(from+ivl.Steps, 7)
	target := letterSemitones[n.Letter] + alteration(n.Accidental) + ivl.Semitones
	alt := mod(target-majorScale[to], 12)
	if alt > 6 {
		alt -= 12
	}
	return model.Note{
		Letter:     letters[to : to+1],
		Accidental: accidentalFor(alt),
	}
}
