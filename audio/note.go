package audio

import (
	"math"
	"strconv"
)

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// FreqToMIDI returns the nearest MIDI note for hz, clamped to 0-127
func FreqToMIDI(hz float64) int {
	if hz <= 0 {
		return 0
	}
	n := int(math.Round(69 + 12*math.Log2(hz/440.0)))
	if n < 0 {
		return 0
	}
	if n > 127 {
		return 127
	}
	return n
}

// NoteName returns scientific pitch notation for the nearest note, e.g. "A4"
func NoteName(hz float64) string {
	if hz <= 0 {
		return "-"
	}
	n := FreqToMIDI(hz)
	octave := n/12 - 1
	return noteNames[n%12] + strconv.Itoa(octave)
}
