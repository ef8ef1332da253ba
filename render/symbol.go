package render

import "strings"

var pitchClasses = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// Intervals in semitones above the root for the qualities that show up
// in the corpus. Unlisted qualities fall back to a major triad, which
// is close enough for auditioning.
var qualities = map[string][]int{
	"maj":     {0, 4, 7},
	"min":     {0, 3, 7},
	"7":       {0, 4, 7, 10},
	"maj7":    {0, 4, 7, 11},
	"min7":    {0, 3, 7, 10},
	"minmaj7": {0, 3, 7, 11},
	"maj6":    {0, 4, 7, 9},
	"min6":    {0, 3, 7, 9},
	"5":       {0, 7},
	"1":       {0},
	"sus2":    {0, 2, 7},
	"sus4":    {0, 5, 7},
	"aug":     {0, 4, 8},
	"dim":     {0, 3, 6},
	"dim7":    {0, 3, 6, 9},
	"hdim7":   {0, 3, 6, 10},
	"9":       {0, 4, 7, 10, 14},
	"maj9":    {0, 4, 7, 11, 14},
	"min9":    {0, 3, 7, 10, 14},
	"11":      {0, 4, 7, 10, 14, 17},
	"13":      {0, 4, 7, 10, 14, 21},
}

const baseNote = 48 // C3

// SymbolNotes maps a Harte chord symbol like "Eb:min7" or "C:7(#9)/5"
// to MIDI note numbers. Parenthesized extensions and slash basses are
// dropped. "N" (no chord) and anything unrooted yields no notes.
func SymbolNotes(symbol string) []uint8 {
	if symbol == "" || symbol == "N" || symbol == "X" || symbol == "&pause" {
		return nil
	}

	rest := symbol
	if i := strings.Index(rest, "("); i >= 0 {
		end := strings.Index(rest, ")")
		if end > i {
			rest = rest[:i] + rest[end+1:]
		} else {
			rest = rest[:i]
		}
	}
	if i := strings.Index(rest, "/"); i >= 0 {
		rest = rest[:i]
	}

	root := rest
	quality := "maj"
	if i := strings.Index(rest, ":"); i >= 0 {
		root = rest[:i]
		if q := rest[i+1:]; q != "" {
			quality = q
		}
	}
	if root == "" {
		return nil
	}

	pc, ok := pitchClasses[root[0]]
	if !ok {
		return nil
	}
	for _, mod := range root[1:] {
		switch mod {
		case '#':
			pc++
		case 'b':
			pc--
		}
	}
	pc = ((pc % 12) + 12) % 12

	intervals, ok := qualities[quality]
	if !ok {
		intervals = qualities["maj"]
	}

	var notes []uint8
	for _, iv := range intervals {
		notes = append(notes, uint8(baseNote+pc+iv))
	}
	return notes
}
