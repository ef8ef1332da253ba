package model

// Header holds the hand-authored metadata lines at the top of a
// salami_chords.txt file. Metre and tonic can change mid-song so they
// accumulate in file order.
type Header struct {
	Title  string
	Artist string
	Meter  []string
	Tonic  []string
}

// Event is one tab-delimited data line: a timestamp plus whatever chord
// cells and free-text notes shared it.
type Event struct {
	Time        float64
	ChordTokens []string
	NoteTokens  []string
}

type Annotation struct {
	Header Header
	Events []Event
}
