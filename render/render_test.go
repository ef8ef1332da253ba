package render

import (
	"testing"

	"github.com/jsphweid/salamidex/model"
	"github.com/stretchr/testify/assert"
)

func TestSymbolNotesRootsAndQualities(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(SymbolNotes("C:maj"), []uint8{48, 52, 55})
	assert.Equal(SymbolNotes("C:min"), []uint8{48, 51, 55})
	assert.Equal(SymbolNotes("C"), []uint8{48, 52, 55})
	assert.Equal(SymbolNotes("Eb:5"), []uint8{51, 58})
	assert.Equal(SymbolNotes("F#:7"), []uint8{54, 58, 61, 64})
	assert.Equal(SymbolNotes("Cb:maj")[0], uint8(59))
}

func TestSymbolNotesStripsExtensionsAndBass(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(SymbolNotes("C:7(#9)"), SymbolNotes("C:7"))
	assert.Equal(SymbolNotes("G:maj/5"), SymbolNotes("G:maj"))
}

func TestSymbolNotesSilence(t *testing.T) {
	assert := assert.New(t)
	assert.Nil(SymbolNotes("N"))
	assert.Nil(SymbolNotes("&pause"))
	assert.Nil(SymbolNotes(""))
}

func TestUnknownQualityFallsBackToMajor(t *testing.T) {
	assert.Equal(t, SymbolNotes("C:weird"), SymbolNotes("C:maj"))
}

func TestToSMFLaysOutNoteOnOffPairs(t *testing.T) {
	chords := []model.ChordInterval{
		{Start: 0.0, End: 1.0, Chord: "C:maj"},
		{Start: 1.0, End: 2.0, Chord: "N"},
		{Start: 2.0, End: 3.0, Chord: "G:maj"},
	}

	s := ToSMF(chords)

	assert := assert.New(t)
	assert.Equal(len(s.Tracks), 1)

	// tempo meta + 3 ons + 3 offs per sounding chord + end-of-track
	assert.Equal(len(s.Tracks[0]), 1+6+6+1)

	// the N chord only advances the clock: the second chord's note-ons
	// arrive 2 beats (silence included) after the first chord's offs
	var deltas []uint32
	for _, evt := range s.Tracks[0] {
		deltas = append(deltas, evt.Delta)
	}
	clock := uint32(960 * 2) // one second at 120bpm, 960 ticks per beat
	assert.Equal(deltas[1], uint32(0))    // first note-on at 0
	assert.Equal(deltas[4], clock)        // offs after 1s
	assert.Equal(deltas[7], clock)        // next ons 1s later (N skipped)
}
