// Package render writes a chord interval sequence out as a standard
// MIDI file so an annotation can be auditioned without the audio.
package render

import (
	"time"

	"github.com/jsphweid/salamidex/model"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	tempoBPM = 120.0
	velocity = 90
	channel  = 0
)

func ticksFor(clock smf.MetricTicks, seconds float64) uint32 {
	return clock.Ticks(tempoBPM, time.Duration(seconds*float64(time.Second)))
}

// ToSMF lays the intervals onto a single track, one note-on/note-off
// block per interval. Intervals whose symbol yields no notes ("N" etc)
// just advance the clock.
func ToSMF(chords []model.ChordInterval) *smf.SMF {
	clock := smf.MetricTicks(960)
	s := smf.New()
	s.TimeFormat = clock

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(tempoBPM))

	var cursor float64
	for _, c := range chords {
		notes := SymbolNotes(c.Chord)
		if len(notes) == 0 {
			continue
		}
		delta := ticksFor(clock, c.Start-cursor)
		for _, n := range notes {
			tr.Add(delta, midi.NoteOn(channel, n, velocity))
			delta = 0
		}
		delta = ticksFor(clock, c.End-c.Start)
		for _, n := range notes {
			tr.Add(delta, midi.NoteOff(channel, n))
			delta = 0
		}
		cursor = c.End
	}
	tr.Close(0)
	s.Add(tr)
	return s
}

func WriteMidiFile(chords []model.ChordInterval, path string) error {
	return ToSMF(chords).WriteFile(path)
}
