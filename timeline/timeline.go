// Package timeline turns a parsed annotation's event list into two
// independent, gap-free interval sequences: chords and sections. Both
// distribute the gap to the next event's timestamp across the labels
// found at each event.
package timeline

import (
	"fmt"
	"strings"

	"github.com/jsphweid/salamidex/model"
)

// SustainMarker means "repeat the previous chord label".
const SustainMarker = "."

// BuildChords emits one interval per chord symbol. A chord token can
// hold several space-separated symbols sharing one timestamp cell, so
// tokens are expanded before the event's dt is divided evenly among
// them. The last interval of each event closes at the next event's
// literal timestamp rather than an accumulated sum, so repeated float
// addition can't drift the boundary. The file's last event has dt = 0
// and emits nothing (no trailing sentinel).
func BuildChords(events []model.Event) ([]model.ChordInterval, error) {
	var res []model.ChordInterval
	var prev string
	havePrev := false

	for i, e := range events {
		symbols, err := expandSymbols(e.ChordTokens, &prev, &havePrev)
		if err != nil {
			return nil, fmt.Errorf("event at %v: %w", e.Time, err)
		}
		if len(symbols) == 0 || i == len(events)-1 {
			continue
		}
		next := events[i+1].Time
		perChord := (next - e.Time) / float64(len(symbols))
		start := e.Time
		for k, sym := range symbols {
			end := start + perChord
			if k == len(symbols)-1 {
				end = next
			}
			res = append(res, model.ChordInterval{Start: start, End: end, Chord: sym})
			start = end
		}
	}
	return res, nil
}

func expandSymbols(tokens []string, prev *string, havePrev *bool) ([]string, error) {
	var symbols []string
	for _, tok := range tokens {
		for _, sym := range strings.Fields(tok) {
			if sym == SustainMarker {
				if !*havePrev {
					return nil, fmt.Errorf("sustain marker %q with no preceding chord", SustainMarker)
				}
				sym = *prev
			}
			*prev = sym
			*havePrev = true
			symbols = append(symbols, sym)
		}
	}
	return symbols, nil
}

// BuildSections labels an event when it carries at least two note
// tokens (letter id, then function name); extra tokens are annotator
// notes and are dropped. Events with fewer than two are skipped, not
// emitted as singletons. Each labeled interval runs to the next labeled
// event; the last one closes at the final event's timestamp, which the
// annotators use as the end-of-song marker, so the sequence stays
// contiguous without a synthetic sentinel.
func BuildSections(events []model.Event) []model.SectionInterval {
	var res []model.SectionInterval
	for i, e := range events {
		if len(e.NoteTokens) < 2 {
			continue
		}
		s := model.SectionInterval{
			Start:    e.Time,
			End:      events[len(events)-1].Time,
			Letter:   e.NoteTokens[0],
			Function: e.NoteTokens[1],
		}
		for _, later := range events[i+1:] {
			if len(later.NoteTokens) >= 2 {
				s.End = later.Time
				break
			}
		}
		res = append(res, s)
	}
	return res
}

// CloseAt re-ends the final interval at a caller-supplied track
// duration, for callers that need full-duration coverage beyond the
// last annotated boundary.
func CloseAt(chords []model.ChordInterval, end float64) []model.ChordInterval {
	if len(chords) > 0 && end > chords[len(chords)-1].Start {
		chords[len(chords)-1].End = end
	}
	return chords
}

// CloseSectionsAt is CloseAt for the section tier.
func CloseSectionsAt(sections []model.SectionInterval, end float64) []model.SectionInterval {
	if len(sections) > 0 && end > sections[len(sections)-1].Start {
		sections[len(sections)-1].End = end
	}
	return sections
}
