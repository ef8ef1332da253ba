package timeline

import (
	"testing"

	"github.com/jsphweid/salamidex/model"
	"github.com/jsphweid/salamidex/salami"
	"github.com/stretchr/testify/assert"
)

func event(time float64, chordTokens []string, noteTokens []string) model.Event {
	return model.Event{Time: time, ChordTokens: chordTokens, NoteTokens: noteTokens}
}

func TestDividesDeltaEvenlyAcrossSymbols(t *testing.T) {
	events := []model.Event{
		event(0.0, []string{"C", "G"}, nil),
		event(4.0, []string{"F"}, nil),
		event(8.0, nil, []string{"end"}),
	}

	chords, err := BuildChords(events)

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(chords, []model.ChordInterval{
		{Start: 0.0, End: 2.0, Chord: "C"},
		{Start: 2.0, End: 4.0, Chord: "G"},
		{Start: 4.0, End: 8.0, Chord: "F"},
	})
}

func TestExpandsSpaceSeparatedSymbolsWithinToken(t *testing.T) {
	events := []model.Event{
		event(0.0, []string{"C G", "A"}, nil),
		event(6.0, nil, []string{"end"}),
	}

	chords, err := BuildChords(events)

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(chords, []model.ChordInterval{
		{Start: 0.0, End: 2.0, Chord: "C"},
		{Start: 2.0, End: 4.0, Chord: "G"},
		{Start: 4.0, End: 6.0, Chord: "A"},
	})
}

func TestSustainMarkerRepeatsPreviousLabel(t *testing.T) {
	events := []model.Event{
		event(0.0, []string{"C . D"}, nil),
		event(3.0, []string{"."}, nil),
		event(4.0, nil, []string{"end"}),
	}

	chords, err := BuildChords(events)

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(chords, []model.ChordInterval{
		{Start: 0.0, End: 1.0, Chord: "C"},
		{Start: 1.0, End: 2.0, Chord: "C"},
		{Start: 2.0, End: 3.0, Chord: "D"},
		{Start: 3.0, End: 4.0, Chord: "D"},
	})
}

func TestSustainMarkerWithNoPredecessorIsFatal(t *testing.T) {
	events := []model.Event{
		event(0.0, []string{". C"}, nil),
		event(4.0, nil, []string{"end"}),
	}

	_, err := BuildChords(events)
	assert.NotNil(t, err)
}

func TestLastEventEmitsNoTrailingSentinel(t *testing.T) {
	events := []model.Event{
		event(0.0, []string{"C"}, nil),
		event(5.0, []string{"."}, nil),
	}

	chords, err := BuildChords(events)

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(chords, []model.ChordInterval{
		{Start: 0.0, End: 5.0, Chord: "C"},
	})
}

func TestFinalGroupIntervalClosesAtNextEventTime(t *testing.T) {
	// 1.0/3 is not representable, so accumulating start+delta three
	// times would not land exactly on 1.0
	events := []model.Event{
		event(0.0, []string{"C", "F", "G"}, nil),
		event(1.0, nil, []string{"end"}),
	}

	chords, err := BuildChords(events)

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(chords[2].End, 1.0)
	for i := 0; i < len(chords)-1; i++ {
		assert.Equal(chords[i].End, chords[i+1].Start)
	}
}

func TestSectionsPairFirstTwoNoteTokens(t *testing.T) {
	events := []model.Event{
		event(0.0, nil, []string{"silence"}),
		event(1.0, nil, []string{"A", "intro"}),
		event(10.0, nil, []string{"B", "verse", "(guitar)"}),
		event(20.0, nil, []string{"end"}),
	}

	sections := BuildSections(events)

	assert := assert.New(t)
	assert.Equal(sections, []model.SectionInterval{
		{Start: 1.0, End: 10.0, Letter: "A", Function: "intro"},
		{Start: 10.0, End: 20.0, Letter: "B", Function: "verse"},
	})
}

func TestSingleNoteTokenYieldsNoSection(t *testing.T) {
	events := []model.Event{
		event(0.0, nil, []string{"silence"}),
		event(5.0, nil, []string{"end"}),
	}

	assert.Nil(t, BuildSections(events))
}

func TestSectionsStayContiguousAcrossUnlabeledEvents(t *testing.T) {
	events := []model.Event{
		event(0.0, nil, []string{"A", "intro"}),
		event(4.0, []string{"C"}, nil),
		event(8.0, nil, []string{"B", "verse"}),
		event(12.0, nil, []string{"end"}),
	}

	sections := BuildSections(events)

	assert := assert.New(t)
	assert.Equal(len(sections), 2)
	assert.Equal(sections[0].End, sections[1].Start)
	assert.Equal(sections[1].End, 12.0)
}

func TestCloseAtExtendsFinalInterval(t *testing.T) {
	chords := []model.ChordInterval{{Start: 0.0, End: 5.0, Chord: "C"}}
	chords = CloseAt(chords, 7.5)
	assert.Equal(t, chords[0].End, 7.5)

	sections := []model.SectionInterval{{Start: 0.0, End: 5.0, Letter: "A", Function: "intro"}}
	sections = CloseSectionsAt(sections, 7.5)
	assert.Equal(t, sections[0].End, 7.5)
}

func TestEndToEndTwoTierAlignment(t *testing.T) {
	contents := "# title: Foo\n# artist: Bar\n" +
		"0.0	A, intro, | C | G |\n" +
		"8.0	B, verse, | F . |\n" +
		"16.0	end\n"

	parsed, err := salami.Parse(contents)
	assert := assert.New(t)
	assert.Nil(err)

	chords, err := BuildChords(parsed.Events)
	assert.Nil(err)
	assert.Equal(chords, []model.ChordInterval{
		{Start: 0.0, End: 4.0, Chord: "C"},
		{Start: 4.0, End: 8.0, Chord: "G"},
		{Start: 8.0, End: 12.0, Chord: "F"},
		{Start: 12.0, End: 16.0, Chord: "F"},
	})

	assert.Equal(BuildSections(parsed.Events), []model.SectionInterval{
		{Start: 0.0, End: 8.0, Letter: "A", Function: "intro"},
		{Start: 8.0, End: 16.0, Letter: "B", Function: "verse"},
	})
}
