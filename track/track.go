// Package track ties one billboard chart entry together: its chart
// metadata, its annotation file paths, and the interval sequences
// derived from them. Derived data is parsed once on first access and
// memoized; Track values are safe for concurrent readers after that.
package track

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/jsphweid/salamidex/constants"
	"github.com/jsphweid/salamidex/lab"
	"github.com/jsphweid/salamidex/model"
	"github.com/jsphweid/salamidex/salami"
	"github.com/jsphweid/salamidex/timeline"
)

// MetadataProvider supplies chart records for track ids. Ids with no
// record must simply be absent from the result.
type MetadataProvider interface {
	TrackMetadatas(trackIds []string) map[string]model.TrackMetadata
}

// PadId normalizes a numeric track id to the 4-digit directory name
// used in the corpus layout ("3" -> "0003").
func PadId(trackId string) string {
	if len(trackId) >= 4 {
		return trackId
	}
	return strings.Repeat("0", 4-len(trackId)) + trackId
}

func SalamiPath(dataHome string, trackId string) string {
	return filepath.Join(dataHome, constants.AnnotationsDir, PadId(trackId), constants.AnnotationFilename)
}

func LabPath(dataHome string, trackId string, flavor string) string {
	return filepath.Join(dataHome, constants.AnnotationsDir, PadId(trackId), flavor+".lab")
}

type Track struct {
	Id       string
	Metadata model.TrackMetadata

	dataHome string

	once       sync.Once
	annotation *model.Annotation
	chords     []model.ChordInterval
	sections   []model.SectionInterval
	err        error

	labMu     sync.Mutex
	labChords map[string][]model.ChordInterval
}

func New(trackId string, dataHome string, metadata model.TrackMetadata) *Track {
	return &Track{Id: trackId, Metadata: metadata, dataHome: dataHome}
}

// load parses the salami file and derives both tiers in one shot. The
// sync.Once guarantees at-most-once construction under concurrent
// first access; results are immutable afterwards.
func (t *Track) load() {
	t.once.Do(func() {
		ann, err := salami.ParseFile(SalamiPath(t.dataHome, t.Id))
		if err != nil {
			t.err = err
			return
		}
		if ann == nil {
			return
		}
		t.annotation = ann
		t.chords, t.err = timeline.BuildChords(ann.Events)
		if t.err != nil {
			return
		}
		t.sections = timeline.BuildSections(ann.Events)
	})
}

// Annotation returns the parsed file, or (nil, nil) when the track has
// no annotation on disk.
func (t *Track) Annotation() (*model.Annotation, error) {
	t.load()
	return t.annotation, t.err
}

func (t *Track) Header() (*model.Header, error) {
	t.load()
	if t.annotation == nil {
		return nil, t.err
	}
	return &t.annotation.Header, t.err
}

// Chords is the chord tier derived from the salami annotation itself.
func (t *Track) Chords() ([]model.ChordInterval, error) {
	t.load()
	return t.chords, t.err
}

func (t *Track) Sections() ([]model.SectionInterval, error) {
	t.load()
	return t.sections, t.err
}

// LabChords loads one of the pre-rendered lab reductions, memoized per
// flavor. Missing lab file -> (nil, nil), same as the annotation.
func (t *Track) LabChords(flavor string) ([]model.ChordInterval, error) {
	t.labMu.Lock()
	defer t.labMu.Unlock()
	if chords, ok := t.labChords[flavor]; ok {
		return chords, nil
	}
	chords, err := lab.ReadFile(LabPath(t.dataHome, t.Id, flavor))
	if err != nil {
		return nil, err
	}
	if t.labChords == nil {
		t.labChords = make(map[string][]model.ChordInterval)
	}
	t.labChords[flavor] = chords
	return chords, nil
}

// Title prefers the chart index's title and falls back to the
// annotation header.
func (t *Track) Title() string {
	if t.Metadata.Title != nil {
		return *t.Metadata.Title
	}
	if header, err := t.Header(); err == nil && header != nil {
		return header.Title
	}
	return ""
}

func (t *Track) Artist() string {
	if t.Metadata.Artist != nil {
		return *t.Metadata.Artist
	}
	if header, err := t.Header(); err == nil && header != nil {
		return header.Artist
	}
	return ""
}
