// Package jams serializes a track's derived timelines into a generic
// timed-annotation interchange document: namespaced annotations whose
// observations are (time, duration, value, confidence) records. The
// document schema belongs to this package, not the core parsers.
package jams

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jsphweid/salamidex/constants"
	"github.com/jsphweid/salamidex/model"
	"github.com/jsphweid/salamidex/track"
)

type Observation struct {
	Time       float64  `json:"time"`
	Duration   float64  `json:"duration"`
	Value      any      `json:"value"`
	Confidence *float64 `json:"confidence"`
}

type Annotation struct {
	Id        string            `json:"id"`
	Namespace string            `json:"namespace"`
	Meta      map[string]string `json:"annotation_metadata,omitempty"`
	Data      []Observation     `json:"data"`
}

type FileMetadata struct {
	Title    string  `json:"title"`
	Artist   string  `json:"artist"`
	Duration float64 `json:"duration"`
}

type Doc struct {
	FileMetadata FileMetadata `json:"file_metadata"`
	Annotations  []Annotation `json:"annotations"`
}

func chordAnnotation(flavor string, chords []model.ChordInterval) Annotation {
	ann := Annotation{
		Id:        uuid.New().String(),
		Namespace: "chord",
		Meta:      map[string]string{"flavor": flavor},
	}
	for _, c := range chords {
		ann.Data = append(ann.Data, Observation{
			Time:     c.Start,
			Duration: c.End - c.Start,
			Value:    c.Chord,
		})
	}
	return ann
}

// FromTrack collects the salami-derived chord tier, every lab
// reduction that exists on disk, and the section tier. Missing lab
// flavors are skipped silently; a malformed one fails the export.
func FromTrack(t *track.Track) (*Doc, error) {
	var doc Doc

	chords, err := t.Chords()
	if err != nil {
		return nil, err
	}
	if len(chords) > 0 {
		doc.Annotations = append(doc.Annotations, chordAnnotation("salami", chords))
	}

	for _, flavor := range constants.LabFlavors {
		labChords, err := t.LabChords(flavor)
		if err != nil {
			return nil, err
		}
		if len(labChords) > 0 {
			doc.Annotations = append(doc.Annotations, chordAnnotation(flavor, labChords))
		}
	}

	sections, err := t.Sections()
	if err != nil {
		return nil, err
	}
	segments := Annotation{Id: uuid.New().String(), Namespace: "segment_open"}
	for _, s := range sections {
		segments.Data = append(segments.Data, Observation{
			Time:     s.Start,
			Duration: s.End - s.Start,
			Value:    []string{s.Letter, s.Function},
		})
	}
	if len(segments.Data) > 0 {
		doc.Annotations = append(doc.Annotations, segments)
	}

	doc.FileMetadata.Title = t.Title()
	doc.FileMetadata.Artist = t.Artist()
	for _, s := range sections {
		if s.End > doc.FileMetadata.Duration {
			doc.FileMetadata.Duration = s.End
		}
	}
	for _, c := range chords {
		if c.End > doc.FileMetadata.Duration {
			doc.FileMetadata.Duration = c.End
		}
	}

	return &doc, nil
}

func (d *Doc) Write(path string) error {
	dat, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal jams doc: %w", err)
	}
	return os.WriteFile(path, dat, 0666)
}
