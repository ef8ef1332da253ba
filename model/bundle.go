package model

// TrackData is the fully derived, serializable form of one track, as
// written to the index binaries and served over HTTP.
type TrackData struct {
	TrackId  string
	Metadata TrackMetadata
	Header   Header
	Chords   []ChordInterval
	Sections []SectionInterval
}
