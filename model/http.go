package model

type TrackResponse struct {
	TrackId  string        `json:"track_id"`
	Metadata TrackMetadata `json:"metadata"`
	Header   *Header       `json:"header,omitempty"`
}

type ChordsResponse struct {
	TrackId string          `json:"track_id"`
	Flavor  string          `json:"flavor"`
	Chords  []ChordInterval `json:"chords"`
}

type SectionsResponse struct {
	TrackId  string            `json:"track_id"`
	Sections []SectionInterval `json:"sections"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
