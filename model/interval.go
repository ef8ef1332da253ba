package model

// ChordInterval is one chord label with its start/end boundaries in
// seconds. Sequences of these are contiguous: End of one equals Start
// of the next.
type ChordInterval struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Chord string  `json:"chord"`
}

// SectionInterval is one structural section, labeled with the
// annotator's letter id (A, B, ...) and function name (intro, verse...).
type SectionInterval struct {
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Letter   string  `json:"letter"`
	Function string  `json:"function"`
}
