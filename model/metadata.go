package model

// TrackMetadata mirrors one row of the billboard chart index. Pointers
// because any field can be absent in the store; a track with no row at
// all gets UnknownMetadata.
type TrackMetadata struct {
	ChartDate    *string `json:"chart_date"`
	TargetRank   *int    `json:"target_rank"`
	ActualRank   *int    `json:"actual_rank"`
	Title        *string `json:"title"`
	Artist       *string `json:"artist"`
	PeakRank     *int    `json:"peak_rank"`
	WeeksOnChart *int    `json:"weeks_on_chart"`
}

func UnknownMetadata() TrackMetadata {
	return TrackMetadata{}
}
