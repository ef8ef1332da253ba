// Package dataset discovers tracks on disk and assembles them with
// their chart metadata.
package dataset

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/jsphweid/salamidex/constants"
	"github.com/jsphweid/salamidex/model"
	"github.com/jsphweid/salamidex/track"
	"github.com/jsphweid/salamidex/util"
)

// TrackIds walks <dataHome>/annotations and derives ids from the
// 4-digit directory names, unpadded ("0003" -> "3") to match the chart
// index keys.
func TrackIds(dataHome string) []string {
	paths := util.GatherAllAnnotationPaths(filepath.Join(dataHome, constants.AnnotationsDir), 0)
	var res []string
	for _, p := range paths {
		dir := filepath.Base(filepath.Dir(p))
		id := strings.TrimLeft(dir, "0")
		if id == "" {
			id = "0"
		}
		res = append(res, id)
	}
	sort.Strings(res)
	return res
}

// metadata stores cap batch lookups, so fetch in tens
const metadataBatchSize = 10

// Load builds a Track per discovered annotation. Tracks the provider
// doesn't know get the all-null metadata record. A nil provider means
// "no metadata store configured" and everything gets the sentinel.
func Load(dataHome string, provider track.MetadataProvider) map[string]*track.Track {
	ids := TrackIds(dataHome)

	metadatas := make(map[string]model.TrackMetadata)
	if provider != nil {
		for start := 0; start < len(ids); start += metadataBatchSize {
			end := start + metadataBatchSize
			if end > len(ids) {
				end = len(ids)
			}
			for id, m := range provider.TrackMetadatas(ids[start:end]) {
				metadatas[id] = m
			}
		}
	}

	res := make(map[string]*track.Track)
	for _, id := range ids {
		metadata, ok := metadatas[id]
		if !ok {
			metadata = model.UnknownMetadata()
		}
		res[id] = track.New(id, dataHome, metadata)
	}
	return res
}
