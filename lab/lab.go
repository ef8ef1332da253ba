// Package lab reads the pre-rendered chord transcriptions that ship
// next to each salami_chords.txt: one `start\tend\tlabel` triple per
// line, one file per reduction flavor.
package lab

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jsphweid/salamidex/model"
)

// ReadFile parses one .lab file. Missing file returns (nil, nil) so
// callers can tell "no transcription" apart from a malformed one.
func ReadFile(path string) ([]model.ChordInterval, error) {
	dat, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read lab file: %w", err)
	}

	var res []model.ChordInterval
	for num, line := range strings.Split(string(dat), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%v line %v: expected 3 tab-delimited columns, got %v", path, num+1, len(parts))
		}
		start, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%v line %v: bad start time: %w", path, num+1, err)
		}
		end, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%v line %v: bad end time: %w", path, num+1, err)
		}
		res = append(res, model.ChordInterval{Start: start, End: end, Chord: parts[2]})
	}
	return res, nil
}
