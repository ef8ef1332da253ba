// Package salami parses the McGill-Billboard salami_chords.txt format:
// a block of `# key: value` header lines followed by tab-delimited
// timestamped event lines mixing pipe-delimited chord cells and
// free-text section labels / annotator notes.
package salami

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jsphweid/salamidex/model"
)

// Header prefixes are fixed by convention in the hand-authored files,
// including the one-char difference between "# artist: " and the rest.
const (
	titlePrefix  = "title:"
	artistPrefix = "artist:"
	metrePrefix  = "metre:"
	tonicPrefix  = "tonic:"
)

// ParseFile reads and parses one annotation file. A missing file means
// "track has no annotation" and returns (nil, nil); anything else that
// goes wrong is a real error.
func ParseFile(path string) (*model.Annotation, error) {
	dat, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read annotation file: %w", err)
	}
	parsed, err := Parse(string(dat))
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return &parsed, nil
}

// Parse classifies every line as header, data, or noise. Header lines
// are recognized per-line anywhere in the file; lines of length <= 1 or
// without a tab are skipped. A corrupt timestamp is fatal because all
// downstream interval math depends on it.
func Parse(contents string) (model.Annotation, error) {
	var res model.Annotation
	for num, line := range strings.Split(contents, "\n") {
		if strings.HasPrefix(line, "#") {
			parseHeaderLine(line, &res.Header)
			continue
		}
		if len(line) <= 1 {
			continue
		}
		spot := strings.Index(line, "\t")
		if spot <= 0 {
			continue
		}
		time, err := strconv.ParseFloat(line[0:spot], 64)
		if err != nil {
			return res, fmt.Errorf("line %v: bad timestamp %q: %w", num+1, line[0:spot], err)
		}
		evt := parseEvent(time, line[spot+1:])
		if len(evt.ChordTokens) == 0 && len(evt.NoteTokens) == 0 {
			continue
		}
		res.Events = append(res.Events, evt)
	}
	return res, nil
}

func parseHeaderLine(line string, h *model.Header) {
	if len(line) < 2 {
		return
	}
	rest := line[2:]
	switch {
	case strings.HasPrefix(rest, titlePrefix):
		h.Title = from(line, 9)
	case strings.HasPrefix(rest, artistPrefix):
		h.Artist = from(line, 10)
	case strings.HasPrefix(rest, metrePrefix):
		h.Meter = append(h.Meter, from(line, 9))
	case strings.HasPrefix(rest, tonicPrefix):
		h.Tonic = append(h.Tonic, from(line, 9))
	}
}

// from is line[i:] that tolerates a hand-authored line cut short.
func from(line string, i int) string {
	if len(line) < i {
		return ""
	}
	return line[i:]
}

func parseEvent(time float64, rest string) model.Event {
	evt := model.Event{Time: time}
	for _, item := range strings.Split(rest, ", ") {
		chords := scanChordCells(item)
		if len(chords) > 0 {
			evt.ChordTokens = append(evt.ChordTokens, chords...)
		} else {
			evt.NoteTokens = append(evt.NoteTokens, item)
		}
	}
	return evt
}

// scanChordCells extracts the contents of every `| ... |` cell in a
// segment. Plain index scanning instead of a regex so the rule "segment
// has at least one cell -> chord, else note" stays auditable and can't
// backtrack. Cells share their pipes: in `| A | B |` the pipe closing A
// opens B, so the scan resumes at the closing ` |`, not after it.
func scanChordCells(s string) []string {
	var res []string
	i := 0
	for {
		open := strings.Index(s[i:], "| ")
		if open < 0 {
			break
		}
		open += i
		shut := strings.Index(s[open+2:], " |")
		if shut < 0 {
			break
		}
		shut += open + 2
		res = append(res, s[open+2:shut])
		i = shut
	}
	return res
}
