package cmd

import (
	"fmt"

	"github.com/jsphweid/salamidex/constants"
	"github.com/jsphweid/salamidex/dataset"
	"github.com/jsphweid/salamidex/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a corpus report",
	Long:  `Creates a corpus report`,
	Run: func(cmd *cobra.Command, args []string) {
		report()
	},
}

type corpusReport struct {
	numTracks        int64
	numMissing       int64
	numBad           int64
	chordsPerTrack   []int64
	sectionsPerTrack []int64
	totalSeconds     float64
}

func analyzeCorpus() corpusReport {
	var report corpusReport

	tracks := dataset.Load(constants.GetDataHome(), nil)
	ids := util.GetKeysSorted(tracks)
	for _, id := range ids {
		report.numTracks += 1
		t := tracks[id]

		ann, err := t.Annotation()
		if err != nil {
			report.numBad += 1
			fmt.Printf("Bad annotation %v: %v\n", id, err)
			continue
		}
		if ann == nil {
			report.numMissing += 1
			continue
		}

		chords, err := t.Chords()
		if err != nil {
			report.numBad += 1
			fmt.Printf("Bad annotation %v: %v\n", id, err)
			continue
		}
		sections, _ := t.Sections()

		report.chordsPerTrack = append(report.chordsPerTrack, int64(len(chords)))
		report.sectionsPerTrack = append(report.sectionsPerTrack, int64(len(sections)))
		if len(sections) > 0 {
			report.totalSeconds += sections[len(sections)-1].End
		}
	}

	return report
}

func report() {
	r := analyzeCorpus()
	fmt.Printf("numTracks: %v\n", r.numTracks)
	fmt.Printf("numMissing: %v\n", r.numMissing)
	fmt.Printf("numBad: %v\n", r.numBad)
	fmt.Printf("numChords: %v\n", util.Sum(r.chordsPerTrack))
	fmt.Printf("numSections: %v\n", util.Sum(r.sectionsPerTrack))
	fmt.Printf("totalAnnotatedHours: %v\n", r.totalSeconds/3600)
}
