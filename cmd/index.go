package cmd

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/salamidex/constants"
	"github.com/jsphweid/salamidex/dataset"
	"github.com/jsphweid/salamidex/model"
	"github.com/jsphweid/salamidex/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Parses the whole corpus into binaries for serving",
	Long:  `Parses the whole corpus into binaries for serving`,
	Run: func(cmd *cobra.Command, args []string) {
		var maxNum int
		if len(args) == 1 {
			arg1, err := strconv.Atoi(args[0])
			if err != nil {
				panic(err)
			}
			maxNum = arg1
		}

		Index(maxNum)
	},
}

func tracksBinaryPath() string {
	return constants.GetIndexDir() + "/tracks.dat"
}

// Index parses up to maxNum tracks (0 = all) and writes the derived
// timelines as one gob binary. Tracks that fail to parse are skipped
// so one corrupt annotation can't sink the batch.
func Index(maxNum int) {
	util.RecreateDir(constants.GetIndexDir())
	tracks := dataset.Load(constants.GetDataHome(), metadataProvider())

	ids := util.GetKeysSorted(tracks)
	if maxNum > 0 && len(ids) > maxNum {
		ids = ids[:maxNum]
	}

	all := make(map[string]model.TrackData)
	for i, id := range ids {
		fmt.Printf("Processing %v of %v tracks\n", i+1, len(ids))
		t := tracks[id]

		ann, err := t.Annotation()
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", id, err)
			continue
		}
		if ann == nil {
			fmt.Printf("Skipping %v because it has no annotation file\n", id)
			continue
		}
		chords, err := t.Chords()
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", id, err)
			continue
		}
		sections, err := t.Sections()
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", id, err)
			continue
		}

		all[id] = model.TrackData{
			TrackId:  id,
			Metadata: t.Metadata,
			Header:   ann.Header,
			Chords:   chords,
			Sections: sections,
		}
	}

	util.CreateBinary(tracksBinaryPath(), all)
	util.CreateBinary(constants.GetIndexDir()+"/trackIds.dat", ids)
}
