package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jsphweid/salamidex/constants"
	"github.com/jsphweid/salamidex/dataset"
	"github.com/jsphweid/salamidex/jams"
	"github.com/jsphweid/salamidex/track"
	"github.com/jsphweid/salamidex/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exports tracks as jams documents",
	Long:  `Exports tracks as jams documents ("all" or a track id)`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg: a track id or 'all'...")
		}
		export(args[0])
	},
}

func exportOne(t *track.Track, outDir string) error {
	doc, err := jams.FromTrack(t)
	if err != nil {
		return err
	}
	return doc.Write(filepath.Join(outDir, track.PadId(t.Id)+".jams"))
}

func export(arg string) {
	outDir := constants.GetIndexDir()
	os.MkdirAll(outDir, 0777)
	dataHome := constants.GetDataHome()

	if arg != "all" {
		tracks := dataset.Load(dataHome, metadataProvider())
		t, ok := tracks[arg]
		if !ok {
			panic("No track with id " + arg)
		}
		if err := exportOne(t, outDir); err != nil {
			panic("Could not export track: " + err.Error())
		}
		return
	}

	tracks := dataset.Load(dataHome, metadataProvider())
	ids := util.GetKeysSorted(tracks)
	for i, id := range ids {
		fmt.Printf("Exporting %v of %v tracks\n", i+1, len(ids))
		if err := exportOne(tracks[id], outDir); err != nil {
			fmt.Printf("Skipping %v because: %v\n", id, err)
		}
	}
}
