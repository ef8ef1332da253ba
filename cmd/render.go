package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jsphweid/salamidex/constants"
	"github.com/jsphweid/salamidex/model"
	"github.com/jsphweid/salamidex/render"
	"github.com/jsphweid/salamidex/track"
	"github.com/spf13/cobra"
)

var renderFlavor string

func init() {
	renderCmd.Flags().StringVar(&renderFlavor, "flavor", "salami", "chord tier to render (salami or a lab flavor)")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Renders a track's chord timeline to a midi file",
	Long:  `Renders a track's chord timeline to a midi file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 || len(args) > 2 {
			panic("Need a track id and optionally an output path...")
		}
		out := uuid.New().String() + ".mid"
		if len(args) == 2 {
			out = args[1]
		}
		renderTrack(args[0], out)
	},
}

func renderTrack(trackId string, out string) {
	t := track.New(trackId, constants.GetDataHome(), model.UnknownMetadata())

	var chords []model.ChordInterval
	var err error
	if renderFlavor == "salami" {
		chords, err = t.Chords()
	} else {
		chords, err = t.LabChords(renderFlavor)
	}
	if err != nil {
		panic("Could not load chords: " + err.Error())
	}
	if chords == nil {
		panic("Track " + trackId + " has no chord data for flavor " + renderFlavor)
	}

	if err := render.WriteMidiFile(chords, out); err != nil {
		panic("Could not write midi file: " + err.Error())
	}
	fmt.Printf("Wrote %v chords to %v\n", len(chords), out)
}
