package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/salamidex/salami"
	"github.com/jsphweid/salamidex/timeline"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parses one annotation file and dumps its timelines",
	Long:  `Parses one annotation file and dumps its timelines`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		parse(args[0])
	},
}

func parse(path string) {
	ann, err := salami.ParseFile(path)
	if err != nil {
		panic("Could not parse annotation: " + err.Error())
	}
	if ann == nil {
		fmt.Printf("No annotation file at %v\n", path)
		return
	}

	fmt.Printf("title: %v\n", ann.Header.Title)
	fmt.Printf("artist: %v\n", ann.Header.Artist)
	fmt.Printf("metre: %v\n", strings.Join(ann.Header.Meter, " "))
	fmt.Printf("tonic: %v\n", strings.Join(ann.Header.Tonic, " "))
	fmt.Printf("events: %v\n", len(ann.Events))

	chords, err := timeline.BuildChords(ann.Events)
	if err != nil {
		panic("Could not build chord timeline: " + err.Error())
	}
	fmt.Println("chords:")
	for _, c := range chords {
		fmt.Printf("  %10.4f %10.4f  %v\n", c.Start, c.End, c.Chord)
	}

	fmt.Println("sections:")
	for _, s := range timeline.BuildSections(ann.Events) {
		fmt.Printf("  %10.4f %10.4f  %v (%v)\n", s.Start, s.End, s.Letter, s.Function)
	}
}
