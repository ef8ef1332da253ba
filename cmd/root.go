package cmd

import (
	"os"

	"github.com/jsphweid/salamidex/db"
	"github.com/jsphweid/salamidex/track"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "salamidex",
	Short: "McGill-Billboard annotation tools",
	Long:  `Parses McGill-Billboard SALAMI annotations into aligned chord and section timelines.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// metadataProvider returns the DynamoDB store when one is configured,
// else nil (every track gets the all-null metadata record).
func metadataProvider() track.MetadataProvider {
	if os.Getenv("METADATA_DB_ENDPOINT") == "" {
		return nil
	}
	return db.NewProvider()
}
