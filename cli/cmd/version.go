package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// set by the release build
var version = "dev"

var (
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the swiftfmt version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(version)
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(versionCmd)
}
