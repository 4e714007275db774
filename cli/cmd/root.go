package cmd

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "swiftfmt",
		Short:        "swiftfmt",
		SilenceUsage: true,
		Long:         `Formatter and linter for Swift source files. See README.md.`,
	}

	directory string
	ruleNames []string
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "d", ".", "path to directory and subtree which will be scanned for *.swift-files")
	rootCmd.PersistentFlags().StringSliceVarP(&ruleNames, "rules", "r", nil, "rules to apply; default is the standard pipeline")
	return rootCmd.Execute()
}
