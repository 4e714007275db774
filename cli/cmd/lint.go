package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/swiftfmt/swiftfmt"
)

var (
	lintCmd = &cobra.Command{
		Use:   "lint [file...]",
		Short: "Report formatting differences without rewriting anything; exits nonzero when files are dirty",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig()
			if err != nil {
				return err
			}
			options := config.Options()
			rules, err := config.RulePipeline()
			if err != nil {
				return err
			}

			targets, err := resolveTargets(args)
			if err != nil {
				return err
			}

			dirty := 0
			for _, target := range targets {
				buf, err := os.ReadFile(target)
				if err != nil {
					return &swiftfmt.Error{Kind: swiftfmt.ReadingError, Message: err.Error()}
				}
				changes, err := swiftfmt.Lint(string(buf), rules, options)
				if err != nil {
					return fmt.Errorf("%s: %w", target, err)
				}
				if len(changes) == 0 {
					continue
				}
				dirty++
				for _, c := range changes {
					for _, line := range c.Deleted {
						fmt.Printf("%s:%d: -%s\n", target, c.Line, line)
					}
					for _, line := range c.Added {
						fmt.Printf("%s:%d: +%s\n", target, c.Line, line)
					}
				}
			}
			if dirty > 0 {
				return errors.New(fmt.Sprintf("%d file(s) need formatting", dirty))
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(lintCmd)
}
