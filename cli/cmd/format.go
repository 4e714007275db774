package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/swiftfmt/swiftfmt"
	"github.com/swiftfmt/swiftfmt/swiftparser"
)

var (
	formatCmd = &cobra.Command{
		Use:   "format [file...]",
		Short: "Reformat Swift source files in place; with no files and no --directory, format stdin to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logrus.StandardLogger()

			config, err := LoadConfig()
			if err != nil {
				return err
			}
			options := config.Options()
			rules, err := config.RulePipeline()
			if err != nil {
				return err
			}

			if len(args) == 0 && !rootCmd.PersistentFlags().Changed("directory") {
				source, err := io.ReadAll(os.Stdin)
				if err != nil {
					return err
				}
				formatted, err := swiftfmt.Format(string(source), rules, options)
				if err != nil {
					return err
				}
				fmt.Print(formatted)
				return nil
			}

			targets, err := resolveTargets(args)
			if err != nil {
				return err
			}
			changed := 0
			for _, target := range targets {
				dirty, err := formatFile(logger, target, rules, options)
				if err != nil {
					return fmt.Errorf("%s: %w", target, err)
				}
				if dirty {
					changed++
					fmt.Println(target)
				}
			}
			logger.WithField("files", len(targets)).WithField("changed", changed).Info("formatting done")
			return nil
		},
	}
)

func formatFile(logger logrus.FieldLogger, path string, rules []swiftfmt.Rule, options swiftfmt.Options) (bool, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return false, &swiftfmt.Error{Kind: swiftfmt.ReadingError, Message: err.Error()}
	}
	source := string(buf)

	warnLogger := func(ruleIndex int, _ []swiftparser.Token, warnings []string) {
		for _, w := range warnings {
			logger.WithField("file", path).WithField("rule", rules[ruleIndex].Name).Warn(w)
		}
	}
	tokens, err := swiftfmt.ApplyRules(rules, swiftparser.Tokenize(source), options, warnLogger)
	if err != nil {
		return false, err
	}
	formatted := swiftparser.SourceCode(tokens)
	if formatted == source {
		return false, nil
	}
	if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
		return false, &swiftfmt.Error{Kind: swiftfmt.WritingError, Message: err.Error()}
	}
	return true, nil
}

func init() {
	rootCmd.AddCommand(formatCmd)
}
