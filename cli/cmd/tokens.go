package cmd

import (
	"errors"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"
	"github.com/swiftfmt/swiftfmt/swiftparser"
)

var (
	tokensCmd = &cobra.Command{
		Use:   "tokens <file>",
		Short: "Dump the token stream of a file, for debugging rules and scope issues",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				_ = cmd.Help()
				return errors.New("need to specify argument <file>")
			}
			buf, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			for _, tok := range swiftparser.Tokenize(string(buf)) {
				repr.Println(tok)
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(tokensCmd)
}
