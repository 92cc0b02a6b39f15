package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/readinglist/internal/sources/markdown"
)

func newFmtCmd() *cobra.Command {
	var (
		check bool
		write bool
	)

	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Re-serialize a reading list",
		Long: "Re-serialize a reading list from its parsed form.\n" +
			"Formatting is preserved: the output differs from the input only when\n" +
			"the file cannot be reproduced from what was parsed.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if write && args[0] == "-" {
				return userError(fmt.Errorf("-w cannot be used with stdin"))
			}

			doc, source, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}
			formatted := markdown.Format(doc)

			switch {
			case check:
				if !bytes.Equal(formatted, source) {
					return userError(fmt.Errorf("%s does not round-trip", args[0]))
				}
				return nil
			case write:
				if bytes.Equal(formatted, source) {
					return nil
				}
				return writeOutput(cmd, args[0], formatted)
			default:
				return writeOutput(cmd, "", formatted)
			}
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "exit 1 when the output would differ from the file")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the file")
	cmd.MarkFlagsMutuallyExclusive("check", "write")

	return cmd
}
