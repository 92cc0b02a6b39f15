package cli

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/readinglist/internal/render"
)

func newExportCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Export the entries of a reading list as JSON or YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			data, err := render.Export(doc, format)
			if err != nil {
				return userError(err)
			}
			return writeOutput(cmd, output, data)
		},
	}

	cmd.Flags().StringVar(&format, "format", render.FormatJSON, "json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
