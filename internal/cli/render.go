package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/readinglist/internal/render"
)

func newRenderCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a reading list as an HTML page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, source, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			page, err := render.Page(doc, source)
			if err != nil {
				return sysError(fmt.Errorf("failed to render %s: %w", args[0], err))
			}
			return writeOutput(cmd, output, page)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
