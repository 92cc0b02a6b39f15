package cli

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/readinglist/internal/app"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve search and redirects over HTTP",
		Long:  "Serve the reading list over HTTP. Configuration is read from READINGLIST_* environment variables.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return sysError(err)
			}
			if err := a.Run(); err != nil {
				return sysError(err)
			}
			return nil
		},
	}
}
