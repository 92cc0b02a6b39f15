package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/readinglist/internal/lint"
)

func newLintCmd() *cobra.Command {
	var (
		configPath string
		asJSON     bool
		strict     bool
		listRules  bool
	)

	cmd := &cobra.Command{
		Use:   "lint FILE",
		Short: "Check a reading list for structural problems",
		Args: func(cmd *cobra.Command, args []string) error {
			if listRules {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if listRules {
				for _, name := range lint.Rules() {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}

			opts, err := lint.LoadOptions(configPath)
			if err != nil {
				return userError(err)
			}

			doc, source, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			report := lint.Lint(doc, source, opts)
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return sysError(fmt.Errorf("failed to encode report: %w", err))
				}
			} else {
				for _, issue := range report.Issues {
					_, _ = fmt.Fprintf(out, "%s: %s\n", args[0], issue)
				}
				_, _ = fmt.Fprintf(out, "%d entries in %d categories, %d errors, %d warnings\n",
					report.Entries, report.Categories, report.Errors, report.Warnings)
			}

			if report.HasErrors() || (strict && report.Warnings > 0) {
				return userError(fmt.Errorf("%s: %d errors, %d warnings", args[0], report.Errors, report.Warnings))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML lint settings file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on warnings too")
	cmd.Flags().BoolVar(&listRules, "list-rules", false, "print the rule names and exit")

	return cmd
}
