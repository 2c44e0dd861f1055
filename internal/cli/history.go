package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent simulation runs",
		Long: `List the most recent runs from the run log, newest first. Requires a
run log path in the config file.

Example:
  hqai history --config hqai.yaml --limit 10`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if a.runs == nil {
				return NewExitError(ExitCommandError, "run log is disabled: set runlog.path in the config file")
			}

			records, err := a.runs.List(cmd.Context(), limit)
			if err != nil {
				return WrapExitError(ExitFailure, "read run log", err)
			}

			if len(records) == 0 {
				return a.out.Result(records, "No runs recorded yet.")
			}

			var b strings.Builder
			for i, rec := range records {
				if i > 0 {
					b.WriteString("\n")
				}
				fmt.Fprintf(&b, "%s  %-13s  run=%s\n", rec.CreatedAt, rec.Operation, rec.RunToken)
				fmt.Fprintf(&b, "    %s", rec.Summary)
			}
			return a.out.Result(records, b.String())
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to show")

	return cmd
}
