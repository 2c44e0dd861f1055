package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewInfoCommand creates the info command.
func NewInfoCommand(rootOpts *RootOptions) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show engine capabilities and limits",
		Long: `Report the engine version, configured limits, gate set, and supported
operations. With --check, also run an end-to-end health check.

Example:
  hqai info
  hqai info --check`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if check {
				if err := a.orch.HealthCheck(cmd.Context()); err != nil {
					return WrapExitError(ExitFailure, "health check failed", err)
				}
			}

			info := a.orch.SystemInfo()

			var b strings.Builder
			fmt.Fprintf(&b, "Engine version:   %s\n", info.EngineVersion)
			fmt.Fprintf(&b, "Max qubits:       %d\n", info.MaxQubits)
			fmt.Fprintf(&b, "Default shots:    %d\n", info.DefaultShots)
			fmt.Fprintf(&b, "Default encoding: %s\n", info.DefaultEncoding)
			fmt.Fprintf(&b, "Gate set:         %s\n", strings.Join(info.GateSet, ", "))
			fmt.Fprintf(&b, "Operations:       %s", strings.Join(info.Operations, ", "))
			if check {
				b.WriteString("\nHealth check:     ok")
			}
			return a.out.Result(info, b.String())
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "run an end-to-end health check")

	return cmd
}
