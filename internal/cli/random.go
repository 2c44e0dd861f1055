package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRandomBitCommand creates the random-bit command.
func NewRandomBitCommand(rootOpts *RootOptions) *cobra.Command {
	var shots int

	cmd := &cobra.Command{
		Use:   "random-bit",
		Short: "Generate a random bit by measuring a superposed qubit",
		Long: `Prepare a single qubit in equal superposition with a Hadamard gate,
measure it, and report the most frequent outcome.

Example:
  hqai random-bit
  hqai random-bit --shots 100`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.orch.RandomBit(cmd.Context(), shots)
			if err != nil {
				return asExitError(err)
			}
			a.record(cmd.Context(), result.RunToken, "random_bit", result.Summary())

			text := fmt.Sprintf("Random bit: %d  (shots: %d, run: %s)", result.Bit, result.Shots, result.RunToken)
			return a.out.Result(result, text)
		},
	}

	cmd.Flags().IntVar(&shots, "shots", 1, "measurement shots")

	return cmd
}

// NewChooseCommand creates the choose command.
func NewChooseCommand(rootOpts *RootOptions) *cobra.Command {
	var shots int

	cmd := &cobra.Command{
		Use:   "choose <option> <option> [option...]",
		Short: "Pick one of the given options with quantum randomness",
		Long: `Superpose enough qubits to cover the option list, measure, and map
the winning basis state onto an option.

Example:
  hqai choose tea coffee
  hqai choose red green blue --shots 256`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.orch.RandomChoice(cmd.Context(), args, shots)
			if err != nil {
				return asExitError(err)
			}
			a.record(cmd.Context(), result.RunToken, "random_choice", result.Summary())

			text := fmt.Sprintf("Chose: %s  (bitstring: %s, qubits: %d, shots: %d, run: %s)",
				result.Option, result.Bitstring, result.Qubits, result.Shots, result.RunToken)
			return a.out.Result(result, text)
		},
	}

	cmd.Flags().IntVar(&shots, "shots", 0, "measurement shots (0 uses the configured default)")

	return cmd
}
