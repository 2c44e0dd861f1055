package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/demo"
)

// NewEntangleCommand creates the entangle command.
func NewEntangleCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entangle",
		Short: "Prepare and measure a two-qubit Bell state",
		Long: `Build the Bell state (|00> + |11>)/sqrt(2), sample it, and show the
measurement counts. Ideally only "00" and "11" appear.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.orch.EntanglementDemo(cmd.Context())
			if err != nil {
				return asExitError(err)
			}
			a.record(cmd.Context(), result.RunToken, "entangle", result.Summary())

			var b strings.Builder
			fmt.Fprintf(&b, "Bell state, %d shots (run: %s)\n\n", result.Shots, result.RunToken)
			b.WriteString(a.diagram(result.Circuit))
			b.WriteString("\n")
			b.WriteString(formatCounts(result.Counts, result.Shots))
			return a.out.Result(result, b.String())
		},
	}

	return cmd
}

// NewSuperposeCommand creates the superpose command.
func NewSuperposeCommand(rootOpts *RootOptions) *cobra.Command {
	var qubits int

	cmd := &cobra.Command{
		Use:   "superpose",
		Short: "Spread qubits over all basis states and measure",
		Long: `Put every qubit in superposition, link neighbors with CZ gates, and
sample the resulting near-uniform distribution over all basis states.

Example:
  hqai superpose --qubits 3`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.orch.SuperpositionDemo(cmd.Context(), qubits)
			if err != nil {
				return asExitError(err)
			}
			a.record(cmd.Context(), result.RunToken, "superpose", result.Summary())

			var b strings.Builder
			fmt.Fprintf(&b, "Superposition over %d qubits, %d shots (run: %s)\n\n",
				result.Qubits, result.Shots, result.RunToken)
			b.WriteString(a.diagram(result.Circuit))
			b.WriteString("\n")
			b.WriteString(formatCounts(result.Counts, result.Shots))
			return a.out.Result(result, b.String())
		},
	}

	cmd.Flags().IntVar(&qubits, "qubits", 3, "number of qubits (1-6)")

	return cmd
}

// NewOptimizeCommand creates the optimize command.
func NewOptimizeCommand(rootOpts *RootOptions) *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Run a QAOA-style optimization circuit",
		Long: `Run one fixed-angle QAOA-style layer (mixing, ring coupling, rotation)
over the given problem size and report the dominant bitstring.

Example:
  hqai optimize --size 4`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.orch.OptimizationDemo(cmd.Context(), size)
			if err != nil {
				return asExitError(err)
			}
			a.record(cmd.Context(), result.RunToken, "optimize", result.Summary())

			var b strings.Builder
			fmt.Fprintf(&b, "Optimization over %d qubits (run: %s)\n\n", result.ProblemSize, result.RunToken)
			b.WriteString(a.diagram(result.Circuit))
			b.WriteString("\n")
			fmt.Fprintf(&b, "Best bitstring:      %s\n", result.BestBitstring)
			fmt.Fprintf(&b, "Success probability: %.4f\n", result.SuccessProbability)
			fmt.Fprintf(&b, "Unique states:       %d of %d measurements\n",
				result.UniqueStatesMeasured, result.TotalMeasurements)
			fmt.Fprintf(&b, "Quantum advantage:   %v", result.QuantumAdvantage)
			return a.out.Result(result, b.String())
		},
	}

	cmd.Flags().IntVar(&size, "size", 4, "problem size in qubits (2-10)")

	return cmd
}

// NewFeatureMapCommand creates the feature-map command.
func NewFeatureMapCommand(rootOpts *RootOptions) *cobra.Command {
	var encoding string

	cmd := &cobra.Command{
		Use:   "feature-map <value> [value...]",
		Short: "Encode classical data into a quantum state",
		Long: `Encode a numeric feature vector into qubit rotations and report the
structure of the resulting state. Encoding "amplitude" normalizes the
vector into rotation magnitudes; "angle" maps each value directly and
entangles neighbors.

Example:
  hqai feature-map 0.5 0.3 0.8
  hqai feature-map 1 2 3 --encoding angle`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			data := make([]float64, len(args))
			for i, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return WrapExitError(ExitCommandError, fmt.Sprintf("parse value %q", arg), err)
				}
				data[i] = v
			}

			enc := a.orch.SystemInfo().DefaultEncoding
			if encoding != "" {
				enc, err = demo.ParseEncoding(encoding)
				if err != nil {
					return asExitError(err)
				}
			}

			result, err := a.orch.FeatureMap(cmd.Context(), data, enc)
			if err != nil {
				return asExitError(err)
			}
			a.record(cmd.Context(), result.RunToken, "feature_map", result.Summary())

			var b strings.Builder
			fmt.Fprintf(&b, "Feature map, %s encoding (run: %s)\n\n", result.Encoding, result.RunToken)
			b.WriteString(a.diagram(result.Circuit))
			b.WriteString("\n")
			fmt.Fprintf(&b, "Qubits:             %d\n", result.Qubits)
			fmt.Fprintf(&b, "Depth:              %d\n", result.Depth)
			fmt.Fprintf(&b, "Gates:              %d\n", result.GateCount)
			fmt.Fprintf(&b, "Entanglement proxy: %.4f\n", result.EntanglementProxy)
			fmt.Fprintf(&b, "State norm:         %.6f", result.StateNorm)
			return a.out.Result(result, b.String())
		},
	}

	cmd.Flags().StringVar(&encoding, "encoding", "", "encoding: amplitude or angle (default from config)")

	return cmd
}
