package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/compiler"
	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/sim"
)

// simulateReport is the JSON payload of the simulate command.
type simulateReport struct {
	Name              string         `json:"name,omitempty"`
	Qubits            int            `json:"qubits"`
	Depth             int            `json:"depth"`
	GateCount         int            `json:"gate_count"`
	StateNorm         float64        `json:"state_norm"`
	EntanglementProxy float64        `json:"entanglement_proxy"`
	Shots             int            `json:"shots,omitempty"`
	Counts            map[string]int `json:"counts,omitempty"`
}

// NewSimulateCommand creates the simulate command.
func NewSimulateCommand(rootOpts *RootOptions) *cobra.Command {
	var shots int

	cmd := &cobra.Command{
		Use:   "simulate <circuit.cue>",
		Short: "Simulate a circuit defined in a CUE file",
		Long: `Compile a CUE circuit definition, run it on the statevector engine,
and report the state. Circuits ending in a measurement are sampled;
unmeasured circuits report state metrics only.

Example:
  hqai simulate bell.cue
  hqai simulate ghz.cue --shots 4096`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			c, err := compiler.LoadFile(args[0])
			if err != nil {
				return asExitError(err)
			}

			state, err := a.engine.Simulate(cmd.Context(), c)
			if err != nil {
				return asExitError(err)
			}

			report := simulateReport{
				Name:              c.Name(),
				Qubits:            c.Qubits(),
				Depth:             c.Depth(),
				GateCount:         c.GateCount(),
				StateNorm:         state.Norm(),
				EntanglementProxy: sim.EntanglementProxy(state),
			}

			if c.Measured() {
				result, err := sim.Sample(state, shots, a.newSource())
				if err != nil {
					return asExitError(err)
				}
				report.Shots = result.Shots()
				report.Counts = result.Counts()
			}

			var b strings.Builder
			title := report.Name
			if title == "" {
				title = args[0]
			}
			fmt.Fprintf(&b, "Simulated %s: %d qubits, depth %d, %d gates\n\n",
				title, report.Qubits, report.Depth, report.GateCount)
			b.WriteString(a.diagram(c))
			fmt.Fprintf(&b, "\nState norm:         %.6f\n", report.StateNorm)
			fmt.Fprintf(&b, "Entanglement proxy: %.4f", report.EntanglementProxy)
			if report.Counts != nil {
				fmt.Fprintf(&b, "\n\nCounts over %d shots:\n", report.Shots)
				b.WriteString(formatCounts(report.Counts, report.Shots))
			}
			return a.out.Result(report, b.String())
		},
	}

	cmd.Flags().IntVar(&shots, "shots", 1024, "measurement shots for measured circuits")

	return cmd
}
