// Package cli wires the simulation core into the hqai command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
	Seed       uint64 // 0 means non-deterministic sampling
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the hqai CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "hqai",
		Short: "HQAI - quantum circuit simulation demos",
		Long: `Simulate small quantum circuits on a dense statevector engine:
randomness, entanglement, superposition, optimization, and feature-map
demos, plus simulation of circuits defined in CUE files.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to YAML config file")
	cmd.PersistentFlags().Uint64Var(&opts.Seed, "seed", 0, "sampling seed for reproducible runs (0 = random)")

	cmd.AddCommand(NewRandomBitCommand(opts))
	cmd.AddCommand(NewChooseCommand(opts))
	cmd.AddCommand(NewEntangleCommand(opts))
	cmd.AddCommand(NewSuperposeCommand(opts))
	cmd.AddCommand(NewOptimizeCommand(opts))
	cmd.AddCommand(NewFeatureMapCommand(opts))
	cmd.AddCommand(NewSimulateCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))
	cmd.AddCommand(NewInfoCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
