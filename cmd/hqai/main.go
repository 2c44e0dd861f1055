// Command hqai runs quantum circuit simulation demos from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
