package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/circuit"
)

const (
	wire     = "─"
	barrier  = "░"
	measure  = "M"
	control  = "●"
	notGate  = "X"
	crossing = "┼"
)

// Diagram renders a circuit as a multi-line text diagram. Each qubit
// gets one wire line, operations appear left to right in program order.
// The result always ends with a newline.
func Diagram(c *circuit.Circuit) string {
	n := c.Qubits()
	lines := make([]*strings.Builder, n)
	for q := range lines {
		lines[q] = &strings.Builder{}
		fmt.Fprintf(lines[q], "q%d: ", q)
	}

	for _, op := range c.Ops() {
		cells := column(op, n)
		width := 0
		for _, cell := range cells {
			if w := utf8.RuneCountInString(cell); w > width {
				width = w
			}
		}
		width += 2
		for q := range cells {
			lines[q].WriteString(pad(cells[q], width))
		}
	}

	var out strings.Builder
	for q := range lines {
		out.WriteString(lines[q].String())
		out.WriteString("\n")
	}
	return out.String()
}

// WriteDiagram renders the circuit into dir, creating it if needed.
// The file is named after the circuit ("circuit.txt" when unnamed).
// Returns the written path.
func WriteDiagram(dir string, c *circuit.Circuit) (string, error) {
	name := c.Name()
	if name == "" {
		name = "circuit"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create render dir: %w", err)
	}
	path := filepath.Join(dir, name+".txt")
	if err := os.WriteFile(path, []byte(Diagram(c)), 0o644); err != nil {
		return "", fmt.Errorf("write diagram: %w", err)
	}
	return path, nil
}

// column returns the cell drawn on each qubit wire for one operation.
// An empty cell means plain wire.
func column(op circuit.Operation, n int) []string {
	cells := make([]string, n)
	switch op.Kind {
	case circuit.OpBarrier:
		for q := range cells {
			cells[q] = barrier
		}
	case circuit.OpMeasureAll:
		for q := range cells {
			cells[q] = measure
		}
	case circuit.OpGate:
		if len(op.Targets) == 1 {
			cells[op.Targets[0]] = gateLabel(op)
			break
		}
		a, b := op.Targets[0], op.Targets[1]
		lo, hi := min(a, b), max(a, b)
		for q := lo + 1; q < hi; q++ {
			cells[q] = crossing
		}
		switch op.Gate {
		case circuit.GateCX:
			cells[a] = control
			cells[b] = notGate
		case circuit.GateCZ:
			cells[a] = control
			cells[b] = control
		default:
			cells[a] = gateLabel(op)
			cells[b] = gateLabel(op)
		}
	}
	return cells
}

func gateLabel(op circuit.Operation) string {
	name := strings.ToUpper(string(op.Gate))
	if op.HasAngle {
		return fmt.Sprintf("%s(%.4g)", name, op.Angle)
	}
	return name
}

// pad centers a cell inside a column of the given rune width, filling
// the rest with wire.
func pad(cell string, width int) string {
	if cell == "" {
		return strings.Repeat(wire, width)
	}
	w := utf8.RuneCountInString(cell)
	left := (width - w) / 2
	right := width - w - left
	return strings.Repeat(wire, left) + cell + strings.Repeat(wire, right)
}
