package cpu

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes the machine state: memory from the highest address down,
// then the flags and registers. Memory words of +0 are skipped when
// nonzero is set.
//
// Words print as a sign and five two digit MIX bytes ("+01 02 03 04 05"),
// not as groups of raw bits, and addresses print in decimal.
func (m *Machine) Dump(w io.Writer, nonzero bool) (err error) {
	_, err = fmt.Fprintln(w, "Memory:")
	if err != nil {
		return
	}

	for address := MEMORY_SIZE - 1; address >= 0; address-- {
		cell := m.Memory[address]
		if nonzero && cell.Read() == 0 {
			continue
		}
		_, err = fmt.Fprintf(w, "%04d: %v\n", address, cell)
		if err != nil {
			return
		}
	}

	type line struct {
		name  string
		value any
	}

	lines := []line{
		{"Overflow", m.Overflow},
		{"Comparison", m.Comparison},
		{"A", m.A},
		{"X", m.X},
	}
	for n, r := range m.I {
		lines = append(lines, line{fmt.Sprintf("I%d", n+1), r})
	}
	lines = append(lines,
		line{"J", m.J},
		line{"PC", fmt.Sprintf("%04d", m.PC)},
	)

	for _, line := range lines {
		_, err = fmt.Fprintf(w, "%s: %v\n", line.name, line.value)
		if err != nil {
			return
		}
	}

	return
}

// String returns the full machine state.
func (m *Machine) String() string {
	var sb strings.Builder
	_ = m.Dump(&sb, false)
	return sb.String()
}
