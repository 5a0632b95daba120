package compiler

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// DumpTables writes the grammar and the ACTION/GOTO table as aligned text.
func DumpTables(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("Productions:\n")
	for i := range productions {
		fmt.Fprintf(&sb, "  %2d: %s\n", i, productions[i])
	}
	sb.WriteString("\n")
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "state\t")
	for s := Symbol(0); s < numSymbols; s++ {
		if s == SymStart {
			continue
		}
		fmt.Fprintf(tw, "%s\t", s)
	}
	fmt.Fprintln(tw)
	for state, row := range parseTable {
		fmt.Fprintf(tw, "%d\t", state)
		for s := Symbol(0); s < numSymbols; s++ {
			switch {
			case s == SymStart:
				continue
			case s.IsTerminal():
				cell := ""
				if a, ok := row.Actions[s]; ok {
					cell = a.short()
				}
				fmt.Fprintf(tw, "%s\t", cell)
			default:
				cell := ""
				if g, ok := row.Gotos[s]; ok {
					cell = fmt.Sprint(g)
				}
				fmt.Fprintf(tw, "%s\t", cell)
			}
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
