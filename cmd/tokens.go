package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"slrc/pkg/compiler"
)

// tokens: print the scanner output
var TokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token stream of a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read input file %q: %w", args[0], err)
		}
		return printTokens(cmd.OutOrStdout(), string(source))
	},
}

// printTokens lists each token with the grammar terminal it maps to, or "-"
// for tokens the parser has no terminal for.
func printTokens(w io.Writer, src string) error {
	tokens, err := compiler.Lex(src)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "pos\ttype\tlexeme\tterminal")
	for _, tok := range tokens {
		terminal := "-"
		if sym, ok := compiler.TerminalFor(tok.Type); ok {
			terminal = sym.String()
		}
		fmt.Fprintf(tw, "%s\t%s\t%q\t%s\n", tok.Pos(), tok.Type, tok.Lexeme, terminal)
	}
	return tw.Flush()
}
