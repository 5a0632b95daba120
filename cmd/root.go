package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"

	"slrc/pkg/compiler"
)

var (
	traceLevel   string
	dropUnmapped bool
)

var rootCmd = &cobra.Command{
	Use:   "slrc",
	Short: "slrc: SLR(1) compiler for a small imperative language, targeting MIPS",
	Long: `slrc compiles declarations, assignments, arithmetic and if statements
into MIPS32 assembly in a single shift/reduce pass.

Commands:
  build   Compile source files into (.asm) MIPS assembly
  run     Compile, assemble and simulate a program, then print its variables
  tokens  Print the token stream of a source file
  tables  Print the grammar and the SLR(1) ACTION/GOTO table
`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return setupTracing(traceLevel) },
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "", "parser trace level: error, info or debug (traces go to stderr)")
	rootCmd.PersistentFlags().BoolVar(&dropUnmapped, "drop-unmapped", false, "skip tokens the grammar has no terminal for (else, while) instead of failing")

	rootCmd.AddCommand(BuildCmd, RunCmd, TokensCmd, TablesCmd)
}

// setupTracing routes the compiler's tracer to the standard logger. An empty
// level keeps the default no-op tracer.
func setupTracing(level string) error {
	if level == "" {
		return nil
	}
	switch strings.ToLower(level) {
	case "error", "info", "debug":
	default:
		return fmt.Errorf("unknown trace level %q (want error, info or debug)", level)
	}
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracing.Select("slrc.parser").SetTraceLevel(tracing.TraceLevelFromString(level))
	return nil
}

func options() compiler.Options {
	return compiler.Options{DropUnmapped: dropUnmapped}
}

// compileFile runs one compiler session over the file at path.
func compileFile(path string, opts compiler.Options) (compiler.Result, *compiler.Compiler, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return compiler.Result{}, nil, fmt.Errorf("failed to read input file %q: %w", path, err)
	}
	c := compiler.New(opts)
	res, err := c.Compile(string(source))
	if err != nil {
		return compiler.Result{}, c, fmt.Errorf("%s: %w", path, err)
	}
	return res, c, nil
}
