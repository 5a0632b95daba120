package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"slrc/pkg/asm"
	"slrc/pkg/compiler"
	"slrc/pkg/cpu"
)

var maxSteps int

// run: compile, assemble and simulate one program
var RunCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Compile, assemble and simulate a program, then print its variables",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFile(cmd.OutOrStdout(), args[0], maxSteps)
	},
}

func init() {
	RunCmd.Flags().IntVar(&maxSteps, "max-steps", 1_000_000, "abort the simulation after this many instructions (0 means no limit)")
}

func runFile(w io.Writer, path string, limit int) error {
	res, _, err := compileFile(path, options())
	if err != nil {
		return err
	}

	prog, err := asm.Assemble(res.Assembly)
	if err != nil {
		return fmt.Errorf("%s: assembly failed: %w", path, err)
	}

	vm := cpu.NewCPU()
	vm.Output = w
	vm.LoadImage(prog.Text, prog.Data, prog.Entry)
	if err := vm.Run(limit); err != nil {
		return fmt.Errorf("%s: run failed: %w", path, err)
	}

	fmt.Fprintf(w, "run complete (%s): %d instructions\n", path, vm.Steps)
	for _, e := range res.Symbols {
		v, err := variableValue(vm.Mem, e, prog.Labels)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %-20s %-4s = %d\n", e.Name, e.Type, v)
	}
	return nil
}

// variableValue reads a declared variable's cell after a run. Byte cells are
// sign-extended the way lb loads them.
func variableValue(mem *cpu.Memory, e compiler.Entry, labels map[string]uint32) (int32, error) {
	addr, ok := labels[e.Label]
	if !ok {
		return 0, fmt.Errorf("no data label %s for %s", e.Label, e.Name)
	}
	if e.Type.Size() == 1 {
		b, err := mem.Read8(addr)
		return int32(int8(b)), err
	}
	v, err := mem.Read32(addr)
	return int32(v), err
}
