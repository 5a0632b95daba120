package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"slrc/pkg/utils"
)

var (
	outDir      string
	jobs        int
	showSymbols bool
)

// build: compile each file into <file>.asm
var BuildCmd = &cobra.Command{
	Use:   "build [file...]",
	Short: "Compile source files into (.asm) MIPS assembly",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return buildFiles(cmd.OutOrStdout(), args, buildConfig{
			outDir:  outDir,
			jobs:    jobs,
			symbols: showSymbols,
		})
	},
}

func init() {
	BuildCmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory for .asm files (default: beside each source)")
	BuildCmd.Flags().IntVarP(&jobs, "jobs", "j", 4, "number of files compiled concurrently (0 means unlimited)")
	BuildCmd.Flags().BoolVar(&showSymbols, "symbols", false, "print each file's symbol table")
}

type buildConfig struct {
	outDir  string
	jobs    int
	symbols bool
}

type buildOutput struct {
	path    string
	size    int
	symbols string
}

// buildFiles compiles every file in its own session. Reports are written in
// argument order once all files succeeded.
func buildFiles(w io.Writer, files []string, cfg buildConfig) error {
	if cfg.outDir != "" {
		if err := os.MkdirAll(cfg.outDir, 0o755); err != nil {
			return err
		}
	}

	outputs := make([]buildOutput, len(files))
	g := new(errgroup.Group)
	if cfg.jobs > 0 {
		g.SetLimit(cfg.jobs)
	}
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			out, err := buildFile(file, cfg.outDir)
			if err != nil {
				return err
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, file := range files {
		fmt.Fprintf(w, "compiled %s -> %s (%d bytes)\n", file, outputs[i].path, outputs[i].size)
		if cfg.symbols {
			fmt.Fprint(w, outputs[i].symbols)
		}
	}
	return nil
}

func buildFile(file, dir string) (buildOutput, error) {
	res, c, err := compileFile(file, options())
	if err != nil {
		return buildOutput{}, err
	}

	output, err := utils.OutputPath(file, dir, ".asm")
	if err != nil {
		return buildOutput{}, err
	}
	if err := os.WriteFile(output, []byte(res.Assembly), 0o644); err != nil {
		return buildOutput{}, fmt.Errorf("failed to write %q: %w", output, err)
	}
	return buildOutput{path: output, size: len(res.Assembly), symbols: c.Symbols().String()}, nil
}
