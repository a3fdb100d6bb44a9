package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pcbkit/internal/harness"
	"github.com/joshuapare/pcbkit/internal/prompt"
	"github.com/joshuapare/pcbkit/internal/rusage"
	"github.com/joshuapare/pcbkit/pcb"
)

var (
	compareCapacity int
	compareRounds   int
	compareScript   string
)

func init() {
	cmd := newCompareCmd()
	cmd.Flags().IntVar(&compareCapacity, "capacity", 0, "Number of PCB slots (prompted when omitted)")
	cmd.Flags().IntVar(&compareRounds, "rounds", 0, "Script repetitions per variant (prompted when omitted)")
	cmd.Flags().StringVar(&compareScript, "script", "", "YAML script to run instead of the default round")
	rootCmd.AddCommand(cmd)
}

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Time both table variants against the same script",
		Long: `The compare command runs the same create/destroy script against the
linked-list table and the sibling-linked table and reports the elapsed time
of each along with the difference.

Missing parameters are asked for interactively.

Example:
  pcbctl compare
  pcbctl compare --capacity 100 --rounds 1000000
  pcbctl compare --capacity 32 --rounds 10000 --script deep.yaml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	return cmd
}

// runCompare runs the comparison. Prompts read from in and are written to out.
func runCompare(ctx context.Context, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := loadScript(compareScript)
	if err != nil {
		return err
	}

	cfg := harness.Config{
		Capacity: compareCapacity,
		Rounds:   compareRounds,
		Script:   s,
	}

	if cfg.Capacity == 0 || cfg.Rounds == 0 {
		p := prompt.New(in, out)
		if cfg.Capacity == 0 {
			if cfg.Capacity, err = p.IntAtLeast(
				fmt.Sprintf("Enter the number of PCBs (>= %d):", pcb.MinCapacity), pcb.MinCapacity); err != nil {
				return err
			}
		}
		if cfg.Rounds == 0 {
			if cfg.Rounds, err = p.IntAtLeast("Enter the number of rounds (>= 1):", 1); err != nil {
				return err
			}
		}
	}

	printVerbose("Running %d rounds of %q on %d slots\n", cfg.Rounds, s.Name, cfg.Capacity)

	res, err := harness.Run(ctx, cfg)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(res)
	}

	printInfo("%s\n", render(headerStyle, "PCB table comparison"))
	printInfo("%s %s\n", render(labelStyle, "Linked-list version: "), formatNanos(res.Linked.Wall))
	printInfo("%s %s\n", render(labelStyle, "Sibling version:     "), formatNanos(res.Sibling.Wall))
	if rusage.Supported {
		printVerbose("CPU time: linked %s, sibling %s\n", formatNanos(res.Linked.CPU), formatNanos(res.Sibling.CPU))
	}
	printVerbose("Run ID: %s\n", res.RunID)

	style := verdictStyle
	if v, _ := res.Faster(); v == "" {
		style = tieStyle
	}
	printInfo("%s\n", render(style, res.Verdict(formatNanos)))
	return nil
}
