package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pcbkit/internal/harness"
	"github.com/joshuapare/pcbkit/pcb"
	"github.com/joshuapare/pcbkit/pcb/printer"
	"github.com/joshuapare/pcbkit/pcb/script"
)

var (
	treeVariant  string
	treeCapacity int
	treeSteps    int
	treeDepth    int
	treeFree     bool
	treeScript   string
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().StringVar(&treeVariant, "variant", string(harness.VariantSibling), "Table variant (linked, sibling)")
	cmd.Flags().IntVar(&treeCapacity, "capacity", pcb.MinCapacity, "Number of PCB slots")
	cmd.Flags().IntVar(&treeSteps, "steps", -1, "Apply only the first N ops (-1 = leading creates)")
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	cmd.Flags().BoolVar(&treeFree, "free", false, "List free slots too")
	cmd.Flags().StringVar(&treeScript, "script", "", "YAML script to apply instead of the default round")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Display the hierarchy a script builds",
		Long: `The tree command applies the leading operations of a script to a fresh
table and prints the resulting hierarchy.

Example:
  pcbctl tree
  pcbctl tree --variant linked --steps 6 --free
  pcbctl tree --script deep.yaml --depth 2 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree()
		},
	}
	return cmd
}

// applySteps builds a table of the given variant and applies the first steps
// ops of s. A negative steps applies only the leading creates.
func applySteps(variant string, capacity int, s script.Script, steps int) (pcb.Table, error) {
	t, err := harness.NewTable(harness.Variant(variant), capacity, nil)
	if err != nil {
		return nil, err
	}

	prefix := s.Creates()
	if steps >= 0 {
		if steps > len(s.Ops) {
			return nil, fmt.Errorf("script %q has %d ops, cannot apply %d", s.Name, len(s.Ops), steps)
		}
		prefix = script.Script{Name: s.Name, Ops: s.Ops[:steps]}
	}

	err = script.Run(t, prefix, func(i int, op script.Op, created pcb.Index) error {
		if created != pcb.Empty {
			printVerbose("%2d. %s -> %d\n", i+1, op, created)
		} else {
			printVerbose("%2d. %s\n", i+1, op)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func runTree() error {
	s, err := loadScript(treeScript)
	if err != nil {
		return err
	}

	t, err := applySteps(treeVariant, treeCapacity, s, treeSteps)
	if err != nil {
		return err
	}

	opts := printer.DefaultOptions()
	opts.MaxDepth = treeDepth
	opts.ShowFree = treeFree
	if jsonOut {
		opts.Format = printer.FormatJSON
	}

	if err := printer.New(t, os.Stdout, opts).Print(); err != nil {
		return fmt.Errorf("failed to display tree: %w", err)
	}
	return nil
}
