package main

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pcbkit/internal/harness"
	"github.com/joshuapare/pcbkit/pcb"
	"github.com/joshuapare/pcbkit/pcb/walker"
)

var (
	statsVariant  string
	statsCapacity int
	statsSteps    int
	statsScript   string
)

func init() {
	cmd := newStatsCmd()
	cmd.Flags().StringVar(&statsVariant, "variant", string(harness.VariantSibling), "Table variant (linked, sibling)")
	cmd.Flags().IntVar(&statsCapacity, "capacity", pcb.MinCapacity, "Number of PCB slots")
	cmd.Flags().IntVar(&statsSteps, "steps", -1, "Apply only the first N ops (-1 = leading creates)")
	cmd.Flags().StringVar(&statsScript, "script", "", "YAML script to apply instead of the default round")
	rootCmd.AddCommand(cmd)
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show hierarchy statistics",
		Long: `The stats command applies the leading operations of a script and shows
occupancy, depth and fan-out of the resulting hierarchy.

Example:
  pcbctl stats
  pcbctl stats --capacity 64 --script wide.yaml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats()
		},
	}
	return cmd
}

func runStats() error {
	s, err := loadScript(statsScript)
	if err != nil {
		return err
	}

	t, err := applySteps(statsVariant, statsCapacity, s, statsSteps)
	if err != nil {
		return err
	}

	st, err := walker.Collect(t)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(st)
	}

	printInfo("%s\n", render(headerStyle, "Hierarchy Statistics"))
	printInfo("  Capacity: %s\n", formatNumber(int64(st.Capacity)))
	printInfo("  Occupied: %s\n", formatNumber(int64(st.Occupied)))
	printInfo("  Free: %s\n", formatNumber(int64(st.Free)))
	printInfo("  Leaves: %s\n", formatNumber(int64(st.Leaves)))
	printInfo("  Max Depth: %d levels\n", st.MaxDepth)
	printInfo("  Widest: slot %d (%d children)\n", st.Widest.Index, st.Widest.Children)

	levels := make([]int, 0, len(st.SlotsByLevel))
	for level := range st.SlotsByLevel {
		levels = append(levels, level)
	}
	sort.Ints(levels)

	printInfo("\nSlots by Level:\n")
	for _, level := range levels {
		printInfo("  Level %d: %s\n", level, formatNumber(int64(st.SlotsByLevel[level])))
	}
	return nil
}
