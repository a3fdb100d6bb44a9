package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pcbkit/internal/harness"
	"github.com/joshuapare/pcbkit/pcb"
	"github.com/joshuapare/pcbkit/pcb/script"
	"github.com/joshuapare/pcbkit/pcb/verify"
)

var (
	checkCapacity int
	checkRounds   int
	checkScript   string
)

func init() {
	cmd := newCheckCmd()
	cmd.Flags().IntVar(&checkCapacity, "capacity", pcb.MinCapacity, "Number of PCB slots")
	cmd.Flags().IntVar(&checkRounds, "rounds", 1, "Script repetitions")
	cmd.Flags().StringVar(&checkScript, "script", "", "YAML script to check instead of the default round")
	rootCmd.AddCommand(cmd)
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify invariants and cross-variant equivalence step by step",
		Long: `The check command applies a script to both table variants one operation
at a time. After every operation it validates each table's invariants and
confirms both tables hold the same hierarchy.

Example:
  pcbctl check
  pcbctl check --capacity 64 --rounds 10 --script deep.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck()
		},
	}
	return cmd
}

// CheckReport summarizes a successful check run.
type CheckReport struct {
	Script     string `json:"script"`
	Capacity   int    `json:"capacity"`
	Rounds     int    `json:"rounds"`
	Operations int    `json:"operations"`
	Occupied   int    `json:"occupied"`
}

func runCheck() error {
	s, err := loadScript(checkScript)
	if err != nil {
		return err
	}
	if checkRounds < 1 {
		return fmt.Errorf("%w: rounds must be >= 1, got %d", harness.ErrUsage, checkRounds)
	}

	variants := harness.Variants()
	tables := make([]pcb.Table, len(variants))
	for i, v := range variants {
		if tables[i], err = harness.NewTable(v, checkCapacity, nil); err != nil {
			return err
		}
	}

	ops := 0
	for round := range checkRounds {
		for i, op := range s.Ops {
			var created []pcb.Index
			for j, t := range tables {
				c, err := script.Apply(t, op)
				if err != nil {
					return fmt.Errorf("round %d op %d (%s) on %s: %w", round, i, op, variants[j], err)
				}
				if err := verify.AllInvariants(t); err != nil {
					return fmt.Errorf("round %d op %d (%s) on %s: %w", round, i, op, variants[j], err)
				}
				created = append(created, c)
			}
			if created[0] != created[1] {
				return fmt.Errorf("round %d op %d (%s): variants chose slots %v", round, i, op, created)
			}
			if err := verify.Equivalent(tables[0], tables[1]); err != nil {
				return fmt.Errorf("round %d op %d (%s): %w", round, i, op, err)
			}
			printVerbose("round %d op %d %s: occupied %v\n", round, i, op, pcb.Occupied(tables[0]))
			ops++
		}
	}

	report := CheckReport{
		Script:     s.Name,
		Capacity:   checkCapacity,
		Rounds:     checkRounds,
		Operations: ops,
		Occupied:   tables[0].Len(),
	}
	if jsonOut {
		return printJSON(report)
	}
	printInfo("%s %d operations on %d slots, both variants equivalent after every step\n",
		render(verdictStyle, "OK:"), report.Operations, report.Capacity)
	return nil
}
