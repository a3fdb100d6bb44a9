// Package harness times the two PCB table variants against the same
// operation script and reports how they compare.
package harness

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/joshuapare/pcbkit/internal/logger"
	"github.com/joshuapare/pcbkit/internal/rusage"
	"github.com/joshuapare/pcbkit/pcb"
	"github.com/joshuapare/pcbkit/pcb/linked"
	"github.com/joshuapare/pcbkit/pcb/script"
	"github.com/joshuapare/pcbkit/pcb/sibling"
)

const (
	// DefaultCapacity matches the table size of the classic exercise.
	DefaultCapacity = 100

	// DefaultRounds is the number of script repetitions per variant.
	DefaultRounds = 1_000_000
)

// ErrUsage indicates an invalid capacity, round count or script. No timed work is
// performed when Run returns it.
var ErrUsage = errors.New("harness: invalid usage")

// ErrUnbalanced indicates a script that does not return the table to its
// initial state, so it cannot be repeated.
var ErrUnbalanced = errors.New("harness: script leaves slots occupied")

// Variant names a table implementation.
type Variant string

const (
	VariantLinked  Variant = "linked"
	VariantSibling Variant = "sibling"
)

// Variants returns every variant in run order.
func Variants() []Variant { return []Variant{VariantLinked, VariantSibling} }

// NewTable builds an empty table (root only) of the given variant.
func NewTable(v Variant, capacity int, opts *pcb.Options) (pcb.Table, error) {
	switch v {
	case VariantLinked:
		return linked.New(capacity, opts)
	case VariantSibling:
		return sibling.New(capacity, opts)
	default:
		return nil, fmt.Errorf("%w: unknown variant %q", ErrUsage, v)
	}
}

// Config controls a comparison run.
type Config struct {
	// Capacity is the slot count of each table. Must be >= pcb.MinCapacity.
	Capacity int

	// Rounds is how many times the script runs per variant. Must be >= 1.
	Rounds int

	// Script is the per-round operation sequence.
	// Default: script.Default()
	Script script.Script
}

// DefaultConfig returns the classic comparison parameters.
func DefaultConfig() Config {
	return Config{
		Capacity: DefaultCapacity,
		Rounds:   DefaultRounds,
		Script:   script.Default(),
	}
}

// Validate checks the run parameters.
func (c Config) Validate() error {
	if err := pcb.CheckCapacity(c.Capacity); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if c.Rounds < 1 {
		return fmt.Errorf("%w: rounds must be >= 1, got %d", ErrUsage, c.Rounds)
	}
	if len(c.Script.Ops) > 0 {
		if err := c.Script.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		if err := c.dryRun(); err != nil {
			return fmt.Errorf("%w: script %q: %w", ErrUsage, c.Script.Name, err)
		}
	}
	return nil
}

// dryRun applies the script once to an untimed scratch table. Repeated
// rounds need the script to leave only the root occupied.
func (c Config) dryRun() error {
	t, err := sibling.New(c.Capacity, nil)
	if err != nil {
		return err
	}
	if err := script.Run(t, c.Script, nil); err != nil {
		return err
	}
	if c.Rounds > 1 && t.Len() != 1 {
		return fmt.Errorf("%w: %d slots still occupied after one round", ErrUnbalanced, t.Len()-1)
	}
	return nil
}

// Measurement is the cost of running every round against one variant.
type Measurement struct {
	Variant Variant       `json:"variant"`
	Wall    time.Duration `json:"wall_ns"`
	CPU     time.Duration `json:"cpu_ns"`
}

// Result holds both measurements of a run.
type Result struct {
	RunID    uuid.UUID   `json:"run_id"`
	Capacity int         `json:"capacity"`
	Rounds   int         `json:"rounds"`
	Script   string      `json:"script"`
	Linked   Measurement `json:"linked"`
	Sibling  Measurement `json:"sibling"`
}

// Difference returns sibling wall time minus linked wall time. A positive
// value means the linked variant was faster.
func (r *Result) Difference() time.Duration {
	return r.Sibling.Wall - r.Linked.Wall
}

// Faster returns the quicker variant and its margin, or "" on an exact tie.
func (r *Result) Faster() (Variant, time.Duration) {
	switch d := r.Difference(); {
	case d > 0:
		return VariantLinked, d
	case d < 0:
		return VariantSibling, -d
	default:
		return "", 0
	}
}

// Verdict renders the comparison as one sentence. format renders the margin;
// nil uses time.Duration.String.
func (r *Result) Verdict(format func(time.Duration) string) string {
	if format == nil {
		format = time.Duration.String
	}
	v, margin := r.Faster()
	if v == "" {
		return "Both versions took exactly the same time."
	}
	other := VariantSibling
	if v == VariantSibling {
		other = VariantLinked
	}
	return fmt.Sprintf("The %s version was faster than the %s version by %s.", v, other, format(margin))
}

// Run times every variant against cfg. Context cancellation is honored
// between rounds.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	if len(cfg.Script.Ops) == 0 {
		cfg.Script = script.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res := &Result{
		RunID:    uuid.New(),
		Capacity: cfg.Capacity,
		Rounds:   cfg.Rounds,
		Script:   cfg.Script.Name,
	}
	logger.Info("comparison started",
		"run_id", res.RunID, "capacity", cfg.Capacity, "rounds", cfg.Rounds, "script", cfg.Script.Name)

	for _, v := range Variants() {
		m, err := measure(ctx, v, cfg)
		if err != nil {
			logger.Error("comparison failed", "run_id", res.RunID, "variant", v, "error", err)
			return nil, fmt.Errorf("%s variant: %w", v, err)
		}
		logger.Info("variant measured", "run_id", res.RunID, "variant", v, "wall", m.Wall, "cpu", m.CPU)
		switch v {
		case VariantLinked:
			res.Linked = m
		case VariantSibling:
			res.Sibling = m
		}
	}

	logger.Info("comparison finished", "run_id", res.RunID, "difference", res.Difference())
	return res, nil
}

// measure builds a fresh table and times cfg.Rounds runs of the script.
func measure(ctx context.Context, v Variant, cfg Config) (Measurement, error) {
	t, err := NewTable(v, cfg.Capacity, nil)
	if err != nil {
		return Measurement{}, err
	}

	cpuStart, err := rusage.Now()
	if err != nil {
		logger.Warn("cpu sampling unavailable", "error", err)
	}
	start := time.Now()

	for round := range cfg.Rounds {
		if err := ctx.Err(); err != nil {
			return Measurement{}, fmt.Errorf("round %d: %w", round, err)
		}
		if err := script.Run(t, cfg.Script, nil); err != nil {
			return Measurement{}, fmt.Errorf("round %d: %w", round, err)
		}
	}

	wall := time.Since(start)
	cpuEnd, err := rusage.Now()
	if err != nil {
		cpuEnd = cpuStart
	}

	return Measurement{
		Variant: v,
		Wall:    wall,
		CPU:     cpuEnd.Sub(cpuStart).Total(),
	}, nil
}
