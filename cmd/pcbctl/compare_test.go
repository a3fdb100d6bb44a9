package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/joshuapare/pcbkit/internal/harness"
	"github.com/joshuapare/pcbkit/internal/prompt"
)

func TestCompareCommand(t *testing.T) {
	tests := []struct {
		name           string
		capacity       int
		rounds         int
		input          string
		json           bool
		wantErr        error
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:           "flags only",
			capacity:       6,
			rounds:         50,
			wantContain:    []string{"PCB table comparison", "Linked-list version: ", "Sibling version:     ", " ns", "version"},
			wantNotContain: []string{"Enter the number"},
		},
		{
			name:  "prompts until valid",
			input: "4\n6\nlots\n20\n",
			wantContain: []string{
				"Enter the number of PCBs (>= 6):",
				"The value must be at least 6.",
				"Enter the number of rounds (>= 1):",
				"Please enter a whole number.",
				"Linked-list version:",
			},
		},
		{
			name:           "prompts only for rounds",
			capacity:       100,
			input:          "10\n",
			wantContain:    []string{"Enter the number of rounds", "Sibling version:"},
			wantNotContain: []string{"Enter the number of PCBs"},
		},
		{
			name:        "json",
			capacity:    8,
			rounds:      10,
			json:        true,
			wantContain: []string{`"run_id"`, `"wall_ns"`, `"variant": "sibling"`, `"script": "default"`},
		},
		{
			name:     "capacity below minimum",
			capacity: 5,
			rounds:   10,
			wantErr:  harness.ErrUsage,
		},
		{
			name:     "negative rounds",
			capacity: 6,
			rounds:   -1,
			wantErr:  harness.ErrUsage,
		},
		{
			name:    "input ends",
			input:   "3\n",
			wantErr: prompt.ErrNoInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.json
			compareCapacity = tt.capacity
			compareRounds = tt.rounds
			compareScript = ""

			output, err := captureOutput(t, func() error {
				return runCompare(context.Background(), strings.NewReader(tt.input), os.Stdout)
			})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("runCompare() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("runCompare() error = %v", err)
			}

			if tt.json {
				assertJSON(t, output)
			} else if !strings.Contains(output, "faster than") && !strings.Contains(output, "exactly the same time") {
				t.Errorf("output has no verdict\nGot: %s", output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestCompareCommand_Script(t *testing.T) {
	resetFlags()
	compareCapacity = 10
	compareRounds = 25
	compareScript = writeScript(t, `name: fan
ops:
  - create: 0
  - create: 0
  - create: 0
  - destroy: 1
  - destroy: 2
  - destroy: 3
`)
	jsonOut = true
	t.Cleanup(func() { compareScript = "" })

	output, err := captureOutput(t, func() error {
		return runCompare(context.Background(), strings.NewReader(""), os.Stdout)
	})
	if err != nil {
		t.Fatalf("runCompare() error = %v", err)
	}
	assertJSON(t, output)
	assertContains(t, output, []string{`"script": "fan"`, `"rounds": 25`})
}

func TestCompareCommand_PromptWriter(t *testing.T) {
	resetFlags()
	compareCapacity = 0
	compareRounds = 0
	compareScript = ""

	var prompts bytes.Buffer
	output, err := captureOutput(t, func() error {
		return runCompare(context.Background(), strings.NewReader("6\n5\n"), &prompts)
	})
	if err != nil {
		t.Fatalf("runCompare() error = %v", err)
	}
	assertContains(t, prompts.String(), []string{"Enter the number of PCBs (>= 6):", "Enter the number of rounds (>= 1):"})
	assertNotContains(t, output, []string{"Enter the number"})
	assertContains(t, output, []string{"Linked-list version:"})
}

func TestCompareCommand_CobraOutput(t *testing.T) {
	resetFlags()
	compareCapacity = 0
	compareRounds = 0
	compareScript = ""

	var prompts bytes.Buffer
	rootCmd.SetArgs([]string{"compare"})
	rootCmd.SetIn(strings.NewReader("7\n3\n"))
	rootCmd.SetOut(&prompts)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		compareCapacity = 0
		compareRounds = 0
	})

	output, err := captureOutput(t, func() error {
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	assertContains(t, prompts.String(), []string{"Enter the number of PCBs", "Enter the number of rounds"})
	assertNotContains(t, output, []string{"Enter the number"})
}
