package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RangeyRover/AMS2-BGUI-Editor/pkg/bgui"
)

func init() {
	rootCmd.AddCommand(newVerifyCmd())
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file>",
		Short: "Check that a file round-trips byte-identically",
		Long: `The verify command parses a file, re-serializes it without edits and
compares the result to the original bytes. Any difference means the decoder
is misreading the file and editing it would corrupt data.

Example:
  bguictl verify HUDLayout.bgui`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(args)
		},
	}
}

func runVerify(args []string) error {
	path := args[0]
	printVerbose("Opening file: %s\n", path)

	original, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	f, err := bgui.Parse(original)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	out, err := f.Serialize()
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", path, err)
	}

	for _, d := range f.Diagnostics() {
		printInfo("%s\n", d.String())
	}
	if !bytes.Equal(original, out) {
		off := firstDiff(original, out)
		return fmt.Errorf("round trip differs: %d bytes in, %d bytes out, first difference at 0x%X",
			len(original), len(out), off)
	}
	printInfo("%s: %d bytes, %d elements, round trip identical\n", path, len(original), len(f.Elements))
	return nil
}

func firstDiff(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
