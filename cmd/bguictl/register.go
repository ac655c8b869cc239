package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RangeyRover/AMS2-BGUI-Editor/pkg/bgui"
)

func init() {
	rootCmd.AddCommand(newRegisterCmd())
}

func newRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <file>",
		Short: "Dump the trailing register index",
		Long: `The register command lists the raw (id, child count) entries of the
trailing register index in file order, flagging ids with no matching scanned
record.

Example:
  bguictl register HUDLayout.bgui`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(args)
		},
	}
}

func runRegister(args []string) error {
	path := args[0]
	printVerbose("Opening file: %s\n", path)

	f, err := bgui.ParseFile(path)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if jsonOut {
		return printJSON(f.Register)
	}

	printInfo("%-6s %-8s %-10s %-10s %s\n", "INDEX", "ID", "CHILDREN", "OFFSET", "RECORD")
	for _, entry := range f.Register {
		record := "-"
		if e, ok := f.ElementByID(entry.ElementID); ok {
			record = e.Name
		}
		printInfo("%-6d %-8d %-10d 0x%-8X %s\n",
			entry.Index, entry.ElementID, entry.ChildCount, entry.FileOffset, record)
	}
	return nil
}
