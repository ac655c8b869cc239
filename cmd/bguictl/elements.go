package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RangeyRover/AMS2-BGUI-Editor/pkg/bgui"
)

func init() {
	rootCmd.AddCommand(newElementsCmd())
}

func newElementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "elements <file>",
		Short: "List scanned element records",
		Long: `The elements command lists every element record found in the file with
its decoded fields and byte offsets.

Example:
  bguictl elements HUDLayout.bgui
  bguictl elements HUDLayout.bgui --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runElements(args)
		},
	}
}

type elementJSON struct {
	ID         uint32  `json:"id"`
	Kind       string  `json:"kind"`
	Name       string  `json:"name"`
	X          float32 `json:"x"`
	Y          float32 `json:"y"`
	Scale      float32 `json:"scale"`
	Color      string  `json:"color"`
	Resource   string  `json:"resource,omitempty"`
	ChildCount uint32  `json:"childCount"`
	Offset     int     `json:"offset"`
	Length     int     `json:"length"`
}

func runElements(args []string) error {
	path := args[0]
	printVerbose("Opening file: %s\n", path)

	f, err := bgui.ParseFile(path)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if jsonOut {
		out := make([]elementJSON, 0, len(f.Elements))
		for _, e := range f.Elements {
			out = append(out, elementJSON{
				ID:         e.ID,
				Kind:       e.Kind.String(),
				Name:       e.Name,
				X:          e.X,
				Y:          e.Y,
				Scale:      e.Scale,
				Color:      fmt.Sprintf("#%08X", e.Color),
				Resource:   e.Resource,
				ChildCount: e.ChildCount,
				Offset:     e.FileOffset,
				Length:     e.ByteLen,
			})
		}
		return printJSON(out)
	}

	printInfo("%-6s %-6s %-28s %10s %10s %7s %-9s %s\n",
		"ID", "KIND", "NAME", "X", "Y", "SCALE", "COLOR", "RESOURCE")
	for _, e := range f.Elements {
		printInfo("%-6d %-6s %-28s %10.2f %10.2f %7.2f #%08X %s\n",
			e.ID, e.Kind, e.Name, e.X, e.Y, e.Scale, e.Color, e.Resource)
		printVerbose("       at 0x%X, %d bytes, %d children\n", e.FileOffset, e.ByteLen, e.ChildCount)
	}
	return nil
}
