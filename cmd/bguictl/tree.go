package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RangeyRover/AMS2-BGUI-Editor/pkg/bgui"
)

func init() {
	rootCmd.AddCommand(newTreeCmd())
}

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <file>",
		Short: "Display the element hierarchy",
		Long: `The tree command reconstructs the element hierarchy from the trailing
register index and prints it as an indented tree.

Example:
  bguictl tree HUDLayout.bgui
  bguictl tree HUDLayout.bgui --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
}

type treeNodeJSON struct {
	ID       uint32         `json:"id"`
	Name     string         `json:"name,omitempty"`
	Children []treeNodeJSON `json:"children,omitempty"`
}

func toTreeJSON(n *bgui.Node) []treeNodeJSON {
	var out []treeNodeJSON
	for _, c := range n.Children {
		j := treeNodeJSON{ID: c.Entry.ElementID, Children: toTreeJSON(c)}
		if c.Element != nil {
			j.Name = c.Element.Name
		}
		out = append(out, j)
	}
	return out
}

func runTree(args []string) error {
	path := args[0]
	printVerbose("Opening file: %s\n", path)

	f, err := bgui.ParseFile(path)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	root := f.Tree()
	if jsonOut {
		return printJSON(toTreeJSON(root))
	}
	printInfo("%s", root.Render())
	for _, d := range f.Diagnostics() {
		printInfo("%s\n", d.String())
	}
	return nil
}
